package college

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilchouksey/college-compass-api/catalog"
	"github.com/sahilchouksey/college-compass-api/model"
	"gorm.io/datatypes"
)

func TestValidateCollegeDataAcceptsCleanPayload(t *testing.T) {
	fees := []catalog.CourseFee{
		{Name: "MBBS", Duration: "5.5 years", TotalFees: "₹6,500", Seats: 125, Level: "UG"},
	}
	grad := catalog.GraduationPercentage{
		Years: []int{2022, 2023},
		UG:    []float64{95.0, 96.0},
		PG:    []float64{90.0, 91.0},
	}

	assert.Empty(t, validateCollegeData(fees, grad))
}

func TestValidateCollegeDataRejectsNegativeSeats(t *testing.T) {
	fees := []catalog.CourseFee{{Name: "MBBS", Seats: -5}}

	msg := validateCollegeData(fees, catalog.GraduationPercentage{})
	assert.Contains(t, msg, "negative")
}

func TestValidateCollegeDataRejectsUnnamedCourse(t *testing.T) {
	fees := []catalog.CourseFee{{Seats: 10}}

	msg := validateCollegeData(fees, catalog.GraduationPercentage{})
	assert.Contains(t, msg, "course name")
}

func TestValidateCollegeDataRejectsRaggedGraduationSeries(t *testing.T) {
	grad := catalog.GraduationPercentage{
		Years: []int{2022, 2023},
		UG:    []float64{95.0},
		PG:    []float64{90.0, 91.0},
	}

	msg := validateCollegeData(nil, grad)
	assert.Contains(t, msg, "same years")
}

func TestValidateCollegeDataAllowsEmptyGraduationSeries(t *testing.T) {
	assert.Empty(t, validateCollegeData(nil, catalog.GraduationPercentage{}))
}

func TestToRecordMapsAllFields(t *testing.T) {
	college := model.College{
		ID:          7,
		Slug:        "aiims-new-delhi",
		Name:        "AIIMS New Delhi",
		Ownership:   catalog.OwnershipGovernment,
		Category:    catalog.CategoryMedical,
		State:       "Delhi",
		City:        "New Delhi",
		Established: 1956,
		Courses:     []string{"MBBS", "MD"},
		CoursesAndFees: datatypes.NewJSONSlice([]catalog.CourseFee{
			{Name: "MBBS", Seats: 125, Level: "UG"},
		}),
		Amenities:  []string{"Library", "Hostel"},
		Cutoff:     datatypes.NewJSONType(map[string]string{"mbbs": "AIR 1-50"}),
		Faculty:    datatypes.NewJSONType(catalog.Faculty{Total: 780, StudentRatio: "1:6"}),
		Placements: datatypes.NewJSONType(catalog.Placements{AveragePackage: "₹18 LPA"}),
		Ranking:    datatypes.NewJSONType(catalog.Ranking{NIRF: 1}),
		Logo:       "https://cdn.example.com/logo.png",
		Brochure:   "https://cdn.example.com/brochure.pdf",
		Overview:   "Premier medical institute",
		ApprovedBy: "NMC",
		CampusSize: "210 acres",
	}

	record := toRecord(college)

	assert.Equal(t, 7, record.ID)
	assert.Equal(t, "aiims-new-delhi", record.Slug)
	assert.Equal(t, "AIIMS New Delhi", record.Name)
	assert.Equal(t, []string{"MBBS", "MD"}, record.Courses)
	assert.Equal(t, 125, record.CoursesAndFees[0].Seats)
	assert.Equal(t, "AIR 1-50", record.Cutoff["mbbs"])
	assert.Equal(t, 780, record.Faculty.Total)
	assert.Equal(t, "₹18 LPA", record.Placements.AveragePackage)
	assert.Equal(t, 1, record.Ranking.NIRF)
	assert.Equal(t, "NMC", record.ApprovedBy)
}

func TestToRecordProducesFeedShape(t *testing.T) {
	college := model.College{
		ID:        3,
		Slug:      "manipal-college-of-dental-sciences",
		Name:      "Manipal College of Dental Sciences",
		Ownership: catalog.OwnershipPrivate,
		Category:  catalog.CategoryDental,
		State:     "Karnataka",
		City:      "Manipal",
		Courses:   []string{"BDS"},
	}

	b, err := json.Marshal(toRecord(college))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))

	// The feed is camelCase; clients key off these exact names
	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "slug")
	assert.Contains(t, decoded, "ownership")
	assert.Contains(t, decoded, "category")
	assert.NotContains(t, decoded, "created_at")
	assert.NotContains(t, decoded, "CreatedAt")
}
