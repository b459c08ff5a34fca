package database

import (
	"fmt"
	"log"

	"github.com/sahilchouksey/college-compass-api/catalog"
	"github.com/sahilchouksey/college-compass-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AmenityDescriptions is the static lookup table the profile page uses to
// describe campus amenities.
var AmenityDescriptions = map[string]string{
	"Library":    "Well-stocked library with thousands of books and journals",
	"Hostel":     "Separate hostel facilities for boys and girls",
	"Sports":     "Excellent sports facilities including indoor and outdoor games",
	"Cafeteria":  "Clean and hygienic cafeteria serving quality food",
	"Hospital":   "College hospital with modern medical facilities",
	"Labs":       "Well-equipped laboratories for practical learning",
	"Auditorium": "Spacious auditorium for events and seminars",
	"Wi-Fi":      "Campus-wide high-speed internet connectivity",
	"Gym":        "Fully-equipped gymnasium for students",
	"Transport":  "College bus service for easy commuting",
}

// RunSeeds runs all database seeds
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedColleges(); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedColleges inserts a starter catalog when the table is empty.
func (s *Seeder) SeedColleges() error {
	var count int64
	if err := s.db.Model(&model.College{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Colleges already seeded (%d rows), skipping", count)
		return nil
	}

	colleges := []model.College{
		{
			Slug:        "aiims-new-delhi",
			Name:        "All India Institute of Medical Sciences, New Delhi",
			Ownership:   catalog.OwnershipGovernment,
			Category:    catalog.CategoryMedical,
			State:       "Delhi",
			City:        "New Delhi",
			Established: 1956,
			Courses:     []string{"MBBS", "MD", "MS"},
			CoursesAndFees: datatypes.NewJSONSlice([]catalog.CourseFee{
				{Name: "MBBS", Duration: "5.5 years", TotalFees: "₹6,500", Seats: 125, Level: "UG"},
				{Name: "MD", Duration: "3 years", TotalFees: "₹10,000", Seats: 60, Level: "PG"},
			}),
			Amenities: []string{"Library", "Hostel", "Hospital", "Labs", "Wi-Fi"},
			Cutoff: datatypes.NewJSONType(map[string]string{
				"mbbs": "NEET-UG AIR 1-50",
				"md":   "INI-CET Percentile 99+",
			}),
			Faculty: datatypes.NewJSONType(catalog.Faculty{Total: 780, StudentRatio: "1:6"}),
			Placements: datatypes.NewJSONType(catalog.Placements{
				AveragePackage: "₹18 LPA",
				HighestPackage: "₹32 LPA",
				GraduationPercentage: catalog.GraduationPercentage{
					Years: []int{2021, 2022, 2023},
					UG:    []float64{96.5, 97.1, 97.8},
					PG:    []float64{92.0, 93.4, 94.2},
				},
			}),
			Ranking:    datatypes.NewJSONType(catalog.Ranking{NIRF: 1}),
			Overview:   "AIIMS New Delhi is the country's premier medical institute, combining teaching, research and tertiary patient care on one campus.",
			ApprovedBy: "NMC",
			CampusSize: "210 acres",
		},
		{
			Slug:        "maulana-azad-institute-of-dental-sciences",
			Name:        "Maulana Azad Institute of Dental Sciences",
			Ownership:   catalog.OwnershipGovernment,
			Category:    catalog.CategoryDental,
			State:       "Delhi",
			City:        "New Delhi",
			Established: 2003,
			Courses:     []string{"BDS", "MDS"},
			CoursesAndFees: datatypes.NewJSONSlice([]catalog.CourseFee{
				{Name: "BDS", Duration: "5 years", TotalFees: "₹45,000", Seats: 50, Level: "UG"},
				{Name: "MDS", Duration: "3 years", TotalFees: "₹60,000", Seats: 28, Level: "PG"},
			}),
			Amenities: []string{"Library", "Labs", "Cafeteria", "Wi-Fi", "Auditorium"},
			Cutoff: datatypes.NewJSONType(map[string]string{
				"bds": "NEET-UG AIR 1-2000",
				"mds": "NEET-MDS Rank 1-500",
			}),
			Faculty: datatypes.NewJSONType(catalog.Faculty{Total: 95, StudentRatio: "1:8"}),
			Placements: datatypes.NewJSONType(catalog.Placements{
				AveragePackage: "₹9 LPA",
				HighestPackage: "₹15 LPA",
				GraduationPercentage: catalog.GraduationPercentage{
					Years: []int{2021, 2022, 2023},
					UG:    []float64{91.0, 92.5, 93.1},
					PG:    []float64{88.2, 89.0, 90.5},
				},
			}),
			Ranking:    datatypes.NewJSONType(catalog.Ranking{NIRF: 2}),
			Overview:   "MAIDS is a government dental college attached to Lok Nayak Hospital, known for its clinical exposure and research output.",
			ApprovedBy: "DCI",
			CampusSize: "12 acres",
		},
		{
			Slug:        "manipal-college-of-dental-sciences",
			Name:        "Manipal College of Dental Sciences",
			Ownership:   catalog.OwnershipPrivate,
			Category:    catalog.CategoryDental,
			State:       "Karnataka",
			City:        "Manipal",
			Established: 1965,
			Courses:     []string{"BDS", "MDS"},
			CoursesAndFees: datatypes.NewJSONSlice([]catalog.CourseFee{
				{Name: "BDS", Duration: "5 years", TotalFees: "₹26,00,000", Seats: 100, Level: "UG"},
				{Name: "MDS", Duration: "3 years", TotalFees: "₹18,00,000", Seats: 45, Level: "PG"},
			}),
			Amenities: []string{"Library", "Hostel", "Sports", "Gym", "Transport", "Wi-Fi"},
			Cutoff: datatypes.NewJSONType(map[string]string{
				"bds": "NEET-UG AIR 1-25000",
			}),
			Faculty: datatypes.NewJSONType(catalog.Faculty{Total: 150, StudentRatio: "1:10"}),
			Placements: datatypes.NewJSONType(catalog.Placements{
				AveragePackage: "₹7 LPA",
				HighestPackage: "₹12 LPA",
				GraduationPercentage: catalog.GraduationPercentage{
					Years: []int{2021, 2022, 2023},
					UG:    []float64{89.0, 90.2, 91.0},
					PG:    []float64{85.5, 86.1, 87.4},
				},
			}),
			Ranking:    datatypes.NewJSONType(catalog.Ranking{NIRF: 5}),
			Overview:   "One of the first self-financing dental colleges in the country, part of the Manipal Academy of Higher Education.",
			ApprovedBy: "DCI",
			CampusSize: "600 acres",
		},
	}

	for i := range colleges {
		if err := s.db.Create(&colleges[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d colleges", len(colleges))
	return nil
}
