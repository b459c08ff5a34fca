package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []Record {
	return []Record{
		{
			ID: 1, Name: "Zeta Dental College", Ownership: OwnershipGovernment,
			Category: CategoryDental, State: "Maharashtra", City: "Mumbai",
			Established: 1965, Courses: []string{"BDS", "MDS"},
			Placements: Placements{AveragePackage: "₹10 LPA"},
		},
		{
			ID: 2, Name: "Alpha Medical College", Ownership: OwnershipGovernment,
			Category: CategoryMedical, State: "Delhi", City: "New Delhi",
			Established: 1956, Courses: []string{"MBBS", "MD"},
			Placements: Placements{AveragePackage: "N/A"},
		},
		{
			ID: 3, Name: "Beta Dental Institute", Ownership: OwnershipPrivate,
			Category: CategoryDental, State: "Karnataka", City: "Bengaluru",
			Courses:    []string{"BDS"},
			Placements: Placements{AveragePackage: "₹15 LPA"},
		},
	}
}

func TestFilterNoCriteriaIsIdentity(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, Criteria{})

	assert.Equal(t, records, got)
}

func TestFilterTextCaseInsensitive(t *testing.T) {
	got := Filter(sampleRecords(), Criteria{Text: "dent"})

	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got = Filter(sampleRecords(), Criteria{Text: "DENTAL"})
	assert.Len(t, got, 2)
}

func TestFilterExactMatchFacets(t *testing.T) {
	records := sampleRecords()

	assert.Len(t, Filter(records, Criteria{State: "Delhi"}), 1)
	assert.Empty(t, Filter(records, Criteria{State: "delhi"}), "state match is case-sensitive")
	assert.Len(t, Filter(records, Criteria{City: "Mumbai"}), 1)
	assert.Len(t, Filter(records, Criteria{Ownership: OwnershipGovernment}), 2)
	assert.Len(t, Filter(records, Criteria{Category: CategoryDental}), 2)
}

func TestFilterCourseMembership(t *testing.T) {
	got := Filter(sampleRecords(), Criteria{Course: "BDS"})
	assert.Len(t, got, 2)

	got = Filter(sampleRecords(), Criteria{Course: "MDS"})
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterCombinesCriteria(t *testing.T) {
	got := Filter(sampleRecords(), Criteria{Text: "dent", Ownership: OwnershipGovernment})
	assert.Len(t, got, 1)
	assert.Equal(t, "Zeta Dental College", got[0].Name)
}

func TestSortByNameStable(t *testing.T) {
	records := sampleRecords() // Zeta, Alpha, Beta
	got := SortBy(records, SortByName)

	assert.Equal(t, []int{2, 3, 1}, ids(got))
	// input untouched
	assert.Equal(t, 1, records[0].ID)
}

func TestSortByNameTiesKeepOriginalOrder(t *testing.T) {
	records := []Record{
		{ID: 5, Name: "Same Name"},
		{ID: 2, Name: "Same Name"},
		{ID: 9, Name: "Another"},
	}
	got := SortBy(records, SortByName)
	assert.Equal(t, []int{9, 5, 2}, ids(got))
}

func TestSortByRankDefault(t *testing.T) {
	records := []Record{{ID: 3}, {ID: 1}, {ID: 2}}
	got := SortBy(records, SortByRank)
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestSortByEstablishedMissingYearFirst(t *testing.T) {
	// Record 3 carries no established year; its zero value sorts before
	// any real year.
	got := SortBy(sampleRecords(), SortByEstablished)
	assert.Equal(t, []int{3, 2, 1}, ids(got))
}

func TestSortByPlacementDescendingMissingLast(t *testing.T) {
	// "₹15 LPA" > "₹10 LPA" > "N/A" (no parseable number scores zero).
	got := SortBy(sampleRecords(), SortByPlacement)
	assert.Equal(t, []int{3, 1, 2}, ids(got))
}

func TestDistinctValuesCourseFlattensAndDedupes(t *testing.T) {
	got := DistinctValues(sampleRecords(), "course")
	assert.Equal(t, []string{"BDS", "MBBS", "MD", "MDS"}, got)
}

func TestDistinctValuesScalarSkipsEmpty(t *testing.T) {
	records := append(sampleRecords(), Record{ID: 4, Name: "No State"})

	assert.Equal(t, []string{"Delhi", "Karnataka", "Maharashtra"}, DistinctValues(records, "state"))
	assert.Equal(t, []string{OwnershipGovernment, OwnershipPrivate}, DistinctValues(records, "ownership"))
}

func TestQueryOperationsTotalOverMalformedRecords(t *testing.T) {
	malformed := []Record{{}, {ID: 7}}

	assert.NotPanics(t, func() {
		Filter(malformed, Criteria{Text: "x", Course: "BDS"})
		SortBy(malformed, SortByPlacement)
		SortBy(malformed, SortByEstablished)
		DistinctValues(malformed, "course")
		DistinctValues(malformed, "city")
	})
}

func ids(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
