package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criteria is the set of active search/filter inputs. Empty fields are not
// applied and match every record.
type Criteria struct {
	Text      string // case-insensitive substring match on name
	State     string // exact match
	City      string // exact match
	Course    string // membership in the record's course list
	Ownership string // exact match
	Category  string // exact match
}

// SortKey selects the ordering applied by SortBy.
type SortKey string

const (
	SortByRank        SortKey = "rank"        // default: id ascending
	SortByName        SortKey = "name"        // name ascending
	SortByEstablished SortKey = "established" // year ascending, missing first
	SortByPlacement   SortKey = "placement"   // average package descending
)

// Filter returns the records satisfying every present criterion, in their
// original relative order. An empty Criteria returns the input unchanged.
func Filter(records []Record, c Criteria) []Record {
	if c == (Criteria{}) {
		return records
	}

	text := strings.ToLower(c.Text)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if text != "" && !strings.Contains(strings.ToLower(r.Name), text) {
			continue
		}
		if c.State != "" && r.State != c.State {
			continue
		}
		if c.City != "" && r.City != c.City {
			continue
		}
		if c.Ownership != "" && r.Ownership != c.Ownership {
			continue
		}
		if c.Category != "" && r.Category != c.Category {
			continue
		}
		if c.Course != "" && !containsString(r.Courses, c.Course) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortBy returns a new ordering of records by the given key. The sort is
// stable: records that compare equal keep their original relative order.
// The input slice is never mutated.
func SortBy(records []Record, key SortKey) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	switch key {
	case SortByName:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByEstablished:
		// A missing year is zero and therefore sorts before any real year.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Established < out[j].Established
		})
	case SortByPlacement:
		// Descending by the first integer found in averagePackage; records
		// with no parseable number score zero and end up last.
		sort.SliceStable(out, func(i, j int) bool {
			return packageScore(out[i]) > packageScore(out[j])
		})
	default: // SortByRank
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID < out[j].ID
		})
	}
	return out
}

// DistinctValues returns the lexicographically sorted set of unique values
// for the given field across records. "course" flattens every record's
// course list; the scalar fields (state, city, ownership, category) skip
// empty values. The result always reflects the full record set handed in,
// never a filtered subset.
func DistinctValues(records []Record, field string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if field == "course" {
			for _, c := range r.Courses {
				if c != "" {
					seen[c] = struct{}{}
				}
			}
			continue
		}
		if v := scalarField(r, field); v != "" {
			seen[v] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

var firstNumber = regexp.MustCompile(`\d+`)

// packageScore extracts the first integer from the record's average
// package string, e.g. "₹10 LPA" -> 10. Unparseable packages score zero.
func packageScore(r Record) int {
	m := firstNumber.FindString(r.Placements.AveragePackage)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func scalarField(r Record, field string) string {
	switch field {
	case "state":
		return r.State
	case "city":
		return r.City
	case "ownership":
		return r.Ownership
	case "category":
		return r.Category
	}
	return ""
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
