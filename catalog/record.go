package catalog

// Ownership values
const (
	OwnershipGovernment = "Government"
	OwnershipPrivate    = "Private"
)

// Category values
const (
	CategoryMedical = "Medical"
	CategoryDental  = "Dental"
	CategoryPharma  = "Pharma"
)

// CourseFee describes one course offering with its fee structure
type CourseFee struct {
	Name      string `json:"name"`
	Duration  string `json:"duration"`
	TotalFees string `json:"totalFees"`
	Seats     int    `json:"seats,omitempty"`
	Level     string `json:"level"` // "UG" or "PG"
}

// Faculty holds faculty strength details
type Faculty struct {
	Total        int    `json:"total"`
	StudentRatio string `json:"studentRatio"`
}

// GraduationPercentage holds year-wise graduation rates.
// Years, UG and PG are positionally aligned: index i of each slice
// describes the same year.
type GraduationPercentage struct {
	Years []int     `json:"years"`
	UG    []float64 `json:"ug"`
	PG    []float64 `json:"pg"`
}

// Placements holds placement statistics for a college
type Placements struct {
	AveragePackage       string               `json:"averagePackage"`
	HighestPackage       string               `json:"highestPackage,omitempty"`
	GraduationPercentage GraduationPercentage `json:"graduationPercentage"`
}

// Ranking holds external ranking numbers
type Ranking struct {
	NIRF int `json:"nirf,omitempty"`
}

// Record is one college as served by the catalog API.
// Field names match the wire format of the colleges feed.
type Record struct {
	ID             int               `json:"id"`
	Slug           string            `json:"slug,omitempty"`
	Name           string            `json:"name"`
	Ownership      string            `json:"ownership"`
	Category       string            `json:"category"`
	State          string            `json:"state"`
	City           string            `json:"city"`
	Established    int               `json:"established,omitempty"`
	Courses        []string          `json:"courses"`
	CoursesAndFees []CourseFee       `json:"coursesAndFees,omitempty"`
	Amenities      []string          `json:"amenities,omitempty"`
	Cutoff         map[string]string `json:"cutoff,omitempty"`
	Faculty        Faculty           `json:"faculty"`
	Placements     Placements        `json:"placements"`
	Ranking        Ranking           `json:"ranking"`
	Logo           string            `json:"logo,omitempty"`
	Brochure       string            `json:"brochure,omitempty"`
	Overview       string            `json:"overview,omitempty"`
	ApprovedBy     string            `json:"approvedBy,omitempty"`
	CampusSize     string            `json:"campusSize,omitempty"`
}

// RouteSlug returns the identifier used for deep-linking to the record's
// profile. The stored slug wins; when it is absent the slug is re-derived
// from the name on every read.
func (r Record) RouteSlug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return Slugify(r.Name)
}

// MatchesSlug reports whether the record answers to the given route slug,
// either via its stored slug or via the slug derived from its name.
func (r Record) MatchesSlug(slug string) bool {
	return (r.Slug != "" && r.Slug == slug) || Slugify(r.Name) == slug
}
