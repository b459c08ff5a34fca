package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/sahilchouksey/college-compass-api/catalog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// College is one institution in the catalog. JSON tags follow the public
// colleges feed (camelCase), which every client of the API consumes.
type College struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Ownership   string `gorm:"type:varchar(50);not null;index" json:"ownership"` // Government | Private
	Category    string `gorm:"type:varchar(50);not null;index" json:"category"`  // Medical | Dental | Pharma
	State       string `gorm:"type:varchar(100);index" json:"state"`
	City        string `gorm:"type:varchar(100);index" json:"city"`
	Established int    `json:"established,omitempty"`

	Courses   pq.StringArray `gorm:"type:text[]" json:"courses"`
	Amenities pq.StringArray `gorm:"type:text[]" json:"amenities,omitempty"`

	CoursesAndFees datatypes.JSONSlice[catalog.CourseFee] `gorm:"type:jsonb" json:"coursesAndFees,omitempty"`
	Cutoff         datatypes.JSONType[map[string]string]  `gorm:"type:jsonb" json:"cutoff,omitempty"`
	Faculty        datatypes.JSONType[catalog.Faculty]    `gorm:"type:jsonb" json:"faculty"`
	Placements     datatypes.JSONType[catalog.Placements] `gorm:"type:jsonb" json:"placements"`
	Ranking        datatypes.JSONType[catalog.Ranking]    `gorm:"type:jsonb" json:"ranking"`

	Logo       string `gorm:"type:varchar(512)" json:"logo,omitempty"`
	Brochure   string `gorm:"type:varchar(512)" json:"brochure,omitempty"`
	Overview   string `gorm:"type:text" json:"overview,omitempty"`
	ApprovedBy string `gorm:"type:varchar(255)" json:"approvedBy,omitempty"`
	CampusSize string `gorm:"type:varchar(100)" json:"campusSize,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Leads []Lead `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for College
func (College) TableName() string {
	return "colleges"
}
