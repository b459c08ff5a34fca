package model

import (
	"time"

	"gorm.io/gorm"
)

// Lead is one brochure/counseling request captured from a visitor. Phone
// is stored as entered; the capture form applies no format validation.
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string         `gorm:"type:varchar(50);not null" json:"phone"`
	CollegeID uint           `gorm:"index" json:"college_id"`
	College   string         `gorm:"type:varchar(255)" json:"college"` // denormalized display name
	Source    string         `gorm:"type:varchar(50)" json:"source"`   // brochure, counseling
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// LeadStat is one aggregated per-college lead count, maintained by the
// hourly aggregation job.
type LeadStat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CollegeID  uint      `gorm:"uniqueIndex;not null" json:"college_id"`
	LeadCount  int64     `gorm:"not null" json:"lead_count"`
	ComputedAt time.Time `json:"computed_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for LeadStat
func (LeadStat) TableName() string {
	return "lead_stats"
}
