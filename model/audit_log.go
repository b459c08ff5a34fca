package model

import (
	"time"

	"gorm.io/gorm"
)

// AdminAuditLog represents the audit trail of catalog mutations
type AdminAuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"type:varchar(100);not null;index" json:"username"`
	Action     string         `gorm:"type:varchar(100);not null" json:"action"` // college_create, college_update, college_delete
	Resource   string         `gorm:"type:varchar(100)" json:"resource"`
	ResourceID uint           `json:"resource_id"`
	OldValue   string         `gorm:"type:jsonb" json:"old_value"`
	NewValue   string         `gorm:"type:jsonb" json:"new_value"`
	IPAddress  string         `gorm:"type:varchar(45)" json:"ip_address"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for AdminAuditLog
func (AdminAuditLog) TableName() string {
	return "admin_audit_logs"
}
