package cron

import (
	"fmt"
	"time"

	"github.com/sahilchouksey/college-compass-api/model"
	"gorm.io/gorm/clause"
)

// AggregateLeadStats recomputes per-college lead counts.
// Runs hourly so the admin dashboard reads a cheap aggregate instead
// of counting the leads table on every request.
func (m *CronManager) AggregateLeadStats() {
	jobName := "aggregate_lead_stats"

	type leadCount struct {
		CollegeID uint
		Count     int64
	}

	var counts []leadCount
	err := m.db.Model(&model.Lead{}).
		Select("college_id, COUNT(*) as count").
		Where("college_id > 0").
		Group("college_id").
		Find(&counts).Error
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count leads: %w", err))
		return
	}

	now := time.Now()
	updated := 0
	for _, c := range counts {
		stat := model.LeadStat{
			CollegeID:  c.CollegeID,
			LeadCount:  c.Count,
			ComputedAt: now,
		}
		err := m.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "college_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lead_count", "computed_at", "updated_at"}),
		}).Create(&stat).Error
		if err != nil {
			m.logJobError(jobName, fmt.Errorf("failed to upsert stat for college %d: %w", c.CollegeID, err))
			return
		}
		updated++
	}

	m.logJobComplete(jobName, fmt.Sprintf("Aggregated lead stats for %d colleges", updated))
}

// CleanupOldData purges records that are past their retention window.
// Runs daily at 2 AM.
func (m *CronManager) CleanupOldData() {
	jobName := "cleanup_old_data"

	// Colleges soft-deleted more than 30 days ago are removed for good
	cutoff := time.Now().AddDate(0, 0, -30)
	res := m.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&model.College{})
	if res.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to purge deleted colleges: %w", res.Error))
		return
	}
	purgedColleges := res.RowsAffected

	// Expired blacklist entries no longer gate anything
	res = m.db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&model.JWTTokenBlacklist{})
	if res.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to purge expired tokens: %w", res.Error))
		return
	}
	purgedTokens := res.RowsAffected

	// Old cron logs
	logCutoff := time.Now().AddDate(0, 0, -90)
	res = m.db.Unscoped().
		Where("started_at < ?", logCutoff).
		Delete(&model.CronJobLog{})
	if res.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to purge cron logs: %w", res.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf(
		"Purged %d colleges, %d tokens, %d cron logs",
		purgedColleges, purgedTokens, res.RowsAffected))
}
