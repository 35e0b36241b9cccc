package entities

import "time"

// FieldTeam groups the tasks of one field crew under its PMU supervisor.
type FieldTeam struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex" json:"name"`
	PMUID uint   `gorm:"index" json:"pmu_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Status      Status    `json:"status"`
	FieldTeamID uint      `gorm:"index" json:"field_team_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
