package entities

import "time"

// Schedule is a plain calendar record; it has no status lifecycle and is
// never aggregated.
type Schedule struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index" json:"employee_id"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"start_time"` // HH:MM
	EndTime    string    `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}
