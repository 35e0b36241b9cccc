package entities

import "time"

type WorkStream struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"` // Cotton|Dairy|Water|PMU|...
	EmployeeID  uint   `gorm:"index" json:"employee_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type WorkPlan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	Deadline     time.Time `json:"deadline"`
	Status       Status    `json:"status"`
	WorkstreamID uint      `gorm:"index" json:"workstream_id"`
	SupervisorID uint      `gorm:"index" json:"supervisor_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
