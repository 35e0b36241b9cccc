package entities

import "time"

type Target struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Status      Status    `json:"status"`
	EmployeeID  uint      `gorm:"index" json:"employee_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type Program struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"uniqueIndex" json:"name"`
	Description string        `json:"description"`
	Status      ProgramStatus `json:"status"`
	EmployeeID  uint          `gorm:"index" json:"employee_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
