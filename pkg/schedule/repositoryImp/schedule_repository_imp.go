package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) Create(s *entities.Schedule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.Employee{}).Where("id = ?", s.EmployeeID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return entities.ErrDanglingReference
		}
		return tx.Create(s).Error
	})
}

func (r *schedRepo) List(employeeID uint, from, to string) ([]entities.Schedule, error) {
	var out []entities.Schedule
	q := r.db.Where("employee_id = ?", employeeID)
	if from != "" {
		if s, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("date >= ?", s)
		}
	}
	if to != "" {
		if e, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("date <= ?", e)
		}
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
