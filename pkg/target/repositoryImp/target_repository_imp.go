package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/target/repository"
)

type targetRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TargetRepository { return &targetRepo{db} }

func (r *targetRepo) Create(t *entities.Target) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.Employee{}).Where("id = ?", t.EmployeeID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return entities.ErrDanglingReference
		}
		if t.Status == "" {
			t.Status = entities.StatusNotStarted
		}
		return tx.Create(t).Error
	})
}

func (r *targetRepo) FindByID(id uint) (*entities.Target, error) {
	var t entities.Target
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *targetRepo) ListByEmployee(employeeID uint) ([]entities.Target, error) {
	var out []entities.Target
	if err := r.db.Where("employee_id = ?", employeeID).Order("deadline ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *targetRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Target{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
