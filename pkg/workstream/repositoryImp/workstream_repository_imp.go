package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/workstream/repository"
)

type wsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WorkStreamRepository { return &wsRepo{db} }

func (r *wsRepo) Create(ws *entities.WorkStream) error { return r.db.Create(ws).Error }

func (r *wsRepo) FindByID(id uint) (*entities.WorkStream, error) {
	var ws entities.WorkStream
	if err := r.db.First(&ws, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &ws, nil
}

func (r *wsRepo) ListByEmployee(employeeID uint) ([]entities.WorkStream, error) {
	var out []entities.WorkStream
	if err := r.db.Where("employee_id = ?", employeeID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *wsRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ws entities.WorkStream
		if err := tx.First(&ws, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrNotFound
			}
			return err
		}
		if err := tx.Where("workstream_id = ?", id).Delete(&entities.WorkPlan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ws).Error
	})
}

func (r *wsRepo) CreateWorkPlan(wp *entities.WorkPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.WorkStream{}).Where("id = ?", wp.WorkstreamID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return entities.ErrDanglingReference
		}
		if wp.Status == "" {
			wp.Status = entities.StatusNotStarted
		}
		return tx.Create(wp).Error
	})
}

func (r *wsRepo) ListWorkPlans(workstreamID uint) ([]entities.WorkPlan, error) {
	var out []entities.WorkPlan
	if err := r.db.Where("workstream_id = ?", workstreamID).Order("deadline ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *wsRepo) DeleteWorkPlan(id uint) error {
	res := r.db.Delete(&entities.WorkPlan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
