package repositoryImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/fieldteam/repository"
)

type teamRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldTeamRepository { return &teamRepo{db} }

func (r *teamRepo) Create(ft *entities.FieldTeam) error {
	if err := r.db.Create(ft).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return entities.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *teamRepo) List() ([]entities.FieldTeam, error) {
	var out []entities.FieldTeam
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *teamRepo) FindByID(id uint) (*entities.FieldTeam, error) {
	var ft entities.FieldTeam
	if err := r.db.First(&ft, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &ft, nil
}

func (r *teamRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ft entities.FieldTeam
		if err := tx.First(&ft, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrNotFound
			}
			return err
		}
		if err := tx.Where("field_team_id = ?", id).Delete(&entities.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ft).Error
	})
}

func (r *teamRepo) CreateTask(t *entities.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.FieldTeam{}).Where("id = ?", t.FieldTeamID).Count(&n).Error; err != nil {
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

func (r *teamRepo) ListTasks(fieldTeamID uint) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("field_team_id = ?", fieldTeamID).Order("deadline ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *teamRepo) DeleteTask(id uint) error {
	res := r.db.Delete(&entities.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
