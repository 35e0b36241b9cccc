package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/program/repository"
)

type programRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProgramRepository { return &programRepo{db} }

func (r *programRepo) Create(p *entities.Program) error {
	if p.Status == "" {
		p.Status = entities.ProgramActive
	}
	if err := r.db.Create(p).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return entities.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *programRepo) List() ([]entities.Program, error) {
	var out []entities.Program
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *programRepo) Update(id uint, patch map[string]any) error {
	res := r.db.Model(&entities.Program{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		if strings.Contains(res.Error.Error(), "UNIQUE constraint failed") {
			return entities.ErrDuplicateKey
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (r *programRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Program{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
