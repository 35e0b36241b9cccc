package serviceImp

import (
	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/status/service"
)

type statusSvc struct{ db *gorm.DB }

func New(db *gorm.DB) service.StatusService { return &statusSvc{db} }

func (s *statusSvc) Set(kind string, id uint, value string) error {
	var model any
	switch kind {
	case service.KindWorkPlan:
		if !entities.Status(value).Valid() {
			return entities.ErrInvalidStatus
		}
		model = &entities.WorkPlan{}
	case service.KindTarget:
		if !entities.Status(value).Valid() {
			return entities.ErrInvalidStatus
		}
		model = &entities.Target{}
	case service.KindTask:
		if !entities.Status(value).Valid() {
			return entities.ErrInvalidStatus
		}
		model = &entities.Task{}
	case service.KindProgram:
		if !entities.ProgramStatus(value).Valid() {
			return entities.ErrInvalidStatus
		}
		model = &entities.Program{}
	default:
		return entities.ErrInvalidStatus
	}

	res := s.db.Model(model).Where("id = ?", id).Update("status", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
