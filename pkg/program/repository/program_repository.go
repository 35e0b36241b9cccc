package repository

import "pmu/entities"

type ProgramRepository interface {
	Create(p *entities.Program) error
	List() ([]entities.Program, error)
	Update(id uint, patch map[string]any) error
	Delete(id uint) error
}
