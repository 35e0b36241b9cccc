package repository

import "pmu/entities"

type TargetRepository interface {
	Create(t *entities.Target) error
	FindByID(id uint) (*entities.Target, error)
	ListByEmployee(employeeID uint) ([]entities.Target, error)
	Delete(id uint) error
}
