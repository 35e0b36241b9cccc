package repository

import "pmu/entities"

type WorkStreamRepository interface {
	Create(ws *entities.WorkStream) error
	FindByID(id uint) (*entities.WorkStream, error)
	ListByEmployee(employeeID uint) ([]entities.WorkStream, error)
	// Delete removes the stream and every workplan under it in one
	// transaction.
	Delete(id uint) error

	CreateWorkPlan(wp *entities.WorkPlan) error
	ListWorkPlans(workstreamID uint) ([]entities.WorkPlan, error)
	DeleteWorkPlan(id uint) error
}
