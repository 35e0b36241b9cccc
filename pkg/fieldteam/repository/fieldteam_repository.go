package repository

import "pmu/entities"

type FieldTeamRepository interface {
	Create(ft *entities.FieldTeam) error
	List() ([]entities.FieldTeam, error)
	FindByID(id uint) (*entities.FieldTeam, error)
	// Delete removes the team and all its tasks in one transaction.
	Delete(id uint) error

	CreateTask(t *entities.Task) error
	ListTasks(fieldTeamID uint) ([]entities.Task, error)
	DeleteTask(id uint) error
}
