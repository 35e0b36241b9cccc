package repository

import "pmu/entities"

type ScheduleRepository interface {
	Create(s *entities.Schedule) error
	List(employeeID uint, from, to string) ([]entities.Schedule, error)
}
