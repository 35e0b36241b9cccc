package service

import (
	"errors"

	"pmu/entities"
)

var ErrBadCredentials = errors.New("bad credentials")

type AuthService interface {
	// Login verifies credentials and returns the employee plus a signed
	// session token.
	Login(email, password string) (*entities.Employee, string, error)
	Get(id uint) (*entities.Employee, error)
}
