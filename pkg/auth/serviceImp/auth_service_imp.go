package serviceImp

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/auth/service"
	"pmu/pkg/middleware"
)

type authSvc struct {
	db     *gorm.DB
	secret string
}

func New(db *gorm.DB, secret string) service.AuthService { return &authSvc{db, secret} }

func (s *authSvc) Login(email, password string) (*entities.Employee, string, error) {
	var e entities.Employee
	if err := s.db.Where("email = ?", email).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", service.ErrBadCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) != nil {
		return nil, "", service.ErrBadCredentials
	}
	tok, err := middleware.NewToken(e.ID, s.secret)
	if err != nil {
		return nil, "", err
	}
	return &e, tok, nil
}

func (s *authSvc) Get(id uint) (*entities.Employee, error) {
	var e entities.Employee
	if err := s.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
