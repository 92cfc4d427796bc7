package db

import (
	"todolist-api/internal/domain/entity"
)

type UserGateway interface {
	FindAll() ([]entity.User, error)
	FindByID(id uint) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)

	Create(user entity.User) (*entity.User, error)
	Update(user entity.User) (*entity.User, error)
	DeleteByID(id uint) error
}
