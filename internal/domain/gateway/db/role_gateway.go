package db

import (
	"todolist-api/internal/domain/entity"
)

type RoleGateway interface {
	FindAll() ([]entity.Role, error)
	FindByID(id uint) (*entity.Role, error)

	Create(role entity.Role) (*entity.Role, error)
	Update(role entity.Role) (*entity.Role, error)
	DeleteByID(id uint) error
}
