package db

import (
	"todolist-api/internal/domain/entity"
)

type StateGateway interface {
	FindAll() ([]entity.State, error)
	FindByID(id uint) (*entity.State, error)
	FindByName(name string) (*entity.State, error)

	Create(state entity.State) (*entity.State, error)
	Update(state entity.State) (*entity.State, error)
	DeleteByID(id uint) error
}
