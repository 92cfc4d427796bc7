package user

import (
	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(user *entity.User) (*entity.User, error)
	ReadByID(id uint) (*entity.User, error)
	Update(user *entity.User) (*entity.User, error)
	Delete(id uint) error
	GetAll() ([]entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
