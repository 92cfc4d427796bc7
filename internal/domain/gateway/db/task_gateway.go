package db

import (
	"todolist-api/internal/domain/entity"
)

type TaskGateway interface {
	FindAll() ([]entity.Task, error)
	FindByID(id uint) (*entity.Task, error)
	FindByTodoID(todoID uint) ([]entity.Task, error)

	Create(task entity.Task) (*entity.Task, error)
	Update(task entity.Task) (*entity.Task, error)
	DeleteByID(id uint) error
}
