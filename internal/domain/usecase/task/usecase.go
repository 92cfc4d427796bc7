package task

import (
	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(task *entity.Task) (*entity.Task, error)
	ReadByID(id uint) (*entity.Task, error)
	Update(task *entity.Task) (*entity.Task, error)
	Delete(id uint) error
	GetAll() ([]entity.Task, error)
	GetByTodoID(todoID uint) ([]entity.Task, error)
}
