package db

import (
	"todolist-api/internal/domain/entity"
)

type ToDoGateway interface {
	FindAll() ([]entity.ToDo, error)
	FindByID(id uint) (*entity.ToDo, error)
	// FindByUserID returns to-dos the user owns or collaborates on.
	FindByUserID(userID uint) ([]entity.ToDo, error)

	Create(todo entity.ToDo) (*entity.ToDo, error)
	Update(todo entity.ToDo) (*entity.ToDo, error)
	DeleteByID(id uint) error

	AddCollaborator(todoID, userID uint) error
	RemoveCollaborator(todoID, userID uint) error
}
