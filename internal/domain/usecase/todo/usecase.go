package todo

import (
	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(todo *entity.ToDo) (*entity.ToDo, error)
	ReadByID(id uint) (*entity.ToDo, error)
	Update(todo *entity.ToDo) (*entity.ToDo, error)
	Delete(id uint) error
	GetAll() ([]entity.ToDo, error)
	// GetByUserID returns to-dos the user owns or collaborates on.
	GetByUserID(userID uint) ([]entity.ToDo, error)

	// AddCollaborator and RemoveCollaborator use set semantics: adding a
	// member twice and removing a non-member are no-ops.
	AddCollaborator(todoID, userID uint) error
	RemoveCollaborator(todoID, userID uint) error
}
