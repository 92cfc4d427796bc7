package todo

import (
	"errors"

	"todolist-api/internal/domain/apperror"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

const (
	resourceName     = "ToDo"
	userResourceName = "User"
)

type todoUseCase struct {
	gateway     db.ToDoGateway
	userGateway db.UserGateway
}

func NewToDoUseCase(gateway db.ToDoGateway, userGateway db.UserGateway) UseCase {
	return &todoUseCase{
		gateway:     gateway,
		userGateway: userGateway,
	}
}

// Create persists the to-do as supplied: the caller stamps CreatedAt and
// assigns the owner, they are never defaulted here.
func (uc *todoUseCase) Create(todo *entity.ToDo) (*entity.ToDo, error) {
	if todo == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	return uc.gateway.Create(*todo)
}

func (uc *todoUseCase) ReadByID(id uint) (*entity.ToDo, error) {
	found, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFound(resourceName, id)
	}
	return found, nil
}

func (uc *todoUseCase) Update(todo *entity.ToDo) (*entity.ToDo, error) {
	if todo == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	if _, err := uc.ReadByID(todo.ID); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.Update(*todo)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound(resourceName, todo.ID)
	}
	return updated, nil
}

func (uc *todoUseCase) Delete(id uint) error {
	if _, err := uc.ReadByID(id); err != nil {
		return err
	}
	if err := uc.gateway.DeleteByID(id); err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return apperror.NewNotFound(resourceName, id)
		}
		return err
	}
	return nil
}

func (uc *todoUseCase) GetAll() ([]entity.ToDo, error) {
	return uc.gateway.FindAll()
}

func (uc *todoUseCase) GetByUserID(userID uint) ([]entity.ToDo, error) {
	return uc.gateway.FindByUserID(userID)
}

func (uc *todoUseCase) AddCollaborator(todoID, userID uint) error {
	todo, err := uc.ReadByID(todoID)
	if err != nil {
		return err
	}
	if err := uc.checkUserExists(userID); err != nil {
		return err
	}

	if isCollaborator(todo.Collaborators, userID) {
		return nil
	}
	return uc.gateway.AddCollaborator(todoID, userID)
}

func (uc *todoUseCase) RemoveCollaborator(todoID, userID uint) error {
	todo, err := uc.ReadByID(todoID)
	if err != nil {
		return err
	}
	if err := uc.checkUserExists(userID); err != nil {
		return err
	}

	if !isCollaborator(todo.Collaborators, userID) {
		return nil
	}
	return uc.gateway.RemoveCollaborator(todoID, userID)
}

func (uc *todoUseCase) checkUserExists(userID uint) error {
	found, err := uc.userGateway.FindByID(userID)
	if err != nil {
		return err
	}
	if found == nil {
		return apperror.NewNotFound(userResourceName, userID)
	}
	return nil
}

func isCollaborator(collaborators []entity.User, userID uint) bool {
	for _, collaborator := range collaborators {
		if collaborator.ID == userID {
			return true
		}
	}
	return false
}
