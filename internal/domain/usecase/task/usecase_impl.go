package task

import (
	"errors"

	"todolist-api/internal/domain/apperror"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

const resourceName = "Task"

type taskUseCase struct {
	gateway db.TaskGateway
}

func NewTaskUseCase(gateway db.TaskGateway) UseCase {
	return &taskUseCase{
		gateway: gateway,
	}
}

func (uc *taskUseCase) Create(task *entity.Task) (*entity.Task, error) {
	if task == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	return uc.gateway.Create(*task)
}

func (uc *taskUseCase) ReadByID(id uint) (*entity.Task, error) {
	found, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFound(resourceName, id)
	}
	return found, nil
}

func (uc *taskUseCase) Update(task *entity.Task) (*entity.Task, error) {
	if task == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	if _, err := uc.ReadByID(task.ID); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.Update(*task)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound(resourceName, task.ID)
	}
	return updated, nil
}

func (uc *taskUseCase) Delete(id uint) error {
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

func (uc *taskUseCase) GetAll() ([]entity.Task, error) {
	return uc.gateway.FindAll()
}

func (uc *taskUseCase) GetByTodoID(todoID uint) ([]entity.Task, error) {
	return uc.gateway.FindByTodoID(todoID)
}
