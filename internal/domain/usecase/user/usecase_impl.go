package user

import (
	"errors"

	"todolist-api/internal/domain/apperror"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

const resourceName = "User"

type userUseCase struct {
	gateway db.UserGateway
}

func NewUserUseCase(gateway db.UserGateway) UseCase {
	return &userUseCase{
		gateway: gateway,
	}
}

func (uc *userUseCase) Create(user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	return uc.gateway.Create(*user)
}

func (uc *userUseCase) ReadByID(id uint) (*entity.User, error) {
	found, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFound(resourceName, id)
	}
	return found, nil
}

// Update confirms the row still exists, then persists the replacement.
func (uc *userUseCase) Update(user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	if _, err := uc.ReadByID(user.ID); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.Update(*user)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound(resourceName, user.ID)
	}
	return updated, nil
}

// Delete is not idempotent: deleting a missing id surfaces NotFound.
func (uc *userUseCase) Delete(id uint) error {
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

func (uc *userUseCase) GetAll() ([]entity.User, error) {
	return uc.gateway.FindAll()
}

func (uc *userUseCase) GetByEmail(email string) (*entity.User, error) {
	found, err := uc.gateway.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFoundByName(resourceName, email)
	}
	return found, nil
}
