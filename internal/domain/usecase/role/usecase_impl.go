package role

import (
	"context"
	"errors"
	"fmt"

	"todolist-api/internal/domain/apperror"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

const (
	resourceName = "Role"

	cacheKeyAll = "all"
)

type roleUseCase struct {
	gateway db.RoleGateway
	cache   Cache
}

func NewRoleUseCase(gateway db.RoleGateway, cache Cache) UseCase {
	return &roleUseCase{
		gateway: gateway,
		cache:   cache,
	}
}

func (uc *roleUseCase) Create(role *entity.Role) (*entity.Role, error) {
	if role == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	created, err := uc.gateway.Create(*role)
	if err != nil {
		return nil, err
	}
	uc.invalidate(created.ID)
	return created, nil
}

func (uc *roleUseCase) ReadByID(id uint) (*entity.Role, error) {
	if uc.cache != nil {
		var cached entity.Role
		if err := uc.cache.Get(context.Background(), cacheKeyID(id), &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	found, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFound(resourceName, id)
	}

	if uc.cache != nil {
		_ = uc.cache.Set(context.Background(), cacheKeyID(id), found)
	}
	return found, nil
}

func (uc *roleUseCase) Update(role *entity.Role) (*entity.Role, error) {
	if role == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	if _, err := uc.ReadByID(role.ID); err != nil {
		return nil, err
	}

	updated, err := uc.gateway.Update(*role)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound(resourceName, role.ID)
	}
	uc.invalidate(role.ID)
	return updated, nil
}

func (uc *roleUseCase) Delete(id uint) error {
	if _, err := uc.ReadByID(id); err != nil {
		return err
	}
	if err := uc.gateway.DeleteByID(id); err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return apperror.NewNotFound(resourceName, id)
		}
		return err
	}
	uc.invalidate(id)
	return nil
}

func (uc *roleUseCase) GetAll() ([]entity.Role, error) {
	if uc.cache != nil {
		var cached []entity.Role
		if err := uc.cache.Get(context.Background(), cacheKeyAll, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	roles, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(context.Background(), cacheKeyAll, roles)
	}
	return roles, nil
}

func (uc *roleUseCase) invalidate(id uint) {
	if uc.cache == nil {
		return
	}
	ctx := context.Background()
	_ = uc.cache.Delete(ctx, cacheKeyAll)
	_ = uc.cache.Delete(ctx, cacheKeyID(id))
}

func cacheKeyID(id uint) string {
	return fmt.Sprintf("id::%d", id)
}
