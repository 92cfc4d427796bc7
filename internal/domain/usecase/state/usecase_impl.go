package state

import (
	"context"
	"errors"
	"fmt"

	"todolist-api/internal/domain/apperror"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/gateway/db"
)

const (
	resourceName = "State"

	cacheKeyAll = "all"
)

type stateUseCase struct {
	gateway db.StateGateway
	cache   Cache
}

func NewStateUseCase(gateway db.StateGateway, cache Cache) UseCase {
	return &stateUseCase{
		gateway: gateway,
		cache:   cache,
	}
}

func (uc *stateUseCase) Create(state *entity.State) (*entity.State, error) {
	if state == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	created, err := uc.gateway.Create(*state)
	if err != nil {
		return nil, err
	}
	uc.invalidate(*created)
	return created, nil
}

func (uc *stateUseCase) ReadByID(id uint) (*entity.State, error) {
	if uc.cache != nil {
		var cached entity.State
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

func (uc *stateUseCase) Update(state *entity.State) (*entity.State, error) {
	if state == nil {
		return nil, apperror.NewNullEntity(resourceName)
	}
	old, err := uc.ReadByID(state.ID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.gateway.Update(*state)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound(resourceName, state.ID)
	}
	uc.invalidate(*old)
	uc.invalidate(*updated)
	return updated, nil
}

func (uc *stateUseCase) Delete(id uint) error {
	old, err := uc.ReadByID(id)
	if err != nil {
		return err
	}
	if err := uc.gateway.DeleteByID(id); err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return apperror.NewNotFound(resourceName, id)
		}
		return err
	}
	uc.invalidate(*old)
	return nil
}

func (uc *stateUseCase) GetAll() ([]entity.State, error) {
	if uc.cache != nil {
		var cached []entity.State
		if err := uc.cache.Get(context.Background(), cacheKeyAll, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	states, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(context.Background(), cacheKeyAll, states)
	}
	return states, nil
}

func (uc *stateUseCase) GetByName(name string) (*entity.State, error) {
	if uc.cache != nil {
		var cached entity.State
		if err := uc.cache.Get(context.Background(), cacheKeyName(name), &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	found, err := uc.gateway.FindByName(name)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperror.NewNotFoundByName(resourceName, name)
	}

	if uc.cache != nil {
		_ = uc.cache.Set(context.Background(), cacheKeyName(name), found)
	}
	return found, nil
}

func (uc *stateUseCase) invalidate(state entity.State) {
	if uc.cache == nil {
		return
	}
	ctx := context.Background()
	_ = uc.cache.Delete(ctx, cacheKeyAll)
	_ = uc.cache.Delete(ctx, cacheKeyID(state.ID))
	_ = uc.cache.Delete(ctx, cacheKeyName(state.Name))
}

func cacheKeyID(id uint) string {
	return fmt.Sprintf("id::%d", id)
}

func cacheKeyName(name string) string {
	return "name::" + name
}
