package state

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(state *entity.State) (*entity.State, error)
	ReadByID(id uint) (*entity.State, error)
	Update(state *entity.State) (*entity.State, error)
	Delete(id uint) error
	GetAll() ([]entity.State, error)
	// GetByName matches the state name exactly.
	GetByName(name string) (*entity.State, error)
}

// Cache is the read-through cache for state reference data. A nil Cache
// disables caching; cache failures never fail the request.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}
