package role

import (
	"context"

	"todolist-api/internal/domain/entity"
)

type UseCase interface {
	Create(role *entity.Role) (*entity.Role, error)
	ReadByID(id uint) (*entity.Role, error)
	Update(role *entity.Role) (*entity.Role, error)
	Delete(id uint) error
	GetAll() ([]entity.Role, error)
}

// Cache is the read-through cache for role reference data. A nil Cache
// disables caching; cache failures never fail the request.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}
