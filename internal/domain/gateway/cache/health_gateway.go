package cache

import "todolist-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
