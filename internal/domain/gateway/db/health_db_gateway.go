package db

import "todolist-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
