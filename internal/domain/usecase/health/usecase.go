package health

import "todolist-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
