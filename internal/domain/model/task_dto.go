package model

import (
	"strings"

	"todolist-api/internal/domain/entity"
)

// TaskFormDTO carries the task create/update form fields. StateID is only
// submitted on update; create assigns the configured default state.
type TaskFormDTO struct {
	Name     string `json:"name" form:"name"`
	Priority string `json:"priority" form:"priority"`
	StateID  uint   `json:"stateId" form:"stateId"`
}

func (dto TaskFormDTO) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(dto.Name) == "" {
		fields["name"] = "Name cannot be empty"
	}
	if !entity.Priority(dto.Priority).Valid() {
		fields["priority"] = "Priority must be one of LOW, MEDIUM, HIGH"
	}
	return fields
}
