package model

import "strings"

// ToDoFormDTO carries the to-do create/update form fields.
type ToDoFormDTO struct {
	Title string `json:"title" form:"title"`
}

func (dto ToDoFormDTO) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(dto.Title) == "" {
		fields["title"] = "Title cannot be empty"
	}
	return fields
}
