package model

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CreateUserDTO carries the sign-up form fields. The password arrives in
// plain text and is hashed by the controller before the entity is persisted.
type CreateUserDTO struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

// Validate returns a field-to-message map; an empty map means the form is
// acceptable.
func (dto CreateUserDTO) Validate() map[string]string {
	fields := make(map[string]string)
	validateName(fields, "firstName", dto.FirstName)
	validateName(fields, "lastName", dto.LastName)
	validateEmail(fields, dto.Email)
	if strings.TrimSpace(dto.Password) == "" {
		fields["password"] = "Password cannot be empty"
	}
	return fields
}

// UpdateUserDTO carries the user edit form fields. An empty password keeps
// the stored hash.
type UpdateUserDTO struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	RoleID    uint   `json:"roleId" form:"roleId"`
}

func (dto UpdateUserDTO) Validate() map[string]string {
	fields := make(map[string]string)
	validateName(fields, "firstName", dto.FirstName)
	validateName(fields, "lastName", dto.LastName)
	validateEmail(fields, dto.Email)
	return fields
}

func validateName(fields map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		fields[field] = "Name cannot be empty"
	}
}

func validateEmail(fields map[string]string, value string) {
	if !emailPattern.MatchString(value) {
		fields["email"] = "Must be a valid e-mail address"
	}
}

// LoginDTO carries the login form credentials.
type LoginDTO struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
