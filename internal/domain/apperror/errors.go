package apperror

import (
	"errors"
	"fmt"
)

// NotFound reports that no row matched the requested id or name. It carries
// the resource type name and the missing key, nothing more.
type NotFound struct {
	Resource string
	ID       uint
	Name     string
}

// NewNotFound builds a NotFound for an id lookup miss.
func NewNotFound(resource string, id uint) *NotFound {
	return &NotFound{Resource: resource, ID: id}
}

// NewNotFoundByName builds a NotFound for a name lookup miss.
func NewNotFoundByName(resource, name string) *NotFound {
	return &NotFound{Resource: resource, Name: name}
}

func (e *NotFound) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s with name '%s' not found", e.Resource, e.Name)
	}
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// NullEntity reports that a mutation received an absent entity.
type NullEntity struct {
	Resource string
}

func NewNullEntity(resource string) *NullEntity {
	return &NullEntity{Resource: resource}
}

func (e *NullEntity) Error() string {
	return fmt.Sprintf("%s cannot be 'null'", e.Resource)
}

// AccessDenied reports that the authorization guard refused the request
// before any handler logic ran.
type AccessDenied struct{}

func NewAccessDenied() *AccessDenied {
	return &AccessDenied{}
}

func (e *AccessDenied) Error() string {
	return "Access is denied"
}

// Validation reports unmet form constraints as a field-to-message map. It is
// handled locally by re-rendering the input form, never as a hard failure.
type Validation struct {
	Fields map[string]string
}

func NewValidation(fields map[string]string) *Validation {
	return &Validation{Fields: fields}
}

func (e *Validation) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func IsNotFound(err error) bool {
	var target *NotFound
	return errors.As(err, &target)
}

func IsNullEntity(err error) bool {
	var target *NullEntity
	return errors.As(err, &target)
}

func IsAccessDenied(err error) bool {
	var target *AccessDenied
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *Validation
	return errors.As(err, &target)
}
