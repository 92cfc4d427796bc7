package apperror

import (
	"fmt"
	"testing"
)

func TestNotFoundMessages(t *testing.T) {
	t.Run("By id", func(t *testing.T) {
		err := NewNotFound("User", 20)
		if err.Error() != "User with id 20 not found" {
			t.Errorf("Wrong message: got %q", err.Error())
		}
	})

	t.Run("By name", func(t *testing.T) {
		err := NewNotFoundByName("State", "Archived")
		if err.Error() != "State with name 'Archived' not found" {
			t.Errorf("Wrong message: got %q", err.Error())
		}
	})
}

func TestNullEntityMessage(t *testing.T) {
	err := NewNullEntity("ToDo")
	if err.Error() != "ToDo cannot be 'null'" {
		t.Errorf("Wrong message: got %q", err.Error())
	}
}

func TestAccessDeniedMessage(t *testing.T) {
	err := NewAccessDenied()
	if err.Error() != "Access is denied" {
		t.Errorf("Wrong message: got %q", err.Error())
	}
}

func TestPredicates(t *testing.T) {
	notFound := NewNotFound("Task", 7)
	nullEntity := NewNullEntity("Task")
	denied := NewAccessDenied()
	validation := NewValidation(map[string]string{"name": "Name cannot be empty"})

	if !IsNotFound(notFound) || IsNotFound(nullEntity) {
		t.Error("IsNotFound misclassified an error")
	}
	if !IsNullEntity(nullEntity) || IsNullEntity(denied) {
		t.Error("IsNullEntity misclassified an error")
	}
	if !IsAccessDenied(denied) || IsAccessDenied(validation) {
		t.Error("IsAccessDenied misclassified an error")
	}
	if !IsValidation(validation) || IsValidation(notFound) {
		t.Error("IsValidation misclassified an error")
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading owner: %w", NewNotFound("User", 3))
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should match a wrapped NotFound")
	}
}
