package controller

import (
	"net/http"
	"testing"
	"time"

	"todolist-api/internal/domain/entity"
)

func newTaskController(f *fixture) *TaskController {
	return NewTaskController(f.echo.Group(""), f.taskUseCase, f.todoUseCase, f.stateUseCase, "To do", nil)
}

func seedToDoWithOwner(f *fixture) entity.User {
	userRole := entity.Role{ID: 2, Name: entity.RoleUser}
	owner := f.addUser(1, "Owner", "owner@example.com", userRole)
	f.todos.todos[1] = entity.ToDo{ID: 1, Title: "Groceries", CreatedAt: time.Now(), OwnerID: owner.ID}
	f.todos.nextID = 2
	return owner
}

func TestCreateTaskAssignsDefaultState(t *testing.T) {
	f := newFixture()
	controller := newTaskController(f)
	owner := seedToDoWithOwner(f)

	principal := asPrincipal(owner)
	c, rec := f.request(http.MethodPost, "/tasks/create/todos/1",
		`{"name":"Buy milk","priority":"HIGH"}`, &principal, "todo_id", "1")
	if err := controller.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if location := rec.Header().Get(echoHeaderLocation); location != "/todos/1/tasks" {
		t.Errorf("Expected redirect to the task view, got %q", location)
	}

	stored := f.tasks.tasks[1]
	if stored.Name != "Buy milk" {
		t.Errorf("Expected stored name, got %q", stored.Name)
	}
	if stored.Priority != entity.PriorityHigh {
		t.Errorf("Expected HIGH priority, got %q", stored.Priority)
	}
	if stored.StateID == nil || *stored.StateID != 1 {
		t.Errorf("New task must start in the default state, got %v", stored.StateID)
	}
	if stored.TodoID != 1 {
		t.Errorf("Task must belong to the to-do, got %d", stored.TodoID)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	f := newFixture()
	controller := newTaskController(f)
	owner := seedToDoWithOwner(f)

	t.Run("Empty name", func(t *testing.T) {
		principal := asPrincipal(owner)
		c, rec := f.request(http.MethodPost, "/tasks/create/todos/1",
			`{"name":"","priority":"LOW"}`, &principal, "todo_id", "1")
		if err := controller.Create(c); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", rec.Code)
		}
		payload := decodeBody(t, rec)
		fields, ok := payload["errors"].(map[string]interface{})
		if !ok || fields["name"] == nil {
			t.Errorf("Expected a name field error, got %v", payload["errors"])
		}
		if len(f.tasks.tasks) != 0 {
			t.Error("Nothing must be persisted on validation failure")
		}
	})

	t.Run("Unknown priority", func(t *testing.T) {
		principal := asPrincipal(owner)
		c, rec := f.request(http.MethodPost, "/tasks/create/todos/1",
			`{"name":"Buy milk","priority":"URGENT"}`, &principal, "todo_id", "1")
		if err := controller.Create(c); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", rec.Code)
		}
		if len(f.tasks.tasks) != 0 {
			t.Error("Nothing must be persisted on validation failure")
		}
	})

	t.Run("Unknown to-do", func(t *testing.T) {
		principal := asPrincipal(owner)
		c, rec := f.request(http.MethodPost, "/tasks/create/todos/99",
			`{"name":"Buy milk","priority":"LOW"}`, &principal, "todo_id", "99")
		if err := controller.Create(c); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	f := newFixture()
	controller := newTaskController(f)
	owner := seedToDoWithOwner(f)
	initialState := uint(1)
	f.tasks.tasks[1] = entity.Task{ID: 1, Name: "Buy milk", Priority: entity.PriorityLow, TodoID: 1, StateID: &initialState}
	f.tasks.nextID = 2

	principal := asPrincipal(owner)
	c, rec := f.request(http.MethodPost, "/tasks/1/update/todos/1",
		`{"name":"Buy oat milk","priority":"MEDIUM","stateId":3}`, &principal,
		"task_id", "1", "todo_id", "1")
	if err := controller.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d: %s", rec.Code, rec.Body.String())
	}

	stored := f.tasks.tasks[1]
	if stored.Name != "Buy oat milk" {
		t.Errorf("Expected updated name, got %q", stored.Name)
	}
	if stored.Priority != entity.PriorityMedium {
		t.Errorf("Expected MEDIUM priority, got %q", stored.Priority)
	}
	if stored.StateID == nil || *stored.StateID != 3 {
		t.Errorf("Update must take the state from the form, got %v", stored.StateID)
	}
}

func TestDeleteTask(t *testing.T) {
	f := newFixture()
	controller := newTaskController(f)
	owner := seedToDoWithOwner(f)
	stateID := uint(1)
	f.tasks.tasks[1] = entity.Task{ID: 1, Name: "Buy milk", Priority: entity.PriorityLow, TodoID: 1, StateID: &stateID}
	f.tasks.nextID = 2

	principal := asPrincipal(owner)
	c, rec := f.request(http.MethodGet, "/tasks/1/delete/todos/1", "", &principal,
		"task_id", "1", "todo_id", "1")
	if err := controller.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if location := rec.Header().Get(echoHeaderLocation); location != "/todos/1/tasks" {
		t.Errorf("Expected redirect to the task view, got %q", location)
	}
	if len(f.tasks.tasks) != 0 {
		t.Error("The task should be gone")
	}
}
