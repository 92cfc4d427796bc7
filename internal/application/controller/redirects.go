package controller

import "fmt"

// Redirect targets mirror the navigation of the server-rendered UI.

func redirectTodosOf(userID uint) string {
	return fmt.Sprintf("/todos/all/users/%d", userID)
}

func redirectUserRead(id uint) string {
	return fmt.Sprintf("/users/%d/read", id)
}

func redirectTodoTasks(todoID uint) string {
	return fmt.Sprintf("/todos/%d/tasks", todoID)
}
