package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/application/security"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/task"
	"todolist-api/internal/domain/usecase/todo"
	"todolist-api/internal/domain/usecase/user"
	"todolist-api/pkg/util/numberutils"
)

type ToDoController struct {
	api         *echo.Group
	todoUseCase todo.UseCase
	taskUseCase task.UseCase
	userUseCase user.UseCase
	auth        echo.MiddlewareFunc
}

func NewToDoController(api *echo.Group, todoUseCase todo.UseCase, taskUseCase task.UseCase, userUseCase user.UseCase, auth echo.MiddlewareFunc) *ToDoController {
	return &ToDoController{
		api:         api,
		todoUseCase: todoUseCase,
		taskUseCase: taskUseCase,
		userUseCase: userUseCase,
		auth:        auth,
	}
}

// InitToDoRoutes initializes to-do routes; all of them require authentication.
func (controller *ToDoController) InitToDoRoutes() {
	controller.api.GET("/todos/create/users/:owner_id", controller.CreateForm, controller.auth)
	controller.api.POST("/todos/create/users/:owner_id", controller.Create, controller.auth)
	controller.api.GET("/todos/:id/tasks", controller.Tasks, controller.auth)
	controller.api.GET("/todos/:todo_id/update/users/:owner_id", controller.UpdateForm, controller.auth)
	controller.api.POST("/todos/:todo_id/update/users/:owner_id", controller.Update, controller.auth)
	controller.api.GET("/todos/:todo_id/delete/users/:owner_id", controller.Delete, controller.auth)
	controller.api.GET("/todos/all/users/:user_id", controller.GetByUser, controller.auth)
	controller.api.GET("/todos/:id/add", controller.AddCollaborator, controller.auth)
	controller.api.GET("/todos/:id/remove", controller.RemoveCollaborator, controller.auth)
}

// CreateForm godoc
// @Summary Get the to-do create form model
// @Tags todos
// @Produce json
// @Param owner_id path int true "Owner user id"
// @Success 200 {object} map[string]interface{} "Empty to-do form"
// @Failure 403 {object} map[string]string "Access denied"
// @Router /todos/create/users/{owner_id} [get]
func (controller *ToDoController) CreateForm(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	ownerID, err := numberutils.ToUintWithError(c.Param("owner_id"))
	if err != nil {
		return invalidParam(c, "owner_id")
	}

	if !security.AllowSelf(principal, ownerID) {
		return denied(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"todo": model.ToDoFormDTO{}, "ownerId": ownerID})
}

// Create godoc
// @Summary Create a to-do for a user
// @Description Stamps the creation time, assigns the owner and redirects to the owner's list
// @Tags todos
// @Accept json
// @Produce json
// @Param owner_id path int true "Owner user id"
// @Param todo body model.ToDoFormDTO true "To-do data"
// @Success 303 "Redirect to the owner's to-do list"
// @Failure 400 {object} map[string]interface{} "Form re-rendered with field errors"
// @Failure 403 {object} map[string]string "Access denied"
// @Router /todos/create/users/{owner_id} [post]
func (controller *ToDoController) Create(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	ownerID, err := numberutils.ToUintWithError(c.Param("owner_id"))
	if err != nil {
		return invalidParam(c, "owner_id")
	}

	if !security.AllowSelf(principal, ownerID) {
		return denied(c)
	}

	var dto model.ToDoFormDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if fields := dto.Validate(); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"todo": dto, "ownerId": ownerID, "errors": fields})
	}

	owner, err := controller.userUseCase.ReadByID(ownerID)
	if err != nil {
		return writeError(c, err)
	}

	// The handler, not the service, stamps the creation time and owner.
	if _, err := controller.todoUseCase.Create(&entity.ToDo{
		Title:     dto.Title,
		CreatedAt: time.Now(),
		OwnerID:   owner.ID,
	}); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodosOf(ownerID))
}

// Tasks godoc
// @Summary Get a to-do with its tasks and sharing view
// @Description Accessible to admins, the owner and collaborators
// @Tags todos
// @Produce json
// @Param id path int true "To-do id"
// @Success 200 {object} map[string]interface{} "Tasks and collaborator candidates"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "To-do not found"
// @Router /todos/{id}/tasks [get]
func (controller *ToDoController) Tasks(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	found, err := controller.todoUseCase.ReadByID(id)
	if err != nil {
		return writeError(c, err)
	}
	if !security.Allow(principal, found.OwnerID, collaboratorIDs(found.Collaborators)) {
		return denied(c)
	}

	tasks, err := controller.taskUseCase.GetByTodoID(id)
	if err != nil {
		return writeError(c, err)
	}
	all, err := controller.userUseCase.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	candidates := make([]entity.User, 0, len(all))
	for _, u := range all {
		if u.ID != found.OwnerID {
			candidates = append(candidates, u)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"todo":    found,
		"tasks":   tasks,
		"users":   candidates,
		"owner":   principal.ID == found.OwnerID,
		"isAdmin": principal.IsAdmin(),
	})
}

// UpdateForm godoc
// @Summary Get the to-do edit form model
// @Tags todos
// @Produce json
// @Param todo_id path int true "To-do id"
// @Param owner_id path int true "Owner user id"
// @Success 200 {object} map[string]interface{} "To-do form"
// @Router /todos/{todo_id}/update/users/{owner_id} [get]
func (controller *ToDoController) UpdateForm(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}
	ownerID, err := numberutils.ToUintWithError(c.Param("owner_id"))
	if err != nil {
		return invalidParam(c, "owner_id")
	}

	if !security.AllowSelf(principal, ownerID) {
		return denied(c)
	}

	found, err := controller.todoUseCase.ReadByID(todoID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"todo": found})
}

// Update godoc
// @Summary Update a to-do's title
// @Description Owner and collaborators are preserved; only the submitted title changes
// @Tags todos
// @Accept json
// @Produce json
// @Param todo_id path int true "To-do id"
// @Param owner_id path int true "Owner user id"
// @Param todo body model.ToDoFormDTO true "To-do data"
// @Success 303 "Redirect to the owner's to-do list"
// @Failure 400 {object} map[string]interface{} "Form re-rendered with field errors"
// @Router /todos/{todo_id}/update/users/{owner_id} [post]
func (controller *ToDoController) Update(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}
	ownerID, err := numberutils.ToUintWithError(c.Param("owner_id"))
	if err != nil {
		return invalidParam(c, "owner_id")
	}

	if !security.AllowSelf(principal, ownerID) {
		return denied(c)
	}

	var dto model.ToDoFormDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if fields := dto.Validate(); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"todo": dto, "ownerId": ownerID, "errors": fields})
	}

	oldTodo, err := controller.todoUseCase.ReadByID(todoID)
	if err != nil {
		return writeError(c, err)
	}

	updated := *oldTodo
	updated.Title = dto.Title
	if _, err := controller.todoUseCase.Update(&updated); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodosOf(ownerID))
}

// Delete godoc
// @Summary Delete a to-do
// @Tags todos
// @Produce json
// @Param todo_id path int true "To-do id"
// @Param owner_id path int true "Owner user id"
// @Success 303 "Redirect to the owner's to-do list"
// @Failure 404 {object} map[string]string "To-do not found"
// @Router /todos/{todo_id}/delete/users/{owner_id} [get]
func (controller *ToDoController) Delete(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}
	ownerID, err := numberutils.ToUintWithError(c.Param("owner_id"))
	if err != nil {
		return invalidParam(c, "owner_id")
	}

	if !security.AllowSelf(principal, ownerID) {
		return denied(c)
	}

	if err := controller.todoUseCase.Delete(todoID); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodosOf(ownerID))
}

// GetByUser godoc
// @Summary List the to-dos a user owns or collaborates on
// @Tags todos
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} map[string]interface{} "To-do list"
// @Failure 403 {object} map[string]string "Access denied"
// @Router /todos/all/users/{user_id} [get]
func (controller *ToDoController) GetByUser(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	userID, err := numberutils.ToUintWithError(c.Param("user_id"))
	if err != nil {
		return invalidParam(c, "user_id")
	}

	if !security.AllowSelf(principal, userID) {
		return denied(c)
	}

	owner, err := controller.userUseCase.ReadByID(userID)
	if err != nil {
		return writeError(c, err)
	}
	todos, err := controller.todoUseCase.GetByUserID(userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"todos":   todos,
		"user":    owner,
		"isAdmin": principal.IsAdmin(),
	})
}

// AddCollaborator godoc
// @Summary Share a to-do with another user
// @Description Membership is a set: adding an existing collaborator is a no-op
// @Tags todos
// @Produce json
// @Param id path int true "To-do id"
// @Param user_id query int true "Collaborator user id"
// @Success 303 "Redirect to the to-do's task view"
// @Failure 404 {object} map[string]string "To-do or user not found"
// @Router /todos/{id}/add [get]
func (controller *ToDoController) AddCollaborator(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}
	userID, err := numberutils.ToUintWithError(c.QueryParam("user_id"))
	if err != nil {
		return invalidParam(c, "user_id")
	}

	if err := controller.todoUseCase.AddCollaborator(id, userID); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodoTasks(id))
}

// RemoveCollaborator godoc
// @Summary Stop sharing a to-do with a user
// @Description Removing a non-member is a no-op
// @Tags todos
// @Produce json
// @Param id path int true "To-do id"
// @Param user_id query int true "Collaborator user id"
// @Success 303 "Redirect to the to-do's task view"
// @Failure 404 {object} map[string]string "To-do or user not found"
// @Router /todos/{id}/remove [get]
func (controller *ToDoController) RemoveCollaborator(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}
	userID, err := numberutils.ToUintWithError(c.QueryParam("user_id"))
	if err != nil {
		return invalidParam(c, "user_id")
	}

	if err := controller.todoUseCase.RemoveCollaborator(id, userID); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodoTasks(id))
}

func collaboratorIDs(collaborators []entity.User) []uint {
	ids := make([]uint, 0, len(collaborators))
	for _, collaborator := range collaborators {
		ids = append(ids, collaborator.ID)
	}
	return ids
}
