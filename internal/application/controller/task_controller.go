package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/state"
	"todolist-api/internal/domain/usecase/task"
	"todolist-api/internal/domain/usecase/todo"
	"todolist-api/pkg/util/numberutils"
)

type TaskController struct {
	api          *echo.Group
	taskUseCase  task.UseCase
	todoUseCase  todo.UseCase
	stateUseCase state.UseCase
	defaultState string
	auth         echo.MiddlewareFunc
}

func NewTaskController(api *echo.Group, taskUseCase task.UseCase, todoUseCase todo.UseCase, stateUseCase state.UseCase, defaultState string, auth echo.MiddlewareFunc) *TaskController {
	return &TaskController{
		api:          api,
		taskUseCase:  taskUseCase,
		todoUseCase:  todoUseCase,
		stateUseCase: stateUseCase,
		defaultState: defaultState,
		auth:         auth,
	}
}

func (controller *TaskController) InitTaskRoutes() {
	controller.api.GET("/tasks/create/todos/:todo_id", controller.CreateForm, controller.auth)
	controller.api.POST("/tasks/create/todos/:todo_id", controller.Create, controller.auth)
	controller.api.GET("/tasks/:task_id/update/todos/:todo_id", controller.UpdateForm, controller.auth)
	controller.api.POST("/tasks/:task_id/update/todos/:todo_id", controller.Update, controller.auth)
	controller.api.GET("/tasks/:task_id/delete/todos/:todo_id", controller.Delete, controller.auth)
}

// CreateForm godoc
// @Summary Get the task create form model
// @Tags tasks
// @Produce json
// @Param todo_id path int true "To-do id"
// @Success 200 {object} map[string]interface{} "Empty task form with priority options"
// @Failure 404 {object} map[string]string "To-do not found"
// @Router /tasks/create/todos/{todo_id} [get]
func (controller *TaskController) CreateForm(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}

	found, err := controller.todoUseCase.ReadByID(todoID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"task":       model.TaskFormDTO{},
		"todo":       found,
		"priorities": entity.Priorities(),
	})
}

// Create godoc
// @Summary Create a task in a to-do
// @Description New tasks start in the configured default state
// @Tags tasks
// @Accept json
// @Produce json
// @Param todo_id path int true "To-do id"
// @Param task body model.TaskFormDTO true "Task data"
// @Success 303 "Redirect to the to-do's task view"
// @Failure 400 {object} map[string]interface{} "Form re-rendered with field errors"
// @Failure 404 {object} map[string]string "To-do not found"
// @Router /tasks/create/todos/{todo_id} [post]
func (controller *TaskController) Create(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}

	found, err := controller.todoUseCase.ReadByID(todoID)
	if err != nil {
		return writeError(c, err)
	}

	var dto model.TaskFormDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if fields := dto.Validate(); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"task":       dto,
			"todo":       found,
			"priorities": entity.Priorities(),
			"errors":     fields,
		})
	}

	initial, err := controller.stateUseCase.GetByName(controller.defaultState)
	if err != nil {
		return writeError(c, err)
	}

	if _, err := controller.taskUseCase.Create(&entity.Task{
		Name:     dto.Name,
		Priority: entity.Priority(dto.Priority),
		StateID:  &initial.ID,
		TodoID:   found.ID,
	}); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodoTasks(todoID))
}

// UpdateForm godoc
// @Summary Get the task edit form model
// @Tags tasks
// @Produce json
// @Param task_id path int true "Task id"
// @Param todo_id path int true "To-do id"
// @Success 200 {object} map[string]interface{} "Task form with priority and state options"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{task_id}/update/todos/{todo_id} [get]
func (controller *TaskController) UpdateForm(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	taskID, err := numberutils.ToUintWithError(c.Param("task_id"))
	if err != nil {
		return invalidParam(c, "task_id")
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}

	found, err := controller.taskUseCase.ReadByID(taskID)
	if err != nil {
		return writeError(c, err)
	}
	states, err := controller.stateUseCase.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"task":       found,
		"todoId":     todoID,
		"priorities": entity.Priorities(),
		"states":     states,
	})
}

// Update godoc
// @Summary Update a task's name, priority and state
// @Tags tasks
// @Accept json
// @Produce json
// @Param task_id path int true "Task id"
// @Param todo_id path int true "To-do id"
// @Param task body model.TaskFormDTO true "Task data"
// @Success 303 "Redirect to the to-do's task view"
// @Failure 400 {object} map[string]interface{} "Form re-rendered with field errors"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{task_id}/update/todos/{todo_id} [post]
func (controller *TaskController) Update(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	taskID, err := numberutils.ToUintWithError(c.Param("task_id"))
	if err != nil {
		return invalidParam(c, "task_id")
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}

	var dto model.TaskFormDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if fields := dto.Validate(); len(fields) > 0 {
		states, stateErr := controller.stateUseCase.GetAll()
		if stateErr != nil {
			return writeError(c, stateErr)
		}
		return c.JSON(http.StatusBadRequest, echo.Map{
			"task":       dto,
			"todoId":     todoID,
			"priorities": entity.Priorities(),
			"states":     states,
			"errors":     fields,
		})
	}

	oldTask, err := controller.taskUseCase.ReadByID(taskID)
	if err != nil {
		return writeError(c, err)
	}

	updated := *oldTask
	updated.Name = dto.Name
	updated.Priority = entity.Priority(dto.Priority)
	if dto.StateID != 0 {
		submitted, err := controller.stateUseCase.ReadByID(dto.StateID)
		if err != nil {
			return writeError(c, err)
		}
		updated.StateID = &submitted.ID
		updated.State = nil
	}
	if _, err := controller.taskUseCase.Update(&updated); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodoTasks(todoID))
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param task_id path int true "Task id"
// @Param todo_id path int true "To-do id"
// @Success 303 "Redirect to the to-do's task view"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{task_id}/delete/todos/{todo_id} [get]
func (controller *TaskController) Delete(c echo.Context) error {
	if _, ok := requirePrincipal(c); !ok {
		return unauthenticated(c)
	}
	taskID, err := numberutils.ToUintWithError(c.Param("task_id"))
	if err != nil {
		return invalidParam(c, "task_id")
	}
	todoID, err := numberutils.ToUintWithError(c.Param("todo_id"))
	if err != nil {
		return invalidParam(c, "todo_id")
	}

	if err := controller.taskUseCase.Delete(taskID); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodoTasks(todoID))
}
