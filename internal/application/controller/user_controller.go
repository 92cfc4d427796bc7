package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"todolist-api/internal/application/security"
	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/role"
	"todolist-api/internal/domain/usecase/user"
	"todolist-api/pkg/util/numberutils"
)

type UserController struct {
	api         *echo.Group
	userUseCase user.UseCase
	roleUseCase role.UseCase
	auth        echo.MiddlewareFunc
	bcryptCost  int
}

func NewUserController(api *echo.Group, userUseCase user.UseCase, roleUseCase role.UseCase, auth echo.MiddlewareFunc, bcryptCost int) *UserController {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserController{
		api:         api,
		userUseCase: userUseCase,
		roleUseCase: roleUseCase,
		auth:        auth,
		bcryptCost:  bcryptCost,
	}
}

// InitUserRoutes initializes user routes. Sign-up is public, everything else
// requires authentication.
func (controller *UserController) InitUserRoutes() {
	controller.api.GET("/users/create", controller.CreateForm)
	controller.api.POST("/users/create", controller.Create)
	controller.api.GET("/users/:id/read", controller.Read, controller.auth)
	controller.api.GET("/users/:id/update", controller.UpdateForm, controller.auth)
	controller.api.POST("/users/:id/update", controller.Update, controller.auth)
	controller.api.GET("/users/:id/delete", controller.Delete, controller.auth)
	controller.api.GET("/users/all", controller.GetAll, controller.auth)
	controller.api.GET("/users/user_todos", controller.OwnTodos, controller.auth)
}

// CreateForm godoc
// @Summary Get the sign-up form model
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Empty user form"
// @Router /users/create [get]
func (controller *UserController) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"user": model.CreateUserDTO{}})
}

// Create godoc
// @Summary Register a new user
// @Description Creates the user with the default role and redirects to their to-do list
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserDTO true "User sign-up data"
// @Success 303 "Redirect to the new user's to-do list"
// @Failure 400 {object} map[string]interface{} "Form re-rendered with field errors"
// @Router /users/create [post]
func (controller *UserController) Create(c echo.Context) error {
	var dto model.CreateUserDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if fields := dto.Validate(); len(fields) > 0 {
		dto.Password = ""
		return c.JSON(http.StatusBadRequest, echo.Map{"user": dto, "errors": fields})
	}

	defaultRole, err := controller.roleUseCase.ReadByID(entity.DefaultRoleID)
	if err != nil {
		return writeError(c, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), controller.bcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	created, err := controller.userUseCase.Create(&entity.User{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Password:  string(hash),
		RoleID:    defaultRole.ID,
		Role:      *defaultRole,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodosOf(created.ID))
}

// Read godoc
// @Summary Get one user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} map[string]interface{} "User details"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/read [get]
func (controller *UserController) Read(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if !security.AllowSelf(principal, id) {
		return denied(c)
	}

	found, err := controller.userUseCase.ReadByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": found})
}

// UpdateForm godoc
// @Summary Get the user edit form model
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} map[string]interface{} "User form with role options"
// @Router /users/{id}/update [get]
func (controller *UserController) UpdateForm(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if !security.AllowSelf(principal, id) {
		return denied(c)
	}

	found, err := controller.userUseCase.ReadByID(id)
	if err != nil {
		return writeError(c, err)
	}
	roles, err := controller.roleUseCase.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": found, "roles": roles})
}

// Update godoc
// @Summary Update a user
// @Description Applies the submitted fields and the requested role, subject to the admin-count guard
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body model.UpdateUserDTO true "User update data"
// @Success 303 "Redirect to the user view"
// @Failure 400 {object} map[string]interface{} "Form re-rendered with field errors"
// @Failure 403 {object} map[string]string "Access denied"
// @Router /users/{id}/update [post]
func (controller *UserController) Update(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if !security.AllowSelf(principal, id) {
		return denied(c)
	}

	var dto model.UpdateUserDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	oldUser, err := controller.userUseCase.ReadByID(id)
	if err != nil {
		return writeError(c, err)
	}

	if fields := dto.Validate(); len(fields) > 0 {
		roles, rolesErr := controller.roleUseCase.GetAll()
		if rolesErr != nil {
			return writeError(c, rolesErr)
		}
		dto.Password = ""
		return c.JSON(http.StatusBadRequest, echo.Map{"user": dto, "roles": roles, "errors": fields})
	}

	requestedRole, err := controller.roleUseCase.ReadByID(dto.RoleID)
	if err != nil {
		return writeError(c, err)
	}
	resolvedRole, err := controller.resolveRoleChange(oldUser.Role, *requestedRole)
	if err != nil {
		return writeError(c, err)
	}

	updated := *oldUser
	updated.FirstName = dto.FirstName
	updated.LastName = dto.LastName
	updated.Email = dto.Email
	updated.RoleID = resolvedRole.ID
	updated.Role = resolvedRole
	if dto.Password != "" {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(dto.Password), controller.bcryptCost)
		if hashErr != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": hashErr.Error()})
		}
		updated.Password = string(hash)
	}

	if _, err := controller.userUseCase.Update(&updated); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, redirectUserRead(id))
}

// resolveRoleChange keeps the old role when the change would demote the sole
// admin or promote a third admin while exactly two exist. The asymmetric
// thresholds are given behavior.
func (controller *UserController) resolveRoleChange(oldRole, requestedRole entity.Role) (entity.Role, error) {
	if oldRole.Name == requestedRole.Name {
		return requestedRole, nil
	}

	all, err := controller.userUseCase.GetAll()
	if err != nil {
		return entity.Role{}, err
	}
	adminCount := 0
	for _, u := range all {
		if u.Role.Name == entity.RoleAdmin {
			adminCount++
		}
	}

	demotingLastAdmin := requestedRole.Name == entity.RoleUser && oldRole.Name == entity.RoleAdmin && adminCount == 1
	promotingThirdAdmin := requestedRole.Name == entity.RoleAdmin && oldRole.Name == entity.RoleUser && adminCount == 2
	if demotingLastAdmin || promotingThirdAdmin {
		return oldRole, nil
	}
	return requestedRole, nil
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 303 "Redirect to the user list (admin) or the login form"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/delete [get]
func (controller *UserController) Delete(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return invalidParam(c, "id")
	}

	if !security.AllowSelf(principal, id) {
		return denied(c)
	}

	if err := controller.userUseCase.Delete(id); err != nil {
		return writeError(c, err)
	}
	if principal.IsAdmin() {
		return c.Redirect(http.StatusSeeOther, "/users/all")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// GetAll godoc
// @Summary List every user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Full user list"
// @Failure 403 {object} map[string]string "Admin only"
// @Router /users/all [get]
func (controller *UserController) GetAll(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	if !principal.IsAdmin() {
		return denied(c)
	}

	users, err := controller.userUseCase.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// OwnTodos godoc
// @Summary Redirect to the caller's own to-do list
// @Tags users
// @Success 303 "Redirect to /todos/all/users/{id}"
// @Router /users/user_todos [get]
func (controller *UserController) OwnTodos(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}
	return c.Redirect(http.StatusSeeOther, redirectTodosOf(principal.ID))
}
