package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/usecase/user"
)

type HomeController struct {
	api         *echo.Group
	userUseCase user.UseCase
	auth        echo.MiddlewareFunc
}

func NewHomeController(api *echo.Group, userUseCase user.UseCase, auth echo.MiddlewareFunc) *HomeController {
	return &HomeController{api: api, userUseCase: userUseCase, auth: auth}
}

// InitHomeRoutes initializes the landing page routes
func (controller *HomeController) InitHomeRoutes() {
	controller.api.GET("/", controller.Home, controller.auth)
	controller.api.GET("/home", controller.Home, controller.auth)
}

// Home godoc
// @Summary Landing page model
// @Description Admins see every user, regular users see only themselves
// @Tags home
// @Produce json
// @Success 200 {object} map[string]interface{} "User list"
// @Router /home [get]
func (controller *HomeController) Home(c echo.Context) error {
	principal, ok := requirePrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var users []entity.User
	if principal.IsAdmin() {
		all, err := controller.userUseCase.GetAll()
		if err != nil {
			return writeError(c, err)
		}
		users = all
	} else {
		self, err := controller.userUseCase.ReadByID(principal.ID)
		if err != nil {
			return writeError(c, err)
		}
		users = []entity.User{*self}
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
