package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"todolist-api/internal/application/security"
	"todolist-api/internal/domain/model"
	"todolist-api/internal/domain/usecase/user"
	"todolist-api/pkg/msg"
)

type AuthController struct {
	api         *echo.Group
	userUseCase user.UseCase
	codec       *security.TokenCodec
}

func NewAuthController(api *echo.Group, userUseCase user.UseCase, codec *security.TokenCodec) *AuthController {
	return &AuthController{api: api, userUseCase: userUseCase, codec: codec}
}

// InitAuthRoutes initializes login and logout routes; all of them are public.
func (controller *AuthController) InitAuthRoutes() {
	controller.api.GET("/login", controller.LoginForm)
	controller.api.POST("/login", controller.Login)
	controller.api.GET("/logout", controller.Logout)
}

// LoginForm godoc
// @Summary Get the login form model
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Empty credentials form"
// @Router /login [get]
func (controller *AuthController) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"credentials": model.LoginDTO{}})
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "Login credentials"
// @Success 200 {object} map[string]string "Signed bearer token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	found, err := controller.userUseCase.GetByEmail(dto.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": msg.GetMessage("auth.error.bad-credentials"),
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(dto.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": msg.GetMessage("auth.error.bad-credentials"),
		})
	}

	token, err := controller.codec.Issue(security.NewPrincipal(*found))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "userId": found.ID})
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, so logging out is an acknowledgement that the client drops its token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logout acknowledgement"
// @Router /logout [get]
func (controller *AuthController) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": msg.GetMessage("auth.logout"),
		"login":   "/login",
	})
}
