package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pmu/pkg/auth/controller"
	"pmu/pkg/auth/service"
	"pmu/pkg/middleware"
)

type authCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) controller.AuthController { return &authCtrl{svc} }

func (h *authCtrl) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, tok, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect email or password"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.SetCookie(&http.Cookie{Name: middleware.CookieName, Value: tok, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]any{"token": tok, "employee": e})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	e, err := h.svc.Get(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, e)
}
