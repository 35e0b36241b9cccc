package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pmu/entities"
	"pmu/pkg/status/service"
)

type StatusCtrl struct{ svc service.StatusService }

func New(svc service.StatusService) *StatusCtrl { return &StatusCtrl{svc} }

func (h *StatusCtrl) Patch(c echo.Context) error {
	kind := c.Param("kind")
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Set(kind, uint(id), body.Status); err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidStatus):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid status for " + kind})
		case errors.Is(err, entities.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
