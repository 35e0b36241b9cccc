package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pmu/entities"
	"pmu/pkg/middleware"
	"pmu/pkg/target/repository"
)

type TargetCtrl struct{ repo repository.TargetRepository }

func New(repo repository.TargetRepository) *TargetCtrl { return &TargetCtrl{repo} }

func (h *TargetCtrl) Create(c echo.Context) error {
	var req struct {
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	dl, _ := time.Parse("2006-01-02", req.Deadline)
	t := &entities.Target{Description: req.Description, Deadline: dl, EmployeeID: middleware.UID(c)}
	if err := h.repo.Create(t); err != nil {
		if errors.Is(err, entities.ErrDanglingReference) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "employee does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TargetCtrl) List(c echo.Context) error {
	out, err := h.repo.ListByEmployee(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TargetCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
