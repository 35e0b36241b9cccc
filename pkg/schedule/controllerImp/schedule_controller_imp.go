package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pmu/entities"
	"pmu/pkg/middleware"
	repo "pmu/pkg/schedule/repository"
)

type SchedCtrl struct{ repo repo.ScheduleRepository }

func New(repo repo.ScheduleRepository) *SchedCtrl { return &SchedCtrl{repo} }

func (h *SchedCtrl) Create(c echo.Context) error {
	var req struct {
		Date      string `json:"date"` // 2006-01-02
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date"})
	}
	s := &entities.Schedule{EmployeeID: middleware.UID(c), Date: d, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := h.repo.Create(s); err != nil {
		if errors.Is(err, entities.ErrDanglingReference) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "employee does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SchedCtrl) List(c echo.Context) error {
	out, err := h.repo.List(middleware.UID(c), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
