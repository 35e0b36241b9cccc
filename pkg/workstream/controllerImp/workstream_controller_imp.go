package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pmu/entities"
	"pmu/pkg/middleware"
	"pmu/pkg/workstream/repository"
)

type WorkStreamCtrl struct{ repo repository.WorkStreamRepository }

func New(repo repository.WorkStreamRepository) *WorkStreamCtrl { return &WorkStreamCtrl{repo} }

type createStreamReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *WorkStreamCtrl) Create(c echo.Context) error {
	var req createStreamReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ws := &entities.WorkStream{Title: req.Title, Description: req.Description, Category: req.Category, EmployeeID: middleware.UID(c)}
	if err := h.repo.Create(ws); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ws)
}

func (h *WorkStreamCtrl) List(c echo.Context) error {
	out, err := h.repo.ListByEmployee(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WorkStreamCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

type createPlanReq struct {
	Title        string `json:"title"`
	Details      string `json:"details"`
	Deadline     string `json:"deadline"` // 2006-01-02
	SupervisorID uint   `json:"supervisor_id"`
}

func (h *WorkStreamCtrl) CreateWorkPlan(c echo.Context) error {
	wsID, _ := strconv.Atoi(c.Param("id"))
	var req createPlanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	dl, _ := time.Parse("2006-01-02", req.Deadline)
	sup := req.SupervisorID
	if sup == 0 {
		sup = middleware.UID(c)
	}
	wp := &entities.WorkPlan{Title: req.Title, Details: req.Details, Deadline: dl, WorkstreamID: uint(wsID), SupervisorID: sup}
	if err := h.repo.CreateWorkPlan(wp); err != nil {
		if errors.Is(err, entities.ErrDanglingReference) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "workstream does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, wp)
}

func (h *WorkStreamCtrl) ListWorkPlans(c echo.Context) error {
	wsID, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListWorkPlans(uint(wsID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WorkStreamCtrl) DeleteWorkPlan(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.DeleteWorkPlan(uint(id)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
