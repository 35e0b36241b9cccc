package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pmu/entities"
	"pmu/pkg/fieldteam/repository"
	"pmu/pkg/middleware"
	"pmu/pkg/report"
)

type FieldTeamCtrl struct{ repo repository.FieldTeamRepository }

func New(repo repository.FieldTeamRepository) *FieldTeamCtrl { return &FieldTeamCtrl{repo} }

func (h *FieldTeamCtrl) Create(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ft := &entities.FieldTeam{Name: req.Name, PMUID: middleware.UID(c)}
	if err := h.repo.Create(ft); err != nil {
		if errors.Is(err, entities.ErrDuplicateKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "team name already taken"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ft)
}

func (h *FieldTeamCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldTeamCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *FieldTeamCtrl) CreateTask(c echo.Context) error {
	ftID, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	dl, _ := time.Parse("2006-01-02", req.Deadline)
	t := &entities.Task{Description: req.Description, Deadline: dl, FieldTeamID: uint(ftID)}
	if err := h.repo.CreateTask(t); err != nil {
		if errors.Is(err, entities.ErrDanglingReference) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "field team does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *FieldTeamCtrl) ListTasks(c echo.Context) error {
	ftID, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListTasks(uint(ftID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldTeamCtrl) DeleteTask(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("task_id"))
	if err := h.repo.DeleteTask(uint(id)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// Board returns the team's tasks plus a per-status tally for the field team
// management page.
func (h *FieldTeamCtrl) Board(c echo.Context) error {
	ftID, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(ftID)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	tasks, err := h.repo.ListTasks(uint(ftID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	tally := report.TallyStatus(tasks, func(t entities.Task) entities.Status { return t.Status })
	return c.JSON(http.StatusOK, map[string]any{"tasks": tasks, "tally": tally})
}
