package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pmu/entities"
	"pmu/pkg/middleware"
	"pmu/pkg/program/repository"
)

type ProgramCtrl struct{ repo repository.ProgramRepository }

func New(repo repository.ProgramRepository) *ProgramCtrl { return &ProgramCtrl{repo} }

func (h *ProgramCtrl) Create(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p := &entities.Program{Name: req.Name, Description: req.Description, EmployeeID: middleware.UID(c)}
	if err := h.repo.Create(p); err != nil {
		if errors.Is(err, entities.ErrDuplicateKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "program name already taken"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProgramCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProgramCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "empty patch"})
	}
	if err := h.repo.Update(uint(id), patch); err != nil {
		switch {
		case errors.Is(err, entities.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		case errors.Is(err, entities.ErrDuplicateKey):
			return c.JSON(http.StatusConflict, map[string]string{"error": "program name already taken"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ProgramCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
