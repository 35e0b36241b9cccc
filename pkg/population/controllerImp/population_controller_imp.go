package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pmu/pkg/population"
)

type PopulationCtrl struct{}

func New() *PopulationCtrl { return &PopulationCtrl{} }

func (h *PopulationCtrl) Calculate(c echo.Context) error {
	var req population.Survey
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := population.Calculate(req)
	if err != nil {
		switch {
		case errors.Is(err, population.ErrInvalidSpacing),
			errors.Is(err, population.ErrUnknownState),
			errors.Is(err, population.ErrInvalidUnit):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
