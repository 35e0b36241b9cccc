package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"pmu/pkg/report/service"
)

type ReportCtrl struct{ svc service.ReportService }

func New(svc service.ReportService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) Employees(c echo.Context) error {
	rows, err := h.svc.EmployeeReport()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

var exportHeader = []string{
	"Employee", "Email", "Workstreams", "Workplans", "Completed Workplans",
	"Targets", "Completed Targets", "Workplan %", "Target %",
}

// ExportXLSX streams the employee report as a single-sheet workbook.
func (h *ReportCtrl) ExportXLSX(c echo.Context) error {
	rows, err := h.svc.EmployeeReport()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for i, r := range rows {
		vals := []any{
			r.Name, r.Email, r.WorkstreamCount, r.WorkPlanCount, r.CompletedWorkPlans,
			r.TargetCount, r.CompletedTargets,
			fmt.Sprintf("%.1f", r.WorkPlanPct), fmt.Sprintf("%.1f", r.TargetPct),
		}
		for j, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employee_report.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
