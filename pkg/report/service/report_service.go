package service

// EmployeeRow is one report line; the dashboard renders it as a table, the
// export as a spreadsheet row.
type EmployeeRow struct {
	EmployeeID         uint    `json:"employee_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	WorkstreamCount    int     `json:"workstream_count"`
	WorkPlanCount      int     `json:"workplan_count"`
	CompletedWorkPlans int     `json:"completed_workplans"`
	TargetCount        int     `json:"target_count"`
	CompletedTargets   int     `json:"completed_targets"`
	WorkPlanPct        float64 `json:"workplan_pct"`
	TargetPct          float64 `json:"target_pct"`
}

type ReportService interface {
	// EmployeeReport is read-only over the store; it never mutates state.
	EmployeeReport() ([]EmployeeRow, error)
}
