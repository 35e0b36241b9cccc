package serviceImp

import (
	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/report/service"
)

type reportSvc struct{ db *gorm.DB }

func New(db *gorm.DB) service.ReportService { return &reportSvc{db} }

func (s *reportSvc) EmployeeReport() ([]service.EmployeeRow, error) {
	var employees []entities.Employee
	if err := s.db.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}

	rows := make([]service.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		row := service.EmployeeRow{EmployeeID: e.ID, Name: e.Name, Email: e.Email}

		var streamIDs []uint
		if err := s.db.Model(&entities.WorkStream{}).Where("employee_id = ?", e.ID).Pluck("id", &streamIDs).Error; err != nil {
			return nil, err
		}
		row.WorkstreamCount = len(streamIDs)

		if len(streamIDs) > 0 {
			var total, done int64
			if err := s.db.Model(&entities.WorkPlan{}).Where("workstream_id IN ?", streamIDs).Count(&total).Error; err != nil {
				return nil, err
			}
			if err := s.db.Model(&entities.WorkPlan{}).Where("workstream_id IN ? AND status = ?", streamIDs, entities.StatusCompleted).Count(&done).Error; err != nil {
				return nil, err
			}
			row.WorkPlanCount = int(total)
			row.CompletedWorkPlans = int(done)
		}

		var tTotal, tDone int64
		if err := s.db.Model(&entities.Target{}).Where("employee_id = ?", e.ID).Count(&tTotal).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&entities.Target{}).Where("employee_id = ? AND status = ?", e.ID, entities.StatusCompleted).Count(&tDone).Error; err != nil {
			return nil, err
		}
		row.TargetCount = int(tTotal)
		row.CompletedTargets = int(tDone)

		row.WorkPlanPct = pct(row.CompletedWorkPlans, row.WorkPlanCount)
		row.TargetPct = pct(row.CompletedTargets, row.TargetCount)
		rows = append(rows, row)
	}
	return rows, nil
}

// pct guards the zero-item case: an employee with nothing assigned reports
// 0%, not NaN.
func pct(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
