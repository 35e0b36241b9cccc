package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pmu/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Employee{},
		&entities.WorkStream{},
		&entities.WorkPlan{},
		&entities.Target{},
	))
	return db
}

func TestEmployeeReportAggregation(t *testing.T) {
	db := setupTestDB(t)

	e := entities.Employee{Name: "Somanchi", Email: "rsomanchi@tns.org"}
	require.NoError(t, db.Create(&e).Error)

	ws1 := entities.WorkStream{Title: "Cotton", EmployeeID: e.ID}
	ws2 := entities.WorkStream{Title: "Dairy", EmployeeID: e.ID}
	require.NoError(t, db.Create(&ws1).Error)
	require.NoError(t, db.Create(&ws2).Error)

	plans := []entities.WorkPlan{
		{Title: "a", WorkstreamID: ws1.ID, Status: entities.StatusCompleted},
		{Title: "b", WorkstreamID: ws1.ID, Status: entities.StatusInProgress},
		{Title: "c", WorkstreamID: ws2.ID, Status: entities.StatusCompleted},
		{Title: "d", WorkstreamID: ws2.ID, Status: entities.StatusNotStarted},
	}
	require.NoError(t, db.Create(&plans).Error)

	targets := []entities.Target{
		{Description: "t1", EmployeeID: e.ID, Status: entities.StatusCompleted},
		{Description: "t2", EmployeeID: e.ID, Status: entities.StatusNotStarted},
	}
	require.NoError(t, db.Create(&targets).Error)

	rows, err := New(db).EmployeeReport()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 2, row.WorkstreamCount)
	assert.Equal(t, 4, row.WorkPlanCount)
	assert.Equal(t, 2, row.CompletedWorkPlans)
	assert.Equal(t, 2, row.TargetCount)
	assert.Equal(t, 1, row.CompletedTargets)
	assert.InDelta(t, 50.0, row.WorkPlanPct, 0.001)
	assert.InDelta(t, 50.0, row.TargetPct, 0.001)
}

func TestEmployeeReportZeroItems(t *testing.T) {
	db := setupTestDB(t)

	e := entities.Employee{Name: "Pari", Email: "paris@tns.org"}
	require.NoError(t, db.Create(&e).Error)

	rows, err := New(db).EmployeeReport()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Zero(t, row.WorkstreamCount)
	assert.Zero(t, row.WorkPlanCount)
	assert.Equal(t, 0.0, row.WorkPlanPct, "no division by zero")
	assert.Equal(t, 0.0, row.TargetPct)
}

func TestEmployeeReportIsReadOnly(t *testing.T) {
	db := setupTestDB(t)

	e := entities.Employee{Name: "Muskan", Email: "mkaushal@tns.org"}
	require.NoError(t, db.Create(&e).Error)
	ws := entities.WorkStream{Title: "Water", EmployeeID: e.ID}
	require.NoError(t, db.Create(&ws).Error)
	wp := entities.WorkPlan{Title: "a", WorkstreamID: ws.ID, Status: entities.StatusInProgress}
	require.NoError(t, db.Create(&wp).Error)

	svc := New(db)
	first, err := svc.EmployeeReport()
	require.NoError(t, err)
	second, err := svc.EmployeeReport()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var got entities.WorkPlan
	require.NoError(t, db.First(&got, wp.ID).Error)
	assert.Equal(t, entities.StatusInProgress, got.Status)
}

func TestEmployeeReportReflectsLatestWrite(t *testing.T) {
	db := setupTestDB(t)

	e := entities.Employee{Name: "Rupesh", Email: "rmukherjee@tns.org"}
	require.NoError(t, db.Create(&e).Error)
	ws := entities.WorkStream{Title: "PMU", EmployeeID: e.ID}
	require.NoError(t, db.Create(&ws).Error)
	wp := entities.WorkPlan{Title: "a", WorkstreamID: ws.ID, Status: entities.StatusNotStarted}
	require.NoError(t, db.Create(&wp).Error)

	svc := New(db)
	rows, err := svc.EmployeeReport()
	require.NoError(t, err)
	assert.Zero(t, rows[0].CompletedWorkPlans)

	require.NoError(t, db.Model(&entities.WorkPlan{}).Where("id = ?", wp.ID).Update("status", entities.StatusCompleted).Error)

	rows, err = svc.EmployeeReport()
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].CompletedWorkPlans)
	assert.InDelta(t, 100.0, rows[0].WorkPlanPct, 0.001)
}
