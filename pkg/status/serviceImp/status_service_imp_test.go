package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pmu/entities"
	"pmu/pkg/status/service"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.WorkPlan{},
		&entities.Target{},
		&entities.Task{},
		&entities.Program{},
	))
	return db
}

func TestSetWorkPlanStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)

	wp := entities.WorkPlan{Title: "wp", Status: entities.StatusNotStarted}
	require.NoError(t, db.Create(&wp).Error)

	require.NoError(t, svc.Set(service.KindWorkPlan, wp.ID, string(entities.StatusInProgress)))

	var got entities.WorkPlan
	require.NoError(t, db.First(&got, wp.ID).Error)
	assert.Equal(t, entities.StatusInProgress, got.Status)
}

func TestSetInvalidStatusRetainsPrior(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)

	tgt := entities.Target{Description: "t", Status: entities.StatusInProgress}
	require.NoError(t, db.Create(&tgt).Error)

	err := svc.Set(service.KindTarget, tgt.ID, "Done")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	var got entities.Target
	require.NoError(t, db.First(&got, tgt.ID).Error)
	assert.Equal(t, entities.StatusInProgress, got.Status, "rejected value must not overwrite prior status")
}

func TestSetStatusMissingRow(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)

	err := svc.Set(service.KindTask, 404, string(entities.StatusCompleted))
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestProgramStatusDomainDiffers(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)

	p := entities.Program{Name: "P", Status: entities.ProgramActive}
	require.NoError(t, db.Create(&p).Error)

	// progress statuses are not program statuses
	err := svc.Set(service.KindProgram, p.ID, string(entities.StatusInProgress))
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	require.NoError(t, svc.Set(service.KindProgram, p.ID, string(entities.ProgramOnHold)))
	var got entities.Program
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, entities.ProgramOnHold, got.Status)
}

func TestUnknownKind(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)
	assert.ErrorIs(t, svc.Set("workstream", 1, string(entities.StatusCompleted)), entities.ErrInvalidStatus)
}
