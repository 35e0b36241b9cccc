package repositoryImp

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
	require.NoError(t, db.AutoMigrate(&entities.FieldTeam{}, &entities.Task{}))
	return db
}

func TestDuplicateTeamName(t *testing.T) {
	db := setupTestDB(t)
	r := New(db)

	require.NoError(t, r.Create(&entities.FieldTeam{Name: "Nashik Crew", PMUID: 1}))
	err := r.Create(&entities.FieldTeam{Name: "Nashik Crew", PMUID: 2})
	assert.ErrorIs(t, err, entities.ErrDuplicateKey)

	teams, err := r.List()
	require.NoError(t, err)
	assert.Len(t, teams, 1, "row count unchanged after duplicate")
}

func TestTaskDanglingTeam(t *testing.T) {
	db := setupTestDB(t)
	r := New(db)

	err := r.CreateTask(&entities.Task{Description: "soil sampling", FieldTeamID: 5})
	assert.ErrorIs(t, err, entities.ErrDanglingReference)
}

func TestDeleteTeamCascadesTasks(t *testing.T) {
	db := setupTestDB(t)
	r := New(db)

	ft := &entities.FieldTeam{Name: "Rajkot Crew", PMUID: 1}
	require.NoError(t, r.Create(ft))
	for i := 0; i < 4; i++ {
		require.NoError(t, r.CreateTask(&entities.Task{Description: "visit", FieldTeamID: ft.ID}))
	}

	require.NoError(t, r.Delete(ft.ID))

	var n int64
	require.NoError(t, db.Model(&entities.Task{}).Where("field_team_id = ?", ft.ID).Count(&n).Error)
	assert.Zero(t, n)

	_, err := r.FindByID(ft.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestTaskRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	r := New(db)

	ft := &entities.FieldTeam{Name: "Crew A", PMUID: 1}
	require.NoError(t, r.Create(ft))
	task := &entities.Task{Description: "fence repair", FieldTeamID: ft.ID}
	require.NoError(t, r.CreateTask(task))

	tasks, err := r.ListTasks(ft.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "fence repair", tasks[0].Description)
	assert.Equal(t, entities.StatusNotStarted, tasks[0].Status)

	require.NoError(t, r.DeleteTask(task.ID))
	assert.ErrorIs(t, r.DeleteTask(task.ID), entities.ErrNotFound)
}
