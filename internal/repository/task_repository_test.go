package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chaosboard/sticky-notes-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskRepository(t *testing.T) (TaskRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewTaskRepository(db), db
}

func newTask(text string, completed bool, createdAt time.Time) *models.Task {
	return &models.Task{
		ID:        uuid.NewString(),
		Text:      text,
		X:         100,
		Y:         100,
		Width:     350,
		Height:    200,
		Priority:  models.TaskPriorityLow,
		Color:     "red",
		Completed: completed,
		CreatedAt: createdAt,
	}
}

func TestTaskRepository_CreateAndFind(t *testing.T) {
	repo, _ := setupTaskRepository(t)

	task := newTask("persist me", false, time.Now().UTC())
	require.NoError(t, repo.Create(task))

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, found.ID)
	assert.Equal(t, "persist me", found.Text)
}

func TestTaskRepository_FindByID_NotFound(t *testing.T) {
	repo, _ := setupTaskRepository(t)

	_, err := repo.FindByID(uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepository_ListActive(t *testing.T) {
	repo, _ := setupTaskRepository(t)

	base := time.Now().UTC().Add(-time.Hour)
	old := newTask("old", false, base)
	recent := newTask("recent", false, base.Add(30*time.Minute))
	done := newTask("done", true, base.Add(45*time.Minute))
	for _, task := range []*models.Task{old, recent, done} {
		require.NoError(t, repo.Create(task))
	}

	tasks, err := repo.ListActive(1000)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, recent.ID, tasks[0].ID)
	assert.Equal(t, old.ID, tasks[1].ID)
}

func TestTaskRepository_ListActive_RespectsLimit(t *testing.T) {
	repo, _ := setupTaskRepository(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(newTask("note", false, base.Add(time.Duration(i)*time.Minute))))
	}

	tasks, err := repo.ListActive(3)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestTaskRepository_UpdateFields(t *testing.T) {
	repo, _ := setupTaskRepository(t)

	task := newTask("patch me", false, time.Now().UTC())
	require.NoError(t, repo.Create(task))

	err := repo.UpdateFields(task.ID, map[string]any{
		"color": "purple",
		"width": 400.0,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "purple", found.Color)
	assert.Equal(t, 400.0, found.Width)
	assert.Equal(t, "patch me", found.Text)
}

func TestTaskRepository_Delete(t *testing.T) {
	repo, db := setupTaskRepository(t)

	task := newTask("remove me", false, time.Now().UTC())
	require.NoError(t, repo.Create(task))

	require.NoError(t, repo.Delete(task.ID))

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

// setupMockedRepository backs the repository with a sqlmock connection so
// store failures can be injected.
func setupMockedRepository(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewTaskRepository(db), mock
}

func TestTaskRepository_ListActive_StoreError(t *testing.T) {
	repo, mock := setupMockedRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM `tasks`").
		WillReturnError(assert.AnError)

	_, err := repo.ListActive(1000)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateFields_StoreError(t *testing.T) {
	repo, mock := setupMockedRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tasks`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.UpdateFields(uuid.NewString(), map[string]any{"color": "green"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
