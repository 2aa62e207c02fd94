package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmarket-server/models"
)

// newTestDB opens an isolated in-memory database named after the test. A
// single connection keeps every query on the same memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Skill{},
		&models.Worker{},
		&models.HourlyRateApproval{},
		&models.Task{},
		&models.TaskRequest{},
		&models.Rating{},
	))

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) (models.User, models.Customer) {
	t.Helper()

	user := models.User{
		Username:     name,
		Email:        name + "@example.com",
		PhoneNumber:  "0000000",
		PasswordHash: "irrelevant",
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	customer := models.Customer{UserID: user.ID}
	require.NoError(t, db.Create(&customer).Error)

	return user, customer
}

func seedWorker(t *testing.T, db *gorm.DB, name string) (models.User, models.Worker) {
	t.Helper()

	user := models.User{
		Username:     name,
		Email:        name + "@example.com",
		PhoneNumber:  "0000000",
		PasswordHash: "irrelevant",
		Role:         models.RoleWorker,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	worker := models.Worker{UserID: user.ID, HourlyRate: 40, RateApproved: true}
	require.NoError(t, db.Create(&worker).Error)

	return user, worker
}

// newTask builds a create payload with an hour-based window on a fixed day.
func newTask(workerID *uint, hourStart, hourEnd int) models.TaskCreateRequest {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return models.TaskCreateRequest{
		Title:     "fix the fence",
		Location:  "backyard",
		StartTime: day.Add(time.Duration(hourStart) * time.Hour),
		EndTime:   day.Add(time.Duration(hourEnd) * time.Hour),
		WorkerID:  workerID,
	}
}
