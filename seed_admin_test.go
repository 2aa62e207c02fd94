package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmarket-server/config"
	"taskmarket-server/models"
	"taskmarket-server/utils"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestSeedAdminUser(t *testing.T) {
	db := newSeedTestDB(t)

	// nothing happens without the env vars
	config.AppConfig = &config.Config{}
	require.NoError(t, seedAdminUser(db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	config.AppConfig.Admin = config.AdminConfig{
		Username: "root",
		Email:    "root@example.com",
		Password: "sup3r-secret",
	}
	require.NoError(t, seedAdminUser(db))
	require.NoError(t, seedAdminUser(db))

	var admins []models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsActive)
	assert.True(t, admins[0].EmailVerified)
	assert.True(t, utils.CheckPasswordHash("sup3r-secret", admins[0].PasswordHash))
}
