package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskmarket-server/config"
	"taskmarket-server/models"
	"taskmarket-server/utils"
)

// seedAdminUser creates the bootstrap admin account from the ADMIN_* env
// vars. Hourly-rate approvals are admin-only, so without at least one admin
// no worker account could ever be activated. Idempotent: skipped when the
// vars are unset or the username already exists.
func seedAdminUser(db *gorm.DB) error {
	cfg := config.AppConfig.Admin
	if cfg.Username == "" || cfg.Password == "" {
		logrus.Debug("admin seed skipped, ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	email := cfg.Email
	if email == "" {
		email = cfg.Username + "@localhost"
	}

	admin := models.User{
		Username:      cfg.Username,
		Email:         email,
		PasswordHash:  hash,
		Role:          models.RoleAdmin,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("username", cfg.Username).Info("admin account seeded")
	return nil
}
