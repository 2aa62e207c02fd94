package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
	"taskmarket-server/types"
	"taskmarket-server/utils"
)

// RegisterAuthRoutes registers registration, login and activation routes.
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/register/customer", registerCustomer)
	router.POST("/register/worker", registerWorker)
	router.POST("/login", login)
	router.POST("/refresh", refreshToken)
	router.GET("/activate/:token", activateAccount)
}

// registerCustomer creates a user and its customer profile atomically. The
// account stays inactive until the activation token is confirmed; delivering
// the token by email is external to this service.
func registerCustomer(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Failed to process password"})
		return
	}

	user := models.User{
		Username:        req.Username,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		PasswordHash:    hash,
		Role:            models.RoleCustomer,
		ActivationToken: uuid.NewString(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Customer{UserID: user.ID}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "user_exists",
				"message": "An account with this username or email already exists",
			})
			return
		}
		respondError(c, err)
		return
	}

	logrus.WithField("user_id", user.ID).Info("customer registered")

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Please confirm your email address to complete the registration",
		"user":             user,
		"activation_token": user.ActivationToken,
	})
}

// registerWorker creates a user, worker profile, skills and the hourly-rate
// approval record in one transaction. The account activates only after an
// admin approves the rate and the email is verified.
func registerWorker(c *gin.Context) {
	var req models.WorkerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Failed to process password"})
		return
	}

	user := models.User{
		Username:        req.Username,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		PasswordHash:    hash,
		Role:            models.RoleWorker,
		ActivationToken: uuid.NewString(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		worker := models.Worker{
			UserID:     user.ID,
			Location:   req.Location,
			HourlyRate: req.HourlyRate,
		}
		if err := tx.Create(&worker).Error; err != nil {
			return err
		}

		skills, err := findOrCreateSkills(tx, req.Skills)
		if err != nil {
			return err
		}
		if err := tx.Model(&worker).Association("Skills").Append(&skills); err != nil {
			return err
		}

		return tx.Create(&models.HourlyRateApproval{
			WorkerID:   worker.ID,
			HourlyRate: req.HourlyRate,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "user_exists",
				"message": "An account with this username or email already exists",
			})
			return
		}
		respondError(c, err)
		return
	}

	logrus.WithField("user_id", user.ID).Info("worker registered")

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Account created. You will be able to log in after your hourly rate is approved by the admin",
		"user":             user,
		"activation_token": user.ActivationToken,
	})
}

func findOrCreateSkills(tx *gorm.DB, names []string) ([]models.Skill, error) {
	skills := make([]models.Skill, 0, len(names))
	for _, name := range names {
		var skill models.Skill
		if err := tx.Where("name = ?", name).FirstOrCreate(&skill, models.Skill{Name: name}).Error; err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

// login authenticates an active user and issues access and refresh tokens.
func login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Invalid username or password"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Invalid username or password"})
		return
	}

	if !user.IsActive {
		message := "Account is not active. Please confirm your email address"
		if user.IsWorker() {
			message = "Account is not active. Your hourly rate may still be pending admin approval"
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "account_inactive", "message": message})
		return
	}

	accessToken, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Failed to generate token"})
		return
	}
	refresh, err := utils.GenerateRefreshToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refresh,
		"user":          user,
	})
}

// refreshToken exchanges a valid refresh token for a new access token.
func refreshToken(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	claims, err := utils.VerifyToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "message": "Refresh token is invalid or expired"})
		return
	}

	if claims.TokenType != types.TokenRefresh {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token", "message": "Token is not a refresh token"})
		return
	}

	accessToken, err := utils.GenerateToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// activateAccount confirms the emailed token. Customers become active
// immediately; workers additionally need their hourly rate approved.
func activateAccount(c *gin.Context) {
	token := c.Param("token")

	var user models.User
	if err := database.DB.Where("activation_token = ?", token).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid_token", "message": "Invalid activation link"})
		return
	}

	updates := map[string]interface{}{
		"email_verified":   true,
		"activation_token": "",
	}

	if user.IsCustomer() {
		updates["is_active"] = true
	} else if user.IsWorker() {
		var worker models.Worker
		if err := database.DB.Where("user_id = ?", user.ID).First(&worker).Error; err == nil && worker.RateApproved {
			updates["is_active"] = true
		}
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your account has been activated successfully"})
}

// GetProfile returns the authenticated user with their profile record.
func GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Not authenticated"})
		return
	}

	var full models.User
	if err := database.DB.
		Preload("Customer").
		Preload("Worker.Skills").
		First(&full, user.ID).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": full})
}
