package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
)

// RegisterAdminRoutes registers hourly-rate approval and user management.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/rate-approvals", listRateApprovals)
	router.POST("/rate-approvals/:id/approve", approveHourlyRate)
	router.PATCH("/users/:id/status", updateUserStatus)
}

// listRateApprovals returns pending hourly-rate approvals.
func listRateApprovals(c *gin.Context) {
	var approvals []models.HourlyRateApproval
	if err := database.DB.
		Where("approved = ?", false).
		Preload("Worker.User").
		Order("created_at ASC").
		Find(&approvals).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approvals": approvals})
}

// approveHourlyRate approves a worker's proposed rate and, when their email
// is already verified, activates the account. One transaction covers the
// approval record, the worker profile and the user row.
func approveHourlyRate(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var approval models.HourlyRateApproval
	if err := database.DB.Preload("Worker.User").First(&approval, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Rate approval not found"})
		return
	}

	if approval.Approved {
		c.JSON(http.StatusConflict, gin.H{"error": "already_approved", "message": "This rate has already been approved"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&approval).Updates(map[string]interface{}{
			"approved":       true,
			"approved_by_id": admin.ID,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Worker{}).
			Where("id = ?", approval.WorkerID).
			Updates(map[string]interface{}{
				"rate_approved": true,
				"hourly_rate":   approval.HourlyRate,
			}).Error; err != nil {
			return err
		}

		if approval.Worker.User.EmailVerified {
			return tx.Model(&models.User{}).
				Where("id = ?", approval.Worker.UserID).
				Update("is_active", true).Error
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"approval_id": approval.ID,
		"worker_id":   approval.WorkerID,
		"admin_id":    admin.ID,
	}).Info("hourly rate approved")

	c.JSON(http.StatusOK, gin.H{"message": "Hourly rate approved"})
}

// updateUserStatus activates or deactivates a user account.
func updateUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "User not found"})
		return
	}

	if err := database.DB.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "user": user})
}
