package routes

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskmarket-server/core"
	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
	"taskmarket-server/services"
)

// RegisterWorkerRoutes registers worker discovery and profile routes.
func RegisterWorkerRoutes(router *gin.RouterGroup) {
	workers := router.Group("/workers")
	{
		workers.GET("/search", searchWorkers)
		workers.GET("/:id", getWorker)
		workers.GET("/:id/ratings", getWorkerRatings)
		workers.GET("/:id/availability", checkWorkerWindow)
		workers.PUT("/me", middleware.RequireRole(models.RoleWorker), updateOwnWorkerProfile)
		workers.PUT("/me/availability", middleware.RequireRole(models.RoleWorker), updateOwnAvailability)
	}
}

// searchWorkers finds available, approved workers whose skills match every
// word of the query.
func searchWorkers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"workers": []models.Worker{}})
		return
	}

	dbQuery := database.DB.
		Preload("User").
		Preload("Skills").
		Where("is_available = ? AND rate_approved = ?", true, true)

	for _, word := range strings.Fields(query) {
		dbQuery = dbQuery.Where(
			"EXISTS (SELECT 1 FROM worker_skills ws JOIN skills s ON s.id = ws.skill_id WHERE ws.worker_id = workers.id AND s.name ILIKE ?)",
			"%"+word+"%",
		)
	}

	var workers []models.Worker
	if err := dbQuery.Find(&workers).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// getWorker returns a worker profile with their rating summary.
func getWorker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var worker models.Worker
	if err := database.DB.
		Preload("User").
		Preload("Skills").
		First(&worker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Worker not found"})
		return
	}

	average, total, err := services.NewRatingService(database.DB).AverageForWorker(worker.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"worker":         worker,
		"average_rating": average,
		"total_ratings":  total,
	})
}

func getWorkerRatings(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ratings, err := services.NewRatingService(database.DB).ListForWorker(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// checkWorkerWindow answers whether the worker is free for a candidate
// window before the customer commits to a direct assignment. The answer is
// advisory; the authoritative check reruns inside the assignment transaction.
func checkWorkerWindow(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "start must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "end must be RFC3339"})
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Worker not found"})
		return
	}

	checkErr := services.NewAvailabilityService(database.DB).Check(worker.ID, core.Window{Start: start, End: end})
	if checkErr != nil {
		var conflict *core.AvailabilityConflictError
		if errors.As(checkErr, &conflict) {
			c.JSON(http.StatusOK, gin.H{
				"available":        false,
				"conflict_task_id": conflict.ConflictTaskID,
			})
			return
		}
		respondError(c, checkErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": true})
}

// updateOwnWorkerProfile edits the caller's worker profile. The hourly rate
// is not editable here; rate changes go through admin approval.
func updateOwnWorkerProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.WorkerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	var worker models.Worker
	if err := database.DB.Where("user_id = ?", user.ID).First(&worker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Worker profile not found"})
		return
	}

	if req.Location != nil {
		worker.Location = *req.Location
	}
	if req.PhoneNumber != nil {
		if err := database.DB.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("phone_number", *req.PhoneNumber).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	if err := database.DB.Save(&worker).Error; err != nil {
		respondError(c, err)
		return
	}

	if req.Skills != nil {
		skills, err := findOrCreateSkills(database.DB, req.Skills)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := database.DB.Model(&worker).Association("Skills").Replace(&skills); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "worker": worker})
}

func updateOwnAvailability(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	var worker models.Worker
	if err := database.DB.Where("user_id = ?", user.ID).First(&worker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Worker profile not found"})
		return
	}

	if err := database.DB.Model(&worker).Update("is_available", *req.IsAvailable).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability updated",
		"is_available": *req.IsAvailable,
	})
}
