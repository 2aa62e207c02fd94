package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
	"taskmarket-server/services"
)

// RegisterRatingRoutes registers rating update and lookup routes. Creation
// lives under /task-requests/:id/ratings.
func RegisterRatingRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("/:id", getRating)
		ratings.PUT("/:id", middleware.RequireRole(models.RoleCustomer), updateRating)
	}
}

// createRating rates the worker behind an accepted, completed task request.
func createRating(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.RatingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	rating, err := services.NewRatingService(database.DB).Create(user, requestID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rating created successfully",
		"rating":  rating,
	})
}

func getRating(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rating, err := services.NewRatingService(database.DB).Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// updateRating lets the owning customer revise an existing rating.
func updateRating(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.RatingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	rating, err := services.NewRatingService(database.DB).Update(user, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating updated successfully",
		"rating":  rating,
	})
}
