package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
	"taskmarket-server/services"
)

// RegisterTaskRequestRoutes registers bid listing and resolution routes.
// Bid creation lives under /tasks/:id/requests.
func RegisterTaskRequestRoutes(router *gin.RouterGroup) {
	requests := router.Group("/task-requests")
	{
		requests.GET("", listTaskRequests)
		requests.POST("/:id/accept", middleware.RequireRole(models.RoleCustomer), acceptTaskRequest)
		requests.POST("/:id/reject", middleware.RequireRole(models.RoleCustomer), rejectTaskRequest)
		requests.POST("/:id/ratings", middleware.RequireRole(models.RoleCustomer), createRating)
	}
}

// createTaskRequest submits a worker's bid on an open task.
func createTaskRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := services.NewRequestService(database.DB).Create(user, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Task request created successfully",
		"task_request": request,
	})
}

// listTaskRequests shows customers the pending bids on their tasks and
// workers their own bids.
func listTaskRequests(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	requests, err := services.NewRequestService(database.DB).ListForUser(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task_requests": requests})
}

// acceptTaskRequest resolves a bid in the worker's favor: the task moves to
// in-progress with the worker assigned, sibling bids are rejected.
func acceptTaskRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := services.NewRequestService(database.DB).Accept(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Task request accepted",
		"task_request": request,
	})
}

func rejectTaskRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := services.NewRequestService(database.DB).Reject(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Task request rejected",
		"task_request": request,
	})
}
