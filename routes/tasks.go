package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
	"taskmarket-server/services"
)

// RegisterTaskRoutes registers task CRUD and lifecycle routes.
func RegisterTaskRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", middleware.RequireRole(models.RoleCustomer), createTask)
		tasks.GET("", listTasks)
		tasks.GET("/:id", getTask)
		tasks.PUT("/:id", middleware.RequireRole(models.RoleCustomer), updateTask)
		tasks.POST("/:id/reject", middleware.RequireRole(models.RoleCustomer), rejectTask)
		tasks.POST("/:id/complete", middleware.RequireRole(models.RoleWorker), completeTask)
		tasks.POST("/:id/requests", middleware.RequireRole(models.RoleWorker), createTaskRequest)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// createTask posts a new task. A directly targeted worker triggers the
// availability check before anything persists.
func createTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	task, err := services.NewTaskService(database.DB).Create(user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    models.NewTaskResponse(*task),
	})
}

// listTasks returns the caller's task view, optionally narrowed by status.
func listTasks(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	tasks, err := services.NewTaskService(database.DB).ListForUser(user, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, models.NewTaskResponse(t))
	}

	c.JSON(http.StatusOK, gin.H{"tasks": responses})
}

func getTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := services.NewTaskService(database.DB).Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": models.NewTaskResponse(*task)})
}

func updateTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	task, err := services.NewTaskService(database.DB).Update(user, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    models.NewTaskResponse(*task),
	})
}

func rejectTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := services.NewTaskService(database.DB).Reject(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task rejected",
		"task":    models.NewTaskResponse(*task),
	})
}

func completeTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := services.NewTaskService(database.DB).Complete(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as completed",
		"task":    models.NewTaskResponse(*task),
	})
}
