package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskmarket-server/core"
)

// respondError translates the core error taxonomy into HTTP responses. All
// domain errors are recoverable at the caller; anything unrecognized is a
// server fault.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *core.ValidationError
		rangeErr      *core.InvalidRangeError
		conflictErr   *core.AvailabilityConflictError
		notFoundErr   *core.NotFoundError
		permissionErr *core.PermissionError
	)

	switch {
	case errors.As(err, &validationErr):
		status := http.StatusBadRequest
		if validationErr.Kind == core.DuplicateRating || validationErr.Kind == core.DuplicateRequest {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error":   string(validationErr.Kind),
			"message": validationErr.Error(),
		})
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_range",
			"message": rangeErr.Error(),
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":            "availability_conflict",
			"message":          conflictErr.Error(),
			"conflict_task_id": conflictErr.ConflictTaskID,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": notFoundErr.Error(),
		})
	case errors.As(err, &permissionErr):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": permissionErr.Error(),
		})
	default:
		logrus.WithError(err).Error("unhandled error in request")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Something went wrong",
		})
	}
}
