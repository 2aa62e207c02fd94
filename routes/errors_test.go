package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskmarket-server/core"
)

func doRespond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"illegal transition is a bad request",
			&core.ValidationError{Kind: core.IllegalTransition, From: "completed", To: "requested"},
			http.StatusBadRequest,
		},
		{
			"bad rating value is a bad request",
			&core.ValidationError{Kind: core.BadRatingValue, Detail: "rating must be between 1 and 5, got 6"},
			http.StatusBadRequest,
		},
		{
			"self rating is a bad request",
			&core.ValidationError{Kind: core.SelfRating, Detail: "you cannot rate your own work"},
			http.StatusBadRequest,
		},
		{
			"duplicate rating is a conflict",
			&core.ValidationError{Kind: core.DuplicateRating, Detail: "already exists"},
			http.StatusConflict,
		},
		{
			"duplicate request is a conflict",
			&core.ValidationError{Kind: core.DuplicateRequest, Detail: "already exists"},
			http.StatusConflict,
		},
		{
			"inverted window is a bad request",
			&core.InvalidRangeError{Start: time.Now().Add(time.Hour), End: time.Now()},
			http.StatusBadRequest,
		},
		{
			"availability conflict is a conflict",
			&core.AvailabilityConflictError{WorkerID: 1, ConflictTaskID: 7},
			http.StatusConflict,
		},
		{
			"missing entity is not found",
			&core.NotFoundError{Entity: "task", ID: 9},
			http.StatusNotFound,
		},
		{
			"permission failure is forbidden",
			&core.PermissionError{Detail: "not yours"},
			http.StatusForbidden,
		},
		{
			"unknown errors are server faults",
			errors.New("boom"),
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRespond(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRespondError_ConflictNamesTask(t *testing.T) {
	w := doRespond(t, &core.AvailabilityConflictError{WorkerID: 3, ConflictTaskID: 42})
	assert.Contains(t, w.Body.String(), "\"conflict_task_id\":42")
}
