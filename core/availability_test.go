package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, start, end string) Window {
	t.Helper()
	day := "2024-03-01T"
	s, err := time.Parse(time.RFC3339, day+start+":00Z")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, day+end+":00Z")
	require.NoError(t, err)
	return Window{Start: s, End: e}
}

func TestWindowValidate(t *testing.T) {
	assert.NoError(t, window(t, "10:00", "11:00").Validate())

	err := window(t, "11:00", "10:00").Validate()
	require.Error(t, err)
	var ir *InvalidRangeError
	assert.True(t, errors.As(err, &ir))

	// zero-length window is also invalid
	assert.Error(t, window(t, "10:00", "10:00").Validate())
}

func TestWindowOverlaps(t *testing.T) {
	existing := window(t, "10:00", "11:00")

	tests := []struct {
		name      string
		candidate Window
		want      bool
	}{
		{"candidate starts inside existing", window(t, "10:30", "11:30"), true},
		{"candidate ends inside existing", window(t, "09:30", "10:30"), true},
		{"candidate contains existing", window(t, "09:00", "12:00"), true},
		{"candidate inside existing", window(t, "10:15", "10:45"), true},
		{"identical windows", window(t, "10:00", "11:00"), true},
		{"boundary touch after", window(t, "11:00", "12:00"), false},
		{"boundary touch before", window(t, "09:00", "10:00"), false},
		{"disjoint after", window(t, "12:00", "13:00"), false},
		{"disjoint before", window(t, "08:00", "09:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.candidate))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing))
		})
	}
}

func TestStatusBlocksWindow(t *testing.T) {
	assert.True(t, StatusBlocksWindow(TaskRequested))
	assert.True(t, StatusBlocksWindow(TaskInProgress))
	assert.False(t, StatusBlocksWindow(TaskCompleted))
	assert.False(t, StatusBlocksWindow(TaskRejected))
}
