package core

import "time"

// Window is a half-open [Start, End) time interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Validate rejects empty and inverted windows.
func (w Window) Validate() error {
	if !w.Start.Before(w.End) {
		return &InvalidRangeError{Start: w.Start, End: w.End}
	}
	return nil
}

// Overlaps reports whether two half-open windows intersect. A shared
// boundary instant is not an overlap.
func (w Window) Overlaps(other Window) bool {
	return other.Start.Before(w.End) && other.End.After(w.Start)
}

// StatusBlocksWindow reports whether a task in the given status holds its
// time window against new assignments for the same worker. Terminal tasks
// never conflict.
func StatusBlocksWindow(s TaskStatus) bool {
	return s == TaskRequested || s == TaskInProgress
}
