package services

import (
	"errors"

	"gorm.io/gorm"

	"taskmarket-server/core"
	"taskmarket-server/models"
)

// AvailabilityService answers whether a worker can take a time window. The
// check is a precondition: it must run before any assignment persists, and
// lifecycle transactions rerun it under their row locks.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Check reports nil when the worker has no committed task overlapping the
// candidate window.
func (s *AvailabilityService) Check(workerID uint, w core.Window) error {
	return checkWorkerAvailability(s.db, workerID, w, 0)
}

// checkWorkerAvailability scans the worker's tasks still holding their
// window (requested or in-progress) for a half-open overlap with the
// candidate. The SQL predicate mirrors core.Window.Overlaps so a boundary
// touch never conflicts. excludeTaskID skips the task being mutated.
func checkWorkerAvailability(db *gorm.DB, workerID uint, w core.Window, excludeTaskID uint) error {
	if err := w.Validate(); err != nil {
		return err
	}

	query := db.
		Where("worker_id = ?", workerID).
		Where("status IN ?", []core.TaskStatus{core.TaskRequested, core.TaskInProgress}).
		Where("start_time < ? AND end_time > ?", w.End, w.Start)
	if excludeTaskID != 0 {
		query = query.Where("id <> ?", excludeTaskID)
	}

	var conflict models.Task
	err := query.Select("id").First(&conflict).Error
	if err == nil {
		return &core.AvailabilityConflictError{WorkerID: workerID, ConflictTaskID: conflict.ID}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
