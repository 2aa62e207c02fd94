package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskmarket-server/core"
	"taskmarket-server/models"
)

// RequestService owns the TaskRequest lifecycle. Accepting a bid transitions
// the parent task in the same transaction: request accepted, task assigned
// and in-progress, sibling bids rejected, all or nothing.
type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// Create submits a worker's bid on an open task. The availability check here
// is advisory (against already committed work); the authoritative check
// reruns at accept time under the transaction.
func (s *RequestService) Create(user models.User, taskID uint) (*models.TaskRequest, error) {
	worker, err := workerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "task", ID: taskID}
		}
		return nil, err
	}

	if task.Status != core.TaskRequested {
		return nil, &core.ValidationError{
			Kind:   core.TaskNotOpen,
			Detail: "task is no longer open for requests",
		}
	}

	// excluding the task itself lets a directly-targeted worker bid on it
	if err := checkWorkerAvailability(s.db, worker.ID, task.Window(), task.ID); err != nil {
		return nil, err
	}

	request := models.TaskRequest{
		TaskID:   task.ID,
		WorkerID: worker.ID,
		Status:   core.RequestRequested,
	}
	if err := s.db.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &core.ValidationError{
				Kind:   core.DuplicateRequest,
				Detail: "you have already requested this task",
			}
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"task_id":   task.ID,
		"worker_id": worker.ID,
	}).Info("task request created")

	return s.Get(request.ID)
}

// Get loads a request with its task and worker.
func (s *RequestService) Get(id uint) (*models.TaskRequest, error) {
	var request models.TaskRequest
	err := s.db.
		Preload("Task.Customer.User").
		Preload("Worker.User").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "task request", ID: id}
		}
		return nil, err
	}
	return &request, nil
}

// ListForUser returns pending bids on the customer's tasks, or the worker's
// own bids.
func (s *RequestService) ListForUser(user models.User) ([]models.TaskRequest, error) {
	query := s.db.
		Preload("Task.Customer.User").
		Preload("Worker.User").
		Order("created_at DESC")

	switch user.Role {
	case models.RoleCustomer:
		customer, err := customerForUser(s.db, user)
		if err != nil {
			return nil, err
		}
		query = query.
			Joins("JOIN tasks ON tasks.id = task_requests.task_id").
			Where("tasks.customer_id = ? AND task_requests.status = ?",
				customer.ID, core.RequestRequested)
	case models.RoleWorker:
		worker, err := workerForUser(s.db, user)
		if err != nil {
			return nil, err
		}
		query = query.Where("task_requests.worker_id = ?", worker.ID)
	}

	var requests []models.TaskRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Accept resolves a bid in the worker's favor. Within one transaction it
// validates both transitions, reruns the availability check under the row
// locks, assigns the worker, moves the task to in-progress and rejects every
// sibling bid still pending.
func (s *RequestService) Accept(user models.User, requestID uint) (*models.TaskRequest, error) {
	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		request, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		task, err := lockTask(tx, request.TaskID)
		if err != nil {
			return err
		}
		if task.CustomerID != customer.ID {
			return &core.PermissionError{Detail: "only the task's customer may resolve its requests"}
		}

		if err := core.ValidateRequestTransition(request.Status, core.RequestAccepted); err != nil {
			return err
		}
		if err := core.ValidateTaskTransition(task.Status, core.TaskInProgress); err != nil {
			return err
		}
		if err := checkWorkerAvailability(tx, request.WorkerID, task.Window(), task.ID); err != nil {
			return err
		}

		if err := tx.Model(task).Updates(map[string]interface{}{
			"worker_id": request.WorkerID,
			"status":    core.TaskInProgress,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(request).Update("status", core.RequestAccepted).Error; err != nil {
			return err
		}

		// A bid's status should reflect reality: once one wins, the rest lose.
		return tx.Model(&models.TaskRequest{}).
			Where("task_id = ? AND id <> ? AND status = ?",
				task.ID, request.ID, core.RequestRequested).
			Update("status", core.RequestRejected).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("request_id", requestID).Info("task request accepted")

	return s.Get(requestID)
}

// Reject resolves a bid against the worker. The parent task is untouched and
// stays open for other bids.
func (s *RequestService) Reject(user models.User, requestID uint) (*models.TaskRequest, error) {
	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		request, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}

		var task models.Task
		if err := tx.First(&task, request.TaskID).Error; err != nil {
			return err
		}
		if task.CustomerID != customer.ID {
			return &core.PermissionError{Detail: "only the task's customer may resolve its requests"}
		}

		if err := core.ValidateRequestTransition(request.Status, core.RequestRejected); err != nil {
			return err
		}
		return tx.Model(request).Update("status", core.RequestRejected).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("request_id", requestID).Info("task request rejected")

	return s.Get(requestID)
}

func lockRequest(tx *gorm.DB, requestID uint) (*models.TaskRequest, error) {
	var request models.TaskRequest
	err := forUpdate(tx).First(&request, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "task request", ID: requestID}
		}
		return nil, err
	}
	return &request, nil
}
