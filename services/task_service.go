package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmarket-server/core"
	"taskmarket-server/models"
)

// TaskService owns the Task lifecycle. Every status mutation happens inside
// one transaction with the task row locked, so the transition check and the
// write cannot interleave with a concurrent accept or overlapping assignment.
type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// Create posts a new task for a customer. When a worker is targeted
// directly, the availability check runs before the row persists, with the
// worker row locked so concurrent overlapping assignments serialize.
func (s *TaskService) Create(user models.User, req models.TaskCreateRequest) (*models.Task, error) {
	window := core.Window{Start: req.StartTime, End: req.EndTime}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		CustomerID:  customer.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      core.TaskRequested,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.WorkerID != nil {
			var worker models.Worker
			if err := forUpdate(tx).First(&worker, *req.WorkerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &core.NotFoundError{Entity: "worker", ID: *req.WorkerID}
				}
				return err
			}
			if err := checkWorkerAvailability(tx, worker.ID, window, 0); err != nil {
				return err
			}
			task.WorkerID = &worker.ID
		}
		return tx.Create(&task).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"task_id":     task.ID,
		"customer_id": customer.ID,
	}).Info("task created")

	return s.Get(task.ID)
}

// Get loads a task with its customer and worker.
func (s *TaskService) Get(id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.
		Preload("Customer.User").
		Preload("Worker.User").
		First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "task", ID: id}
		}
		return nil, err
	}
	return &task, nil
}

// ListForUser returns the tasks visible to the caller: customers see their
// own, workers see their assignments plus tasks still open for bidding.
// status narrows the result when set.
func (s *TaskService) ListForUser(user models.User, status string) ([]models.Task, error) {
	query := s.db.
		Preload("Customer.User").
		Preload("Worker.User").
		Order("created_at DESC")

	switch user.Role {
	case models.RoleCustomer:
		customer, err := customerForUser(s.db, user)
		if err != nil {
			return nil, err
		}
		query = query.Where("customer_id = ?", customer.ID)
	case models.RoleWorker:
		worker, err := workerForUser(s.db, user)
		if err != nil {
			return nil, err
		}
		query = query.Where("worker_id = ? OR (status = ? AND worker_id IS NULL)",
			worker.ID, core.TaskRequested)
	}

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update edits the customer-editable fields. Only tasks still in the
// requested state can change; a window change re-runs the availability
// check when a worker is already targeted.
func (s *TaskService) Update(user models.User, taskID uint, req models.TaskUpdateRequest) (*models.Task, error) {
	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		task, err := lockTask(tx, taskID)
		if err != nil {
			return err
		}
		if task.CustomerID != customer.ID {
			return &core.PermissionError{Detail: "only the task's customer may edit it"}
		}
		if task.Status != core.TaskRequested {
			return &core.ValidationError{
				Kind:   core.TaskNotOpen,
				Detail: "only tasks in the requested state can be edited",
			}
		}

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Location != nil {
			task.Location = *req.Location
		}
		windowChanged := false
		if req.StartTime != nil {
			task.StartTime = *req.StartTime
			windowChanged = true
		}
		if req.EndTime != nil {
			task.EndTime = *req.EndTime
			windowChanged = true
		}

		if windowChanged {
			if err := task.Window().Validate(); err != nil {
				return err
			}
			if task.WorkerID != nil {
				if err := checkWorkerAvailability(tx, *task.WorkerID, task.Window(), task.ID); err != nil {
					return err
				}
			}
		}

		return tx.Save(task).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(taskID)
}

// Complete marks an in-progress task finished. Only the assigned worker may
// complete it.
func (s *TaskService) Complete(user models.User, taskID uint) (*models.Task, error) {
	worker, err := workerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		task, err := lockTask(tx, taskID)
		if err != nil {
			return err
		}
		if task.WorkerID == nil || *task.WorkerID != worker.ID {
			return &core.PermissionError{Detail: "only the assigned worker may complete this task"}
		}
		if err := core.ValidateTaskTransition(task.Status, core.TaskCompleted); err != nil {
			return err
		}
		return tx.Model(task).Update("status", core.TaskCompleted).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("task_id", taskID).Info("task completed")

	return s.Get(taskID)
}

// Reject is the customer's explicit reject action. It is the only operation
// that clears an assigned worker; the task then sits in its terminal state.
func (s *TaskService) Reject(user models.User, taskID uint) (*models.Task, error) {
	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		task, err := lockTask(tx, taskID)
		if err != nil {
			return err
		}
		if task.CustomerID != customer.ID {
			return &core.PermissionError{Detail: "only the task's customer may reject it"}
		}
		if err := core.ValidateTaskTransition(task.Status, core.TaskRejected); err != nil {
			return err
		}
		return tx.Model(task).Updates(map[string]interface{}{
			"status":    core.TaskRejected,
			"worker_id": nil,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("task_id", taskID).Info("task rejected")

	return s.Get(taskID)
}

// forUpdate applies a pessimistic row lock. sqlite has no FOR UPDATE; its
// transactions already serialize on a single writer.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockTask loads a task row FOR UPDATE inside a transaction.
func lockTask(tx *gorm.DB, taskID uint) (*models.Task, error) {
	var task models.Task
	err := forUpdate(tx).First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "task", ID: taskID}
		}
		return nil, err
	}
	return &task, nil
}

func customerForUser(db *gorm.DB, user models.User) (*models.Customer, error) {
	var customer models.Customer
	if err := db.Where("user_id = ?", user.ID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.PermissionError{Detail: "customer profile required for this operation"}
		}
		return nil, err
	}
	return &customer, nil
}

func workerForUser(db *gorm.DB, user models.User) (*models.Worker, error) {
	var worker models.Worker
	if err := db.Where("user_id = ?", user.ID).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.PermissionError{Detail: "worker profile required for this operation"}
		}
		return nil, err
	}
	return &worker, nil
}
