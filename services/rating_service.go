package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"taskmarket-server/core"
	"taskmarket-server/models"
)

// RatingService gates rating creation and update behind the core
// eligibility rules.
type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Create rates the worker behind an accepted task request once its task is
// completed.
func (s *RatingService) Create(user models.User, taskRequestID uint, req models.RatingCreateRequest) (*models.Rating, error) {
	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	var request models.TaskRequest
	err = s.db.
		Preload("Task").
		Preload("Worker.User").
		First(&request, taskRequestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "task request", ID: taskRequestID}
		}
		return nil, err
	}

	if request.Status != core.RequestAccepted {
		return nil, &core.ValidationError{
			Kind:   core.RequestNotResolved,
			Detail: "only the accepted task request can be rated",
		}
	}

	var existing int64
	err = s.db.Model(&models.Rating{}).
		Where("customer_id = ? AND task_request_id = ?", customer.ID, request.ID).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}

	eligibility := core.RatingEligibility{
		TaskStatus:      request.Task.Status,
		TaskCustomerID:  request.Task.CustomerID,
		RaterCustomerID: customer.ID,
		RaterUserID:     user.ID,
		WorkerUserID:    request.Worker.UserID,
		Existing:        existing > 0,
	}
	if err := core.CheckRatingEligibility(eligibility); err != nil {
		return nil, err
	}
	if err := core.ValidateRatingValue(req.Rating); err != nil {
		return nil, err
	}

	rating := models.Rating{
		CustomerID:    customer.ID,
		TaskRequestID: request.ID,
		WorkerID:      request.WorkerID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.db.Create(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &core.ValidationError{
				Kind:   core.DuplicateRating,
				Detail: "a rating for this task request already exists",
			}
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rating_id": rating.ID,
		"worker_id": rating.WorkerID,
		"stars":     rating.Rating,
	}).Info("rating created")

	return s.Get(rating.ID)
}

// Get loads a rating with its customer, worker and request.
func (s *RatingService) Get(id uint) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.
		Preload("Customer.User").
		Preload("Worker.User").
		Preload("TaskRequest.Task").
		First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "rating", ID: id}
		}
		return nil, err
	}
	return &rating, nil
}

// Update lets the owning customer revise an existing rating. The completed
// and no-self-rating rules still apply.
func (s *RatingService) Update(user models.User, ratingID uint, req models.RatingCreateRequest) (*models.Rating, error) {
	customer, err := customerForUser(s.db, user)
	if err != nil {
		return nil, err
	}

	var rating models.Rating
	err = s.db.
		Preload("TaskRequest.Task").
		Preload("Worker.User").
		First(&rating, ratingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &core.NotFoundError{Entity: "rating", ID: ratingID}
		}
		return nil, err
	}

	if rating.CustomerID != customer.ID {
		return nil, &core.PermissionError{Detail: "you can only update your own ratings"}
	}

	eligibility := core.RatingEligibility{
		TaskStatus:      rating.TaskRequest.Task.Status,
		TaskCustomerID:  rating.TaskRequest.Task.CustomerID,
		RaterCustomerID: customer.ID,
		RaterUserID:     user.ID,
		WorkerUserID:    rating.Worker.UserID,
	}
	if err := core.CheckRatingEligibility(eligibility); err != nil {
		return nil, err
	}
	if err := core.ValidateRatingValue(req.Rating); err != nil {
		return nil, err
	}

	err = s.db.Model(&rating).Updates(map[string]interface{}{
		"rating":  req.Rating,
		"comment": req.Comment,
	}).Error
	if err != nil {
		return nil, err
	}

	return s.Get(ratingID)
}

// ListForWorker returns a worker's received ratings, newest first.
func (s *RatingService) ListForWorker(workerID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.
		Where("worker_id = ?", workerID).
		Preload("Customer.User").
		Preload("TaskRequest.Task").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageForWorker returns the mean rating and count for a worker.
func (s *RatingService) AverageForWorker(workerID uint) (float64, int64, error) {
	var result struct {
		Average float64
		Total   int64
	}
	err := s.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("worker_id = ?", workerID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Average, result.Total, nil
}
