//go:generate mockery --name FeedbackRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, feedback *model.Feedback) error
	FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Feedback, error)
}

type gormFeedbackRepository struct{}

func NewGormFeedbackRepository() FeedbackRepository {
	return &gormFeedbackRepository{}
}

func (r *gormFeedbackRepository) Create(ctx context.Context, tx *gorm.DB, feedback *model.Feedback) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(feedback)
	if result.Error != nil {
		logger.Error("Error creating feedback in DB",
			"error", result.Error,
			"session_id", feedback.SessionID.String(),
		)
		return fmt.Errorf("gormFeedbackRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFeedbackRepository) FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.Feedback, error) {
	logger := middleware.GetLogger(ctx)
	var feedbacks []*model.Feedback
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at ASC").Find(&feedbacks)
	if result.Error != nil {
		logger.Error("Error finding feedback by session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormFeedbackRepository.FindBySession: %w", result.Error)
	}
	return feedbacks, nil
}
