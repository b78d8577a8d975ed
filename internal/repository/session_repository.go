//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.Session) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.Session, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*model.Session, error)
	FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.Session, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Session, error)
	Save(ctx context.Context, tx *gorm.DB, session *model.Session) error
	Update(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error
	AggregateCompleted(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*model.SessionAggregates, error)
	CountByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (int64, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.Session) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating session in DB",
			"error", result.Error,
			"student_id", session.StudentID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)
	var session model.Session
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding session by ID in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

// FindByIDForUpdate loads the session under a row lock. Must run inside a
// transaction; concurrent writers to the same session serialize here.
func (r *gormSessionRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)
	var session model.Session
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ?", sessionID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error locking session for update in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.Session, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.Session
	result := db.WithContext(ctx).Where("student_id = ?", studentID).Order("started_at DESC").Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding sessions by student in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.FindByStudent: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormSessionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Session, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.Session
	result := db.WithContext(ctx).Order("started_at DESC").Find(&sessions)
	if result.Error != nil {
		logger.Error("Error listing sessions in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSessionRepository.FindAll: %w", result.Error)
	}
	return sessions, nil
}

// Save writes the full session row back, transcript included.
func (r *gormSessionRepository) Save(ctx context.Context, tx *gorm.DB, session *model.Session) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(session)
	if result.Error != nil {
		logger.Error("Error saving session in DB",
			"error", result.Error,
			"session_id", session.SessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) Update(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Session{}).Where("session_id = ?", sessionID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionRepository) Delete(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.Session{})
	if result.Error != nil {
		logger.Error("Error deleting session in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AggregateCompleted rolls up the student's completed sessions in a single
// query.
func (r *gormSessionRepository) AggregateCompleted(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*model.SessionAggregates, error) {
	logger := middleware.GetLogger(ctx)
	var agg model.SessionAggregates
	result := db.WithContext(ctx).Model(&model.Session{}).
		Select(`COUNT(*) AS completed_sessions,
			COALESCE(SUM(duration_minutes), 0) AS total_minutes,
			COALESCE(SUM(words_practiced), 0) AS total_words,
			COALESCE(SUM(correct_phrases), 0) AS total_correct,
			COALESCE(SUM(incorrect_phrases), 0) AS total_incorrect,
			COALESCE(AVG(score), 0) AS average_score`).
		Where("student_id = ? AND state = ?", studentID, model.SessionCompleted).
		Scan(&agg)
	if result.Error != nil {
		logger.Error("Error aggregating sessions in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormSessionRepository.AggregateCompleted: %w", result.Error)
	}
	return &agg, nil
}

func (r *gormSessionRepository) CountByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Session{}).Where("student_id = ?", studentID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting sessions in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return 0, fmt.Errorf("gormSessionRepository.CountByStudent: %w", result.Error)
	}
	return count, nil
}
