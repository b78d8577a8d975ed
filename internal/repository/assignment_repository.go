//go:generate mockery --name AssignmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *model.Assignment) error
	FindByPair(ctx context.Context, db *gorm.DB, teacherID, studentID uuid.UUID) (*model.Assignment, error)
	FindByTeacher(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]*model.Assignment, error)
	Update(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID, updates map[string]interface{}) error
}

type gormAssignmentRepository struct{}

func NewGormAssignmentRepository() AssignmentRepository {
	return &gormAssignmentRepository{}
}

func (r *gormAssignmentRepository) Create(ctx context.Context, tx *gorm.DB, assignment *model.Assignment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(assignment)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating assignment in DB",
			"error", result.Error,
			"teacher_id", assignment.TeacherID.String(),
			"student_id", assignment.StudentID.String(),
		)
		return fmt.Errorf("gormAssignmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAssignmentRepository) FindByPair(ctx context.Context, db *gorm.DB, teacherID, studentID uuid.UUID) (*model.Assignment, error) {
	logger := middleware.GetLogger(ctx)
	var assignment model.Assignment
	result := db.WithContext(ctx).Where("teacher_id = ? AND student_id = ?", teacherID, studentID).First(&assignment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding assignment in DB",
			"error", result.Error,
			"teacher_id", teacherID.String(),
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormAssignmentRepository.FindByPair: %w", result.Error)
	}
	return &assignment, nil
}

func (r *gormAssignmentRepository) FindByTeacher(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]*model.Assignment, error) {
	logger := middleware.GetLogger(ctx)
	var assignments []*model.Assignment
	result := db.WithContext(ctx).Where("teacher_id = ?", teacherID).Order("assigned_at DESC").Find(&assignments)
	if result.Error != nil {
		logger.Error("Error finding assignments by teacher in DB",
			"error", result.Error,
			"teacher_id", teacherID.String(),
		)
		return nil, fmt.Errorf("gormAssignmentRepository.FindByTeacher: %w", result.Error)
	}
	return assignments, nil
}

func (r *gormAssignmentRepository) Update(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Assignment{}).Where("assignment_id = ?", assignmentID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating assignment in DB",
			"error", result.Error,
			"assignment_id", assignmentID.String(),
		)
		return fmt.Errorf("gormAssignmentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
