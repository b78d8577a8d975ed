//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
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

// ProfileRepository manages the three role profile tables. Lookups are by
// the owning user, not the profile primary key, because every caller starts
// from an authenticated user id.
type ProfileRepository interface {
	CreateStudent(ctx context.Context, tx *gorm.DB, profile *model.StudentProfile) error
	CreateTeacher(ctx context.Context, tx *gorm.DB, profile *model.TeacherProfile) error
	CreateAdmin(ctx context.Context, tx *gorm.DB, profile *model.AdminProfile) error
	FindStudentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.StudentProfile, error)
	FindTeacherByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.TeacherProfile, error)
	FindAdminByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.AdminProfile, error)
	ListStudents(ctx context.Context, db *gorm.DB) ([]*model.StudentProfile, error)
	ListStudentsForTeacher(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]*model.StudentProfile, error)
	ListTeachers(ctx context.Context, db *gorm.DB) ([]*model.TeacherProfile, error)
	UpdateStudent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error
	UpdateTeacher(ctx context.Context, tx *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) CreateStudent(ctx context.Context, tx *gorm.DB, profile *model.StudentProfile) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating student profile in DB",
			"error", err,
			"user_id", profile.UserID.String(),
		)
		return fmt.Errorf("gormProfileRepository.CreateStudent: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) CreateTeacher(ctx context.Context, tx *gorm.DB, profile *model.TeacherProfile) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating teacher profile in DB",
			"error", err,
			"user_id", profile.UserID.String(),
		)
		return fmt.Errorf("gormProfileRepository.CreateTeacher: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) CreateAdmin(ctx context.Context, tx *gorm.DB, profile *model.AdminProfile) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error creating admin profile in DB",
			"error", err,
			"user_id", profile.UserID.String(),
		)
		return fmt.Errorf("gormProfileRepository.CreateAdmin: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) FindStudentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.StudentProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.StudentProfile
	result := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding student profile in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindStudentByUser: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindTeacherByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.TeacherProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.TeacherProfile
	result := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding teacher profile in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindTeacherByUser: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindAdminByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.AdminProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.AdminProfile
	result := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding admin profile in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindAdminByUser: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) ListStudents(ctx context.Context, db *gorm.DB) ([]*model.StudentProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profiles []*model.StudentProfile
	result := db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.user_id = student_profiles.user_id").
		Where("users.is_active = ? AND users.deleted_at IS NULL", true).
		Find(&profiles)
	if result.Error != nil {
		logger.Error("Error listing student profiles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProfileRepository.ListStudents: %w", result.Error)
	}
	return profiles, nil
}

func (r *gormProfileRepository) ListStudentsForTeacher(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]*model.StudentProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profiles []*model.StudentProfile
	result := db.WithContext(ctx).
		Preload("User").
		Joins("JOIN assignments ON assignments.student_id = student_profiles.user_id").
		Joins("JOIN users ON users.user_id = student_profiles.user_id").
		Where("assignments.teacher_id = ? AND assignments.active = ?", teacherID, true).
		Where("users.is_active = ? AND users.deleted_at IS NULL", true).
		Find(&profiles)
	if result.Error != nil {
		logger.Error("Error listing students for teacher in DB",
			"error", result.Error,
			"teacher_id", teacherID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.ListStudentsForTeacher: %w", result.Error)
	}
	return profiles, nil
}

func (r *gormProfileRepository) ListTeachers(ctx context.Context, db *gorm.DB) ([]*model.TeacherProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profiles []*model.TeacherProfile
	result := db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.user_id = teacher_profiles.user_id").
		Where("users.is_active = ? AND users.deleted_at IS NULL", true).
		Find(&profiles)
	if result.Error != nil {
		logger.Error("Error listing teacher profiles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProfileRepository.ListTeachers: %w", result.Error)
	}
	return profiles, nil
}

func (r *gormProfileRepository) UpdateStudent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.StudentProfile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating student profile in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormProfileRepository.UpdateStudent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProfileRepository) UpdateTeacher(ctx context.Context, tx *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.TeacherProfile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating teacher profile in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormProfileRepository.UpdateTeacher: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
