//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
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

type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error
	FindRefreshToken(ctx context.Context, db *gorm.DB, token string) (*model.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, db *gorm.DB, token string) error
	DeleteRefreshTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) CreateRefreshToken(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(token).Error; err != nil {
		logger.Error("Failed to create refresh token", "error", err)
		return fmt.Errorf("gormTokenRepository.CreateRefreshToken: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) FindRefreshToken(ctx context.Context, db *gorm.DB, tokenStr string) (*model.RefreshToken, error) {
	logger := middleware.GetLogger(ctx)
	var token model.RefreshToken
	if err := db.WithContext(ctx).Where("token = ?", tokenStr).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find refresh token", "error", err)
		return nil, fmt.Errorf("gormTokenRepository.FindRefreshToken: %w", err)
	}
	return &token, nil
}

func (r *gormTokenRepository) DeleteRefreshToken(ctx context.Context, db *gorm.DB, tokenStr string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("token = ?", tokenStr).Delete(&model.RefreshToken{})
	if result.Error != nil {
		logger.Error("Failed to delete refresh token", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.DeleteRefreshToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) DeleteRefreshTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{})
	if result.Error != nil {
		logger.Error("Failed to delete refresh tokens for user",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormTokenRepository.DeleteRefreshTokensByUser: %w", result.Error)
	}
	return nil
}
