//go:generate mockery --name AgentRepository --output ./mocks --outpkg mocks --case=underscore
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

type AgentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, agent *model.Agent) error
	FindByID(ctx context.Context, db *gorm.DB, agentID uuid.UUID) (*model.Agent, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Agent, error)
	FindFirstActive(ctx context.Context, db *gorm.DB) (*model.Agent, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Agent, error)
	Save(ctx context.Context, tx *gorm.DB, agent *model.Agent) error
	UpsertByName(ctx context.Context, tx *gorm.DB, agent *model.Agent) error
}

type gormAgentRepository struct{}

func NewGormAgentRepository() AgentRepository {
	return &gormAgentRepository{}
}

func (r *gormAgentRepository) Create(ctx context.Context, tx *gorm.DB, agent *model.Agent) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(agent)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating agent in DB",
			"error", result.Error,
			"name", agent.Name,
		)
		return fmt.Errorf("gormAgentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAgentRepository) FindByID(ctx context.Context, db *gorm.DB, agentID uuid.UUID) (*model.Agent, error) {
	logger := middleware.GetLogger(ctx)
	var agent model.Agent
	result := db.WithContext(ctx).Where("agent_id = ?", agentID).First(&agent)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding agent by ID in DB",
			"error", result.Error,
			"agent_id", agentID.String(),
		)
		return nil, fmt.Errorf("gormAgentRepository.FindByID: %w", result.Error)
	}
	return &agent, nil
}

func (r *gormAgentRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Agent, error) {
	logger := middleware.GetLogger(ctx)
	var agent model.Agent
	result := db.WithContext(ctx).Where("name = ?", name).First(&agent)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding agent by name in DB",
			"error", result.Error,
			"name", name,
		)
		return nil, fmt.Errorf("gormAgentRepository.FindByName: %w", result.Error)
	}
	return &agent, nil
}

func (r *gormAgentRepository) FindFirstActive(ctx context.Context, db *gorm.DB) (*model.Agent, error) {
	logger := middleware.GetLogger(ctx)
	var agent model.Agent
	result := db.WithContext(ctx).Where("is_active = ?", true).Order("created_at ASC").First(&agent)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active agent in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAgentRepository.FindFirstActive: %w", result.Error)
	}
	return &agent, nil
}

func (r *gormAgentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Agent, error) {
	logger := middleware.GetLogger(ctx)
	var agents []*model.Agent
	result := db.WithContext(ctx).Order("created_at ASC").Find(&agents)
	if result.Error != nil {
		logger.Error("Error listing agents in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAgentRepository.FindAll: %w", result.Error)
	}
	return agents, nil
}

// Save writes the full agent row back, serialized personality included.
func (r *gormAgentRepository) Save(ctx context.Context, tx *gorm.DB, agent *model.Agent) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(agent)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error saving agent in DB",
			"error", result.Error,
			"agent_id", agent.AgentID.String(),
		)
		return fmt.Errorf("gormAgentRepository.Save: %w", result.Error)
	}
	return nil
}

// UpsertByName inserts the agent or leaves an existing row with the same
// name untouched. Used by default-agent provisioning so concurrent session
// opens never create duplicates.
func (r *gormAgentRepository) UpsertByName(ctx context.Context, tx *gorm.DB, agent *model.Agent) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(agent)
	if result.Error != nil {
		logger.Error("Error upserting agent in DB",
			"error", result.Error,
			"name", agent.Name,
		)
		return fmt.Errorf("gormAgentRepository.UpsertByName: %w", result.Error)
	}
	return nil
}
