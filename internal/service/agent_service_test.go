// internal/service/agent_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository/mocks"
)

func setupTestDBAgent() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_agentService_CreateAgent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAgent()

	t.Run("defaults voice and language", func(t *testing.T) {
		agentRepo := new(mocks.AgentRepository)
		agentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Agent")).
			Run(func(args mock.Arguments) {
				agent := args.Get(2).(*model.Agent)
				assert.Equal(t, model.DefaultAgentVoice, agent.Voice)
				assert.Equal(t, model.DefaultAgentLanguage, agent.TargetLanguage)
				assert.True(t, agent.IsActive)
			}).Return(nil).Once()

		svc := NewAgentService(db, agentRepo)
		agent, err := svc.CreateAgent(ctx, &model.CreateAgentRequest{Name: "Len"})

		require.NoError(t, err)
		assert.Equal(t, "Len", agent.Name)
		agentRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		agentRepo := new(mocks.AgentRepository)
		agentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Agent")).
			Return(model.ErrConflict).Once()

		svc := NewAgentService(db, agentRepo)
		_, err := svc.CreateAgent(ctx, &model.CreateAgentRequest{Name: "Len"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_NAME", appErr.Detail.Code)
	})
}

func Test_agentService_UpdateAgent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAgent()
	agentID := uuid.New()

	t.Run("patches only provided fields", func(t *testing.T) {
		agentRepo := new(mocks.AgentRepository)
		agentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), agentID).
			Return(&model.Agent{
				AgentID:        agentID,
				Name:           "Len",
				Voice:          "es-ES",
				TargetLanguage: "en-US",
				IsActive:       true,
			}, nil).Once()
		agentRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Agent")).
			Run(func(args mock.Arguments) {
				agent := args.Get(2).(*model.Agent)
				assert.Equal(t, "Len 2.0", agent.Name)
				assert.Equal(t, "en-US", agent.TargetLanguage)
				assert.False(t, agent.IsActive)
			}).Return(nil).Once()

		name := "Len 2.0"
		inactive := false
		svc := NewAgentService(db, agentRepo)
		agent, err := svc.UpdateAgent(ctx, agentID, &model.UpdateAgentRequest{Name: &name, IsActive: &inactive})

		require.NoError(t, err)
		assert.Equal(t, "Len 2.0", agent.Name)
		agentRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		agentRepo := new(mocks.AgentRepository)
		agentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), agentID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewAgentService(db, agentRepo)
		_, err := svc.UpdateAgent(ctx, agentID, &model.UpdateAgentRequest{})

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
