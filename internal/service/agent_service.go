package service

import (
	"context"
	"errors"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentService interface {
	ListAgents(ctx context.Context) ([]*model.Agent, error)
	GetAgent(ctx context.Context, agentID uuid.UUID) (*model.Agent, error)
	CreateAgent(ctx context.Context, req *model.CreateAgentRequest) (*model.Agent, error)
	UpdateAgent(ctx context.Context, agentID uuid.UUID, req *model.UpdateAgentRequest) (*model.Agent, error)
}

type agentService struct {
	db        *gorm.DB
	agentRepo repository.AgentRepository
}

func NewAgentService(db *gorm.DB, agentRepo repository.AgentRepository) AgentService {
	return &agentService{db: db, agentRepo: agentRepo}
}

func (s *agentService) ListAgents(ctx context.Context) ([]*model.Agent, error) {
	agents, err := s.agentRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return agents, nil
}

func (s *agentService) GetAgent(ctx context.Context, agentID uuid.UUID) (*model.Agent, error) {
	agent, err := s.agentRepo.FindByID(ctx, s.db, agentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("AGENT_NOT_FOUND", "El agente no existe.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return agent, nil
}

func (s *agentService) CreateAgent(ctx context.Context, req *model.CreateAgentRequest) (*model.Agent, error) {
	logger := middleware.GetLogger(ctx)

	voice := req.Voice
	if voice == "" {
		voice = model.DefaultAgentVoice
	}
	language := req.TargetLanguage
	if language == "" {
		language = model.DefaultAgentLanguage
	}

	agent := &model.Agent{
		AgentID:        uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		Avatar3DURL:    req.Avatar3DURL,
		Voice:          voice,
		TargetLanguage: language,
		Personality:    req.Personality,
		IsActive:       true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.agentRepo.Create(ctx, tx, agent); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Agent name already exists", "name", req.Name)
				return model.NewAppError("DUPLICATE_NAME", "Ya existe un agente con ese nombre.", "nombre", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el agente.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Agent created", "agent_id", agent.AgentID, "name", agent.Name)
	return agent, nil
}

func (s *agentService) UpdateAgent(ctx context.Context, agentID uuid.UUID, req *model.UpdateAgentRequest) (*model.Agent, error) {
	logger := middleware.GetLogger(ctx)

	var agent *model.Agent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		agent, err = s.agentRepo.FindByID(ctx, tx, agentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("AGENT_NOT_FOUND", "El agente no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		if req.Name != nil {
			agent.Name = *req.Name
		}
		if req.Description != nil {
			agent.Description = *req.Description
		}
		if req.Avatar3DURL != nil {
			agent.Avatar3DURL = req.Avatar3DURL
		}
		if req.Voice != nil {
			agent.Voice = *req.Voice
		}
		if req.TargetLanguage != nil {
			agent.TargetLanguage = *req.TargetLanguage
		}
		if req.Personality != nil {
			agent.Personality = req.Personality
		}
		if req.IsActive != nil {
			agent.IsActive = *req.IsActive
		}

		if err := s.agentRepo.Save(ctx, tx, agent); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_NAME", "Ya existe un agente con ese nombre.", "nombre", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar el agente.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Agent updated", "agent_id", agentID.String())
	return agent, nil
}
