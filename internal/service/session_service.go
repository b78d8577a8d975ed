package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService interface {
	OpenSession(ctx context.Context, studentID uuid.UUID, req *model.CreateSessionRequest) (*model.Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID, role model.UserRole) ([]*model.Session, error)
	GetSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) (*model.Session, error)
	UpdateSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID, req *model.UpdateSessionRequest) (*model.Session, error)
	FinalizeSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) (*model.FinalizeSessionResponse, error)
	DeleteSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) error
}

type sessionService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	agentRepo   repository.AgentRepository
	profileRepo repository.ProfileRepository
}

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepository, agentRepo repository.AgentRepository, profileRepo repository.ProfileRepository) SessionService {
	return &sessionService{
		db:          db,
		sessionRepo: sessionRepo,
		agentRepo:   agentRepo,
		profileRepo: profileRepo,
	}
}

// OpenSession starts a new practice session for the student. Missing title
// and difficulty are defaulted; when no agent is given the first active one
// is used, provisioning the default agent if the table is empty.
func (s *sessionService) OpenSession(ctx context.Context, studentID uuid.UUID, req *model.CreateSessionRequest) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	var session *model.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		agent, err := s.resolveAgent(ctx, tx, req.AgentID)
		if err != nil {
			return err
		}

		title := req.Title
		if title == "" {
			title = fmt.Sprintf("Sesión %s", time.Now().Format("02/01/2006 15:04"))
		}

		difficulty := req.Difficulty
		if difficulty == "" {
			profile, err := s.profileRepo.FindStudentByUser(ctx, tx, studentID)
			if err == nil {
				difficulty = string(profile.Level)
			} else if errors.Is(err, model.ErrNotFound) {
				difficulty = string(model.LevelA1)
			} else {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
			}
		}

		session = &model.Session{
			SessionID:  uuid.New(),
			StudentID:  studentID,
			AgentID:    &agent.AgentID,
			Title:      title,
			Topic:      req.Topic,
			Difficulty: difficulty,
			State:      model.SessionStarted,
			StartedAt:  time.Now(),
			Transcript: model.Transcript{},
		}

		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear la sesión.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session opened", "session_id", session.SessionID, "student_id", studentID.String())
	return session, nil
}

// ListSessions returns the student's own sessions, or every session for
// docente and administrador.
func (s *sessionService) ListSessions(ctx context.Context, userID uuid.UUID, role model.UserRole) ([]*model.Session, error) {
	var sessions []*model.Session
	var err error
	if role == model.RoleStudent {
		sessions, err = s.sessionRepo.FindByStudent(ctx, s.db, userID)
	} else {
		sessions, err = s.sessionRepo.FindAll(ctx, s.db)
	}
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return sessions, nil
}

func (s *sessionService) GetSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "La sesión no existe.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	if err := authorizeSession(session, userID, role); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession patches metadata and optionally moves the state. Terminal
// sessions reject any update.
func (s *sessionService) UpdateSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID, req *model.UpdateSessionRequest) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	var session *model.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = s.sessionRepo.FindByIDForUpdate(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "La sesión no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if err := authorizeSession(session, userID, role); err != nil {
			return err
		}
		if session.IsFinal() {
			return model.NewAppError("SESSION_FINALIZED", "La sesión ya fue finalizada.", "estado", model.ErrInvalidInput)
		}

		if req.Title != nil {
			session.Title = *req.Title
		}
		if req.Topic != nil {
			session.Topic = *req.Topic
		}
		if req.Difficulty != nil {
			session.Difficulty = *req.Difficulty
		}
		if req.State != nil {
			session.State = *req.State
			if *req.State == model.SessionCancelled {
				now := time.Now()
				session.EndedAt = &now
			}
		}

		if err := s.sessionRepo.Save(ctx, tx, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar la sesión.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session updated", "session_id", sessionID.String())
	return session, nil
}

// FinalizeSession completes the session and folds its results into the
// student profile aggregates, all inside one transaction under a row lock.
func (s *sessionService) FinalizeSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) (*model.FinalizeSessionResponse, error) {
	logger := middleware.GetLogger(ctx)

	var session *model.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = s.sessionRepo.FindByIDForUpdate(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "La sesión no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if err := authorizeSession(session, userID, role); err != nil {
			return err
		}
		if session.IsFinal() {
			return model.NewAppError("SESSION_FINALIZED", "La sesión ya fue finalizada.", "estado", model.ErrInvalidInput)
		}

		now := time.Now()
		session.DurationMinutes = int(now.Sub(session.StartedAt).Minutes())
		session.CalculateScore()
		session.State = model.SessionCompleted
		session.EndedAt = &now

		if err := s.sessionRepo.Save(ctx, tx, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al finalizar la sesión.", "", err)
		}

		if err := s.refreshStudentAggregates(ctx, tx, session.StudentID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Session finalized",
		"session_id", sessionID.String(),
		"score", session.Score,
		"duration_minutes", session.DurationMinutes,
	)
	return &model.FinalizeSessionResponse{
		Message: "Sesión finalizada exitosamente",
		Session: session,
		Statistics: model.FinalizeSnapshot{
			DurationMinutes:  session.DurationMinutes,
			FinalScore:       session.Score,
			CorrectPhrases:   session.CorrectPhrases,
			IncorrectPhrases: session.IncorrectPhrases,
		},
	}, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "La sesión no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if err := authorizeSession(session, userID, role); err != nil {
			return err
		}
		if err := s.sessionRepo.Delete(ctx, tx, sessionID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al eliminar la sesión.", "", err)
		}
		logger.Info("Session deleted", "session_id", sessionID.String())
		return nil
	})
}

// --- helpers ---

// authorizeSession limits students to their own sessions. Teachers and
// admins pass through.
func authorizeSession(session *model.Session, userID uuid.UUID, role model.UserRole) error {
	if role == model.RoleStudent && session.StudentID != userID {
		return model.NewAppError("FORBIDDEN", "No tienes permiso para acceder a esta sesión.", "", model.ErrForbidden)
	}
	return nil
}

// resolveAgent returns the requested agent, or the first active one,
// provisioning the default agent when none exists. The unique name index
// makes concurrent provisioning converge on a single row.
func (s *sessionService) resolveAgent(ctx context.Context, tx *gorm.DB, agentID *uuid.UUID) (*model.Agent, error) {
	logger := middleware.GetLogger(ctx)

	if agentID != nil {
		agent, err := s.agentRepo.FindByID(ctx, tx, *agentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("AGENT_NOT_FOUND", "El agente no existe.", "agente_id", model.ErrNotFound)
			}
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		return agent, nil
	}

	agent, err := s.agentRepo.FindFirstActive(ctx, tx)
	if err == nil {
		return agent, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	logger.Info("No active agent found, provisioning default agent")
	defaultAgent := &model.Agent{
		AgentID:        uuid.New(),
		Name:           model.DefaultAgentName,
		Description:    model.DefaultAgentDescription,
		Voice:          model.DefaultAgentVoice,
		TargetLanguage: model.DefaultAgentLanguage,
		IsActive:       true,
	}
	if err := s.agentRepo.UpsertByName(ctx, tx, defaultAgent); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el agente por defecto.", "", err)
	}

	// Re-read by name: a concurrent open may have won the upsert.
	agent, err = s.agentRepo.FindByName(ctx, tx, model.DefaultAgentName)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el agente por defecto.", "", err)
	}
	return agent, nil
}

// refreshStudentAggregates recomputes the profile rollup from completed
// sessions.
func (s *sessionService) refreshStudentAggregates(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) error {
	agg, err := s.sessionRepo.AggregateCompleted(ctx, tx, studentID)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar las estadísticas.", "", err)
	}

	updates := map[string]interface{}{
		"completed_sessions": agg.CompletedSessions,
		"practice_hours":     agg.TotalMinutes / 60,
		"average_score":      agg.AverageScore,
	}
	if err := s.profileRepo.UpdateStudent(ctx, tx, studentID, updates); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// No profile to roll up into; the session itself is already
			// finalized.
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar las estadísticas.", "", err)
	}
	return nil
}
