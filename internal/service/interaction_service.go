package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"
	"github.com/juank2492/LenBot/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// correctThreshold splits an utterance into the correct or incorrect tally.
const correctThreshold = 70.0

type InteractionService interface {
	ProcessInteraction(ctx context.Context, userID uuid.UUID, role model.UserRole, req *model.InteractionRequest) (*model.InteractionResponse, error)
	ListFeedback(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) ([]*model.Feedback, error)
}

type interactionService struct {
	db           *gorm.DB
	sessionRepo  repository.SessionRepository
	feedbackRepo repository.FeedbackRepository
	engine       *scoring.Engine
}

func NewInteractionService(db *gorm.DB, sessionRepo repository.SessionRepository, feedbackRepo repository.FeedbackRepository, engine *scoring.Engine) InteractionService {
	return &interactionService{
		db:           db,
		sessionRepo:  sessionRepo,
		feedbackRepo: feedbackRepo,
		engine:       engine,
	}
}

// ProcessInteraction scores one utterance against the expected text, writes
// the feedback row, updates the session tallies and transcript, and builds
// the agent's reply. The session row is locked for the whole exchange so
// concurrent utterances cannot lose counter or transcript updates.
//
// Audio is accepted but not transcribed yet; an audio-only request scores
// as an empty utterance.
func (s *interactionService) ProcessInteraction(ctx context.Context, userID uuid.UUID, role model.UserRole, req *model.InteractionRequest) (*model.InteractionResponse, error) {
	logger := middleware.GetLogger(ctx)
	start := time.Now()

	var feedback *model.Feedback
	var result scoring.Result

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.sessionRepo.FindByIDForUpdate(ctx, tx, req.SessionID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SESSION_NOT_FOUND", "La sesión no existe.", "sesion_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if err := authorizeSession(session, userID, role); err != nil {
			return err
		}
		if !session.IsActive() {
			return model.NewAppError("SESSION_NOT_ACTIVE", "La sesión no está activa.", "estado", model.ErrInvalidInput)
		}

		result = s.engine.Evaluate(req.StudentText, req.ExpectedText)

		correctedText := req.StudentText
		if len(result.Errors) > 0 {
			correctedText = req.ExpectedText
		}

		feedback = &model.Feedback{
			FeedbackID:         uuid.New(),
			SessionID:          session.SessionID,
			OriginalText:       req.StudentText,
			ExpectedText:       req.ExpectedText,
			CorrectedText:      correctedText,
			PronunciationScore: result.PronunciationScore,
			FluencyScore:       result.FluencyScore,
			IntonationScore:    result.IntonationScore,
			RhythmScore:        result.RhythmScore,
			GrammarErrors:      result.Errors,
			Suggestions:        result.Suggestions,
			AgentReply:         result.Reply,
			ResponseTimeMs:     int(time.Since(start).Milliseconds()),
		}
		if err := s.feedbackRepo.Create(ctx, tx, feedback); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al guardar la retroalimentación.", "", err)
		}

		session.WordsPracticed += len(strings.Fields(req.StudentText))
		if result.OverallScore >= correctThreshold {
			session.CorrectPhrases++
		} else {
			session.IncorrectPhrases++
		}

		now := time.Now()
		session.Transcript = append(session.Transcript,
			model.TranscriptEntry{Speaker: model.SpeakerStudent, Text: req.StudentText, Timestamp: now},
			model.TranscriptEntry{Speaker: model.SpeakerAgent, Text: result.Reply, Timestamp: now},
		)
		session.State = model.SessionInProgress

		if err := s.sessionRepo.Save(ctx, tx, session); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar la sesión.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Interaction processed",
		"session_id", req.SessionID.String(),
		"overall_score", result.OverallScore,
		"needs_repeat", result.NeedsRepeat,
	)

	return &model.InteractionResponse{
		Success:         true,
		Message:         "Interacción procesada correctamente",
		Feedback:        feedback,
		ReplyText:       result.Reply,
		ReplyAudioURL:   nil,
		OverallScore:    result.OverallScore,
		NeedsRepeat:     result.NeedsRepeat,
		AvatarEmotion:   result.Emotion,
		AvatarAnimation: "hablar",
	}, nil
}

// ListFeedback returns a session's feedback rows in creation order. Students
// may only read their own sessions.
func (s *interactionService) ListFeedback(ctx context.Context, userID uuid.UUID, role model.UserRole, sessionID uuid.UUID) ([]*model.Feedback, error) {
	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "La sesión no existe.", "sesion_id", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	if err := authorizeSession(session, userID, role); err != nil {
		return nil, err
	}

	feedbacks, err := s.feedbackRepo.FindBySession(ctx, s.db, sessionID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return feedbacks, nil
}
