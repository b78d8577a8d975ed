// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionState string

const (
	SessionStarted    SessionState = "iniciada"
	SessionInProgress SessionState = "en_progreso"
	SessionCompleted  SessionState = "completada"
	SessionCancelled  SessionState = "cancelada"
	SessionPaused     SessionState = "pausada"
)

const (
	SpeakerStudent = "estudiante"
	SpeakerAgent   = "agente"
)

// TranscriptEntry is one line of the conversation history.
type TranscriptEntry struct {
	Speaker   string    `json:"tipo"`
	Text      string    `json:"texto"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the append-only conversation history, stored as a JSON
// column.
type Transcript []TranscriptEntry

// Session is one practice conversation between a student and an agent,
// bounded by open/finalize. AgentID is nullable so deleting an agent keeps
// the session history intact.
type Session struct {
	SessionID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"estudiante_id"`
	AgentID          *uuid.UUID     `gorm:"type:uuid" json:"agente_id"`
	Title            string         `json:"titulo"`
	Topic            string         `json:"tema_practica"`
	Difficulty       string         `json:"nivel_dificultad"`
	DurationMinutes  int            `gorm:"not null;default:0" json:"duracion_minutos"`
	WordsPracticed   int            `gorm:"not null;default:0" json:"palabras_practicadas"`
	CorrectPhrases   int            `gorm:"not null;default:0" json:"frases_correctas"`
	IncorrectPhrases int            `gorm:"not null;default:0" json:"frases_incorrectas"`
	Score            float64        `gorm:"not null;default:0" json:"puntuacion_sesion"`
	State            SessionState   `gorm:"type:varchar(20);not null;default:'iniciada'" json:"estado"`
	StartedAt        time.Time      `gorm:"not null" json:"fecha_inicio"`
	EndedAt          *time.Time     `json:"fecha_fin"`
	Transcript       Transcript     `gorm:"serializer:json" json:"historial_conversacion"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsActive reports whether the session still accepts utterances.
func (s *Session) IsActive() bool {
	return s.State == SessionStarted || s.State == SessionInProgress
}

// IsFinal reports whether the session reached a terminal state.
func (s *Session) IsFinal() bool {
	return s.State == SessionCompleted || s.State == SessionCancelled
}

// CalculateScore recomputes the 0-100 session score from the phrase
// counters. The score is left unchanged when no phrases were recorded.
func (s *Session) CalculateScore() float64 {
	total := s.CorrectPhrases + s.IncorrectPhrases
	if total > 0 {
		s.Score = float64(s.CorrectPhrases) / float64(total) * 100
	}
	return s.Score
}

type CreateSessionRequest struct {
	AgentID    *uuid.UUID `json:"agente_id,omitempty"`
	Title      string     `json:"titulo"`
	Topic      string     `json:"tema_practica"`
	Difficulty string     `json:"nivel_dificultad"`
}

type UpdateSessionRequest struct {
	Title      *string       `json:"titulo,omitempty"`
	Topic      *string       `json:"tema_practica,omitempty"`
	Difficulty *string       `json:"nivel_dificultad,omitempty"`
	State      *SessionState `json:"estado,omitempty" validate:"omitempty,oneof=en_progreso cancelada pausada"`
}

type FinalizeSessionResponse struct {
	Message    string           `json:"mensaje"`
	Session    *Session         `json:"sesion"`
	Statistics FinalizeSnapshot `json:"estadisticas"`
}

type FinalizeSnapshot struct {
	DurationMinutes  int     `json:"duracion_minutos"`
	FinalScore       float64 `json:"puntuacion_final"`
	CorrectPhrases   int     `json:"frases_correctas"`
	IncorrectPhrases int     `json:"frases_incorrectas"`
}
