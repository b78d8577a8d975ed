// internal/model/feedback.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ErrorOmission     = "omision"
	ErrorSubstitution = "sustitucion"
)

// GrammarError is one detected word-level error. Omissions carry Word,
// substitutions carry Wrong/Correct; Position indexes the expected text.
type GrammarError struct {
	Type     string `json:"tipo"`
	Word     string `json:"palabra,omitempty"`
	Wrong    string `json:"palabra_incorrecta,omitempty"`
	Correct  string `json:"palabra_correcta,omitempty"`
	Position int    `json:"posicion"`
}

type GrammarErrors []GrammarError

type Suggestions []string

// Feedback is the scored result of one utterance exchange. Rows are written
// once by the interaction flow and never updated.
type Feedback struct {
	FeedbackID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"sesion_id"`

	OriginalText  string `gorm:"not null" json:"texto_original"`
	ExpectedText  string `json:"texto_esperado"`
	CorrectedText string `json:"texto_corregido"`

	PronunciationScore float64 `gorm:"not null;default:0" json:"puntuacion_pronunciacion"`
	FluencyScore       float64 `gorm:"not null;default:0" json:"puntuacion_fluidez"`
	IntonationScore    float64 `gorm:"not null;default:0" json:"puntuacion_entonacion"`
	RhythmScore        float64 `gorm:"not null;default:0" json:"puntuacion_ritmo"`

	GrammarErrors GrammarErrors `gorm:"serializer:json" json:"errores_gramaticales"`
	Suggestions   Suggestions   `gorm:"serializer:json" json:"sugerencias"`

	AgentReply     string    `json:"respuesta_agente"`
	ResponseTimeMs int       `gorm:"not null;default:0" json:"tiempo_respuesta_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// OverallScore is the arithmetic mean of the four sub-scores.
func (f *Feedback) OverallScore() float64 {
	return (f.PronunciationScore + f.FluencyScore + f.IntonationScore + f.RhythmScore) / 4
}

// InteractionRequest is the body of POST /interaccion. At least one of
// texto_estudiante and audio_base64 must be present; audio is accepted but
// not decoded (ASR integration point).
type InteractionRequest struct {
	SessionID    uuid.UUID `json:"sesion_id" validate:"required"`
	StudentText  string    `json:"texto_estudiante" validate:"required_without=AudioBase64"`
	AudioBase64  string    `json:"audio_base64" validate:"required_without=StudentText"`
	ExpectedText string    `json:"texto_esperado"`
}

type InteractionResponse struct {
	Success         bool      `json:"success"`
	Message         string    `json:"mensaje"`
	Feedback        *Feedback `json:"retroalimentacion"`
	ReplyText       string    `json:"respuesta_texto"`
	ReplyAudioURL   *string   `json:"respuesta_audio_url"`
	OverallScore    float64   `json:"puntuacion_general"`
	NeedsRepeat     bool      `json:"necesita_repetir"`
	AvatarEmotion   string    `json:"emocion_avatar"`
	AvatarAnimation string    `json:"animacion_avatar"`
}
