// internal/model/agent.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Default configuration used when a session is opened and no active agent
// exists yet.
const (
	DefaultAgentName        = "AVI Assistant"
	DefaultAgentDescription = "Agente Virtual Inteligente para aprendizaje de inglés"
	DefaultAgentVoice       = "es-ES"
	DefaultAgentLanguage    = "en-US"
)

// Agent is a named virtual-agent configuration. Sessions reference it but
// never mutate it. Name is unique so default provisioning can upsert safely.
type Agent struct {
	AgentID        uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string                 `gorm:"uniqueIndex;not null" json:"nombre"`
	Description    string                 `json:"descripcion"`
	Avatar3DURL    *string                `gorm:"column:avatar_3d_url" json:"avatar_3d_url"`
	Voice          string                 `gorm:"not null;default:'es-ES'" json:"voz_configurada"`
	TargetLanguage string                 `gorm:"not null;default:'en-US'" json:"idioma_objetivo"`
	Personality    map[string]interface{} `gorm:"serializer:json" json:"personalidad"`
	IsActive       bool                   `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time              `json:"created_at"`
}

func (Agent) TableName() string {
	return "agents"
}

type CreateAgentRequest struct {
	Name           string                 `json:"nombre" validate:"required,max=100"`
	Description    string                 `json:"descripcion"`
	Avatar3DURL    *string                `json:"avatar_3d_url" validate:"omitempty,url"`
	Voice          string                 `json:"voz_configurada"`
	TargetLanguage string                 `json:"idioma_objetivo"`
	Personality    map[string]interface{} `json:"personalidad"`
}

type UpdateAgentRequest struct {
	Name           *string                `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	Description    *string                `json:"descripcion,omitempty"`
	Avatar3DURL    *string                `json:"avatar_3d_url,omitempty" validate:"omitempty,url"`
	Voice          *string                `json:"voz_configurada,omitempty"`
	TargetLanguage *string                `json:"idioma_objetivo,omitempty"`
	Personality    map[string]interface{} `json:"personalidad,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
}
