// internal/handlers/agent_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/service"
	"github.com/juank2492/LenBot/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AgentHandler struct {
	service service.AgentService
	logger  *slog.Logger
}

func NewAgentHandler(s service.AgentService, logger *slog.Logger) *AgentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentHandler{
		service: s,
		logger:  logger,
	}
}

// GetAgents handles GET /agentes.
func (h *AgentHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAgents"))

	agents, err := h.service.ListAgents(r.Context())
	if err != nil {
		logger.Error("Error listing agents in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if agents == nil {
		agents = []*model.Agent{}
	}
	logger.Info("Agents listed successfully", slog.Int("count", len(agents)))
	webutil.RespondWithJSON(w, http.StatusOK, agents, logger)
}

// GetAgent handles GET /agentes/{agent_id}.
func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAgent"))

	agentID, ok := parseUUIDParam(w, r, logger, "agent_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("agent_id", agentID.String()))

	agent, err := h.service.GetAgent(r.Context(), agentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Agent not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting agent from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Agent retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, agent, logger)
}

// PostAgent handles POST /agentes.
func (h *AgentHandler) PostAgent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAgent"))

	var req model.CreateAgentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	agent, err := h.service.CreateAgent(r.Context(), &req)
	if err != nil {
		logger.Warn("Error creating agent in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Agent created successfully", slog.String("agent_id", agent.AgentID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, agent, logger)
}

// PutAgent handles PUT /agentes/{agent_id}.
func (h *AgentHandler) PutAgent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutAgent"))

	agentID, ok := parseUUIDParam(w, r, logger, "agent_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("agent_id", agentID.String()))

	var req model.UpdateAgentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	agent, err := h.service.UpdateAgent(r.Context(), agentID, &req)
	if err != nil {
		logger.Warn("Error updating agent in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Agent updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, agent, logger)
}

// parseUUIDParam extracts a uuid path parameter, writing the error response
// on failure.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_URL_PARAM", "El formato de "+name+" no es válido.", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
