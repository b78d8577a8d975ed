// internal/handlers/interaction_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/service"
	"github.com/juank2492/LenBot/internal/webutil"

	"github.com/google/uuid"
)

type InteractionHandler struct {
	service service.InteractionService
	logger  *slog.Logger
}

func NewInteractionHandler(s service.InteractionService, logger *slog.Logger) *InteractionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InteractionHandler{
		service: s,
		logger:  logger,
	}
}

// PostInteraction handles POST /interaccion, the main exchange with the
// virtual agent.
func (h *InteractionHandler) PostInteraction(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostInteraction"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.InteractionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	resp, err := h.service.ProcessInteraction(r.Context(), userID, role, &req)
	if err != nil {
		logger.Warn("Error processing interaction in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Interaction processed successfully",
		slog.String("session_id", req.SessionID.String()),
		slog.Float64("overall_score", resp.OverallScore),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetFeedback handles GET /retroalimentaciones?sesion_id=.
func (h *InteractionHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFeedback"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("sesion_id")
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid sesion_id query parameter", slog.String("value", raw))
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "El parámetro sesion_id es requerido y debe ser un UUID.", "sesion_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	feedbacks, err := h.service.ListFeedback(r.Context(), userID, role, sessionID)
	if err != nil {
		logger.Warn("Error listing feedback in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if feedbacks == nil {
		feedbacks = []*model.Feedback{}
	}
	logger.Info("Feedback listed successfully", slog.Int("count", len(feedbacks)))
	webutil.RespondWithJSON(w, http.StatusOK, feedbacks, logger)
}
