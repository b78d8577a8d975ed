// internal/handlers/session_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/service"
	"github.com/juank2492/LenBot/internal/webutil"

	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// PostSession handles POST /sesiones. Student role only, enforced by the
// route guard.
func (h *SessionHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSession"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	session, err := h.service.OpenSession(r.Context(), userID, &req)
	if err != nil {
		logger.Warn("Error opening session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session opened successfully", slog.String("session_id", session.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, session, logger)
}

// GetSessions handles GET /sesiones.
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSessions"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}

	sessions, err := h.service.ListSessions(r.Context(), userID, role)
	if err != nil {
		logger.Error("Error listing sessions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if sessions == nil {
		sessions = []*model.Session{}
	}
	logger.Info("Sessions listed successfully", slog.Int("count", len(sessions)))
	webutil.RespondWithJSON(w, http.StatusOK, sessions, logger)
}

// GetSession handles GET /sesiones/{session_id}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSession"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	session, err := h.service.GetSession(r.Context(), userID, role, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Session not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting session from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// PatchSession handles PATCH /sesiones/{session_id}.
func (h *SessionHandler) PatchSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchSession"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.UpdateSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	session, err := h.service.UpdateSession(r.Context(), userID, role, sessionID, &req)
	if err != nil {
		logger.Warn("Error updating session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// PostFinalize handles POST /sesiones/{session_id}/finalizar.
func (h *SessionHandler) PostFinalize(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFinalize"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	resp, err := h.service.FinalizeSession(r.Context(), userID, role, sessionID)
	if err != nil {
		logger.Warn("Error finalizing session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session finalized successfully", slog.Float64("score", resp.Statistics.FinalScore))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// DeleteSession handles DELETE /sesiones/{session_id}.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSession"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := parseUUIDParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	if err := h.service.DeleteSession(r.Context(), userID, role, sessionID); err != nil {
		logger.Warn("Error deleting session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// identity pulls the authenticated user id and role from the context.
func identity(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (userID uuid.UUID, role model.UserRole, ok bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, "", false
	}
	role, err = middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		logger.Warn("Role missing from context", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, "", false
	}
	return userID, role, true
}
