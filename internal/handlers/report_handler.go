// internal/handlers/report_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/juank2492/LenBot/internal/service"
	"github.com/juank2492/LenBot/internal/webutil"
)

type ReportHandler struct {
	service service.ReportService
	logger  *slog.Logger
}

func NewReportHandler(s service.ReportService, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		service: s,
		logger:  logger,
	}
}

// GetStatistics handles GET /estadisticas. Student role only, enforced by
// the route guard.
func (h *ReportHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStatistics"))

	userID, _, ok := identity(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	stats, err := h.service.StudentStatistics(r.Context(), userID)
	if err != nil {
		logger.Warn("Error getting statistics from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Statistics retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// GetStudentReports handles GET /reportes/estudiantes. Teacher and admin
// roles only.
func (h *ReportHandler) GetStudentReports(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudentReports"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	report, err := h.service.ClassReport(r.Context(), userID, role)
	if err != nil {
		logger.Warn("Error building class report in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Class report built successfully", slog.Int("students", report.TotalStudents))
	webutil.RespondWithJSON(w, http.StatusOK, report, logger)
}
