// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/service"
	"github.com/juank2492/LenBot/internal/webutil"
)

// UserHandler exposes the teacher/admin management surface: student and
// teacher profiles and teacher-student assignments.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// GetStudents handles GET /estudiantes.
func (h *UserHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudents"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}

	students, err := h.service.ListStudents(r.Context(), userID, role)
	if err != nil {
		logger.Error("Error listing students in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if students == nil {
		students = []*model.StudentProfile{}
	}
	logger.Info("Students listed successfully", slog.Int("count", len(students)))
	webutil.RespondWithJSON(w, http.StatusOK, students, logger)
}

// GetStudent handles GET /estudiantes/{student_id}.
func (h *UserHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudent"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	student, err := h.service.GetStudent(r.Context(), userID, role, studentID)
	if err != nil {
		logger.Warn("Error getting student from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, student, logger)
}

// PutStudent handles PUT /estudiantes/{student_id}.
func (h *UserHandler) PutStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutStudent"))

	userID, role, ok := identity(w, r, logger)
	if !ok {
		return
	}
	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	var req model.UpdateStudentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	student, err := h.service.UpdateStudent(r.Context(), userID, role, studentID, &req)
	if err != nil {
		logger.Warn("Error updating student in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, student, logger)
}

// GetTeachers handles GET /docentes.
func (h *UserHandler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTeachers"))

	teachers, err := h.service.ListTeachers(r.Context())
	if err != nil {
		logger.Error("Error listing teachers in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if teachers == nil {
		teachers = []*model.TeacherProfile{}
	}
	logger.Info("Teachers listed successfully", slog.Int("count", len(teachers)))
	webutil.RespondWithJSON(w, http.StatusOK, teachers, logger)
}

// GetTeacher handles GET /docentes/{teacher_id}.
func (h *UserHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTeacher"))

	teacherID, ok := parseUUIDParam(w, r, logger, "teacher_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("teacher_id", teacherID.String()))

	teacher, err := h.service.GetTeacher(r.Context(), teacherID)
	if err != nil {
		logger.Warn("Error getting teacher from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Teacher retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, teacher, logger)
}

// PutTeacher handles PUT /docentes/{teacher_id}.
func (h *UserHandler) PutTeacher(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTeacher"))

	teacherID, ok := parseUUIDParam(w, r, logger, "teacher_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("teacher_id", teacherID.String()))

	var req model.UpdateTeacherRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	teacher, err := h.service.UpdateTeacher(r.Context(), teacherID, &req)
	if err != nil {
		logger.Warn("Error updating teacher in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Teacher updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, teacher, logger)
}

// PostAssignment handles POST /asignaciones.
func (h *UserHandler) PostAssignment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAssignment"))

	var req model.CreateAssignmentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la solicitud no es válido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !validate(w, logger, req) {
		return
	}

	assignment, err := h.service.CreateAssignment(r.Context(), &req)
	if err != nil {
		logger.Warn("Error creating assignment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assignment created successfully", slog.String("assignment_id", assignment.AssignmentID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, assignment, logger)
}

// DeleteAssignment handles DELETE /asignaciones/{teacher_id}/{student_id}.
// The assignment row survives deactivated so session history keeps its
// context.
func (h *UserHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAssignment"))

	teacherID, ok := parseUUIDParam(w, r, logger, "teacher_id")
	if !ok {
		return
	}
	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(
		slog.String("teacher_id", teacherID.String()),
		slog.String("student_id", studentID.String()),
	)

	if err := h.service.DeactivateAssignment(r.Context(), teacherID, studentID); err != nil {
		logger.Warn("Error deactivating assignment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assignment deactivated successfully")
	w.WriteHeader(http.StatusNoContent)
}
