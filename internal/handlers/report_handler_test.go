// internal/handlers/report_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/service/mocks"
)

func newReportRouter(svc *mocks.MockReportService, userID uuid.UUID, role model.UserRole) http.Handler {
	h := NewReportHandler(svc, nil)
	r := chi.NewRouter()
	r.Use(asUser(userID, role))
	r.Get("/estadisticas", h.GetStatistics)
	r.Get("/reportes/estudiantes", h.GetStudentReports)
	return r
}

func TestReportHandler_GetStatistics(t *testing.T) {
	studentID := uuid.New()

	svc := mocks.NewMockReportService(t)
	svc.On("StudentStatistics", mock.Anything, studentID).
		Return(&model.StudentStatsResponse{
			Student: model.StudentSummary{Name: "Ana García", Level: model.LevelB1},
			Statistics: model.SessionStats{
				TotalSessions:     10,
				CompletedSessions: 7,
				AverageScore:      82.46,
			},
		}, nil).Once()

	router := newReportRouter(svc, studentID, model.RoleStudent)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/estadisticas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats model.StudentStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, "Ana García", stats.Student.Name)
	assert.Equal(t, 82.46, stats.Statistics.AverageScore)
}

func TestReportHandler_GetStudentReports(t *testing.T) {
	teacherID := uuid.New()

	t.Run("teacher report", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		svc.On("ClassReport", mock.Anything, teacherID, model.RoleTeacher).
			Return(&model.ClassReportResponse{
				TotalStudents: 1,
				Reports: []model.StudentReport{
					{StudentID: uuid.New(), StudentName: "Luis Pérez", AverageScore: 71.24},
				},
			}, nil).Once()

		router := newReportRouter(svc, teacherID, model.RoleTeacher)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reportes/estudiantes", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var report model.ClassReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, 1, report.TotalStudents)
		require.Len(t, report.Reports, 1)
		assert.Equal(t, "Luis Pérez", report.Reports[0].StudentName)
	})

	t.Run("student role is forbidden", func(t *testing.T) {
		svc := mocks.NewMockReportService(t)
		studentID := uuid.New()
		svc.On("ClassReport", mock.Anything, studentID, model.RoleStudent).
			Return(nil, model.NewAppError("FORBIDDEN", "No tienes permiso para acceder a este recurso.", "", model.ErrForbidden)).Once()

		router := newReportRouter(svc, studentID, model.RoleStudent)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reportes/estudiantes", nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
