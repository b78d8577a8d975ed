// internal/service/report_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository/mocks"
)

func setupTestDBReport() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_reportService_StudentStatistics(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReport()
	studentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		profileRepo := new(mocks.ProfileRepository)

		profileRepo.On("FindStudentByUser", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(&model.StudentProfile{
				UserID:            studentID,
				Level:             model.LevelB1,
				PracticeHours:     4,
				AverageScore:      82.5,
				CompletedSessions: 7,
				User:              &model.User{FirstName: "Ana", LastName: "García"},
			}, nil).Once()
		sessionRepo.On("CountByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(int64(10), nil).Once()
		sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(&model.SessionAggregates{
				CompletedSessions: 7,
				TotalMinutes:      260,
				TotalWords:        540,
				TotalCorrect:      31,
				TotalIncorrect:    9,
				AverageScore:      82.4567,
			}, nil).Once()

		svc := NewReportService(db, sessionRepo, profileRepo)
		stats, err := svc.StudentStatistics(ctx, studentID)

		require.NoError(t, err)
		assert.Equal(t, "Ana García", stats.Student.Name)
		assert.Equal(t, model.LevelB1, stats.Student.Level)
		assert.Equal(t, 7, stats.Student.CompletedSessions)
		assert.Equal(t, int64(10), stats.Statistics.TotalSessions)
		assert.Equal(t, int64(7), stats.Statistics.CompletedSessions)
		assert.Equal(t, int64(260), stats.Statistics.TotalMinutes)
		assert.Equal(t, int64(540), stats.Statistics.WordsPracticed)
		// The average is rounded to two decimals.
		assert.Equal(t, 82.46, stats.Statistics.AverageScore)

		sessionRepo.AssertExpectations(t)
		profileRepo.AssertExpectations(t)
	})

	t.Run("profile not found", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		profileRepo := new(mocks.ProfileRepository)
		profileRepo.On("FindStudentByUser", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewReportService(db, sessionRepo, profileRepo)
		_, err := svc.StudentStatistics(ctx, studentID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "PROFILE_NOT_FOUND", appErr.Detail.Code)
		profileRepo.AssertExpectations(t)
	})
}

func Test_reportService_ClassReport(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReport()
	teacherID := uuid.New()
	studentA := uuid.New()
	studentB := uuid.New()

	students := []*model.StudentProfile{
		{
			UserID: studentA,
			Level:  model.LevelA2,
			User:   &model.User{FirstName: "Luis", LastName: "Pérez"},
		},
		{
			UserID: studentB,
			Level:  model.LevelB2,
			User:   &model.User{FirstName: "María", LastName: "López"},
		},
	}

	t.Run("teacher sees assigned students only", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		profileRepo := new(mocks.ProfileRepository)

		profileRepo.On("ListStudentsForTeacher", ctx, mock.AnythingOfType("*gorm.DB"), teacherID).
			Return(students, nil).Once()
		sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), studentA).
			Return(&model.SessionAggregates{CompletedSessions: 3, TotalMinutes: 90, AverageScore: 71.239}, nil).Once()
		sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), studentB).
			Return(&model.SessionAggregates{}, nil).Once()

		svc := NewReportService(db, sessionRepo, profileRepo)
		report, err := svc.ClassReport(ctx, teacherID, model.RoleTeacher)

		require.NoError(t, err)
		assert.Equal(t, 2, report.TotalStudents)
		require.Len(t, report.Reports, 2)

		first := report.Reports[0]
		assert.Equal(t, studentA, first.StudentID)
		assert.Equal(t, "Luis Pérez", first.StudentName)
		assert.Equal(t, int64(3), first.TotalSessions)
		assert.Equal(t, 71.24, first.AverageScore)
		assert.NotNil(t, first.Progress)
		assert.NotNil(t, first.AreasToImprove)
		assert.NotNil(t, first.Recommendations)

		second := report.Reports[1]
		assert.Equal(t, int64(0), second.TotalSessions)
		assert.Equal(t, 0.0, second.AverageScore)

		sessionRepo.AssertExpectations(t)
		profileRepo.AssertExpectations(t)
	})

	t.Run("admin sees every student", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		profileRepo := new(mocks.ProfileRepository)

		profileRepo.On("ListStudents", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(students, nil).Once()
		sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID")).
			Return(&model.SessionAggregates{}, nil).Twice()

		svc := NewReportService(db, sessionRepo, profileRepo)
		report, err := svc.ClassReport(ctx, uuid.New(), model.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, 2, report.TotalStudents)
		profileRepo.AssertExpectations(t)
	})

	t.Run("student role is forbidden", func(t *testing.T) {
		svc := NewReportService(db, new(mocks.SessionRepository), new(mocks.ProfileRepository))
		_, err := svc.ClassReport(ctx, uuid.New(), model.RoleStudent)

		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("empty class yields empty report", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		profileRepo := new(mocks.ProfileRepository)
		profileRepo.On("ListStudentsForTeacher", ctx, mock.AnythingOfType("*gorm.DB"), teacherID).
			Return([]*model.StudentProfile{}, nil).Once()

		svc := NewReportService(db, sessionRepo, profileRepo)
		report, err := svc.ClassReport(ctx, teacherID, model.RoleTeacher)

		require.NoError(t, err)
		assert.Equal(t, 0, report.TotalStudents)
		assert.NotNil(t, report.Reports)
		assert.Empty(t, report.Reports)
	})
}
