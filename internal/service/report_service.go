package service

import (
	"context"
	"errors"
	"math"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportService interface {
	StudentStatistics(ctx context.Context, studentID uuid.UUID) (*model.StudentStatsResponse, error)
	ClassReport(ctx context.Context, userID uuid.UUID, role model.UserRole) (*model.ClassReportResponse, error)
}

type reportService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	profileRepo repository.ProfileRepository
}

func NewReportService(db *gorm.DB, sessionRepo repository.SessionRepository, profileRepo repository.ProfileRepository) ReportService {
	return &reportService{
		db:          db,
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
	}
}

// StudentStatistics returns the authenticated student's profile snapshot
// plus the rollup over its completed sessions.
func (s *reportService) StudentStatistics(ctx context.Context, studentID uuid.UUID) (*model.StudentStatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	profile, err := s.profileRepo.FindStudentByUser(ctx, s.db, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Student profile not found", "user_id", studentID.String())
			return nil, model.NewAppError("PROFILE_NOT_FOUND", "Perfil de estudiante no encontrado.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	total, err := s.sessionRepo.CountByStudent(ctx, s.db, studentID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	agg, err := s.sessionRepo.AggregateCompleted(ctx, s.db, studentID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	name := ""
	if profile.User != nil {
		name = profile.User.FullName()
	}

	return &model.StudentStatsResponse{
		Student: model.StudentSummary{
			Name:              name,
			Level:             profile.Level,
			PracticeHours:     profile.PracticeHours,
			CompletedSessions: profile.CompletedSessions,
			AverageScore:      profile.AverageScore,
		},
		Statistics: model.SessionStats{
			TotalSessions:     total,
			CompletedSessions: agg.CompletedSessions,
			TotalMinutes:      agg.TotalMinutes,
			WordsPracticed:    agg.TotalWords,
			CorrectPhrases:    agg.TotalCorrect,
			IncorrectPhrases:  agg.TotalIncorrect,
			AverageScore:      round2(agg.AverageScore),
		},
	}, nil
}

// ClassReport builds one report entry per visible student: a teacher sees
// only students with an active assignment to them, an admin sees everyone.
func (s *reportService) ClassReport(ctx context.Context, userID uuid.UUID, role model.UserRole) (*model.ClassReportResponse, error) {
	var students []*model.StudentProfile
	var err error
	switch role {
	case model.RoleTeacher:
		students, err = s.profileRepo.ListStudentsForTeacher(ctx, s.db, userID)
	case model.RoleAdmin:
		students, err = s.profileRepo.ListStudents(ctx, s.db)
	default:
		return nil, model.NewAppError("FORBIDDEN", "Solo disponible para docentes y administradores.", "", model.ErrForbidden)
	}
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	reports := make([]model.StudentReport, 0, len(students))
	for _, student := range students {
		agg, err := s.sessionRepo.AggregateCompleted(ctx, s.db, student.UserID)
		if err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		name := ""
		if student.User != nil {
			name = student.User.FullName()
		}

		reports = append(reports, model.StudentReport{
			StudentID:       student.UserID,
			StudentName:     name,
			CurrentLevel:    student.Level,
			TotalSessions:   agg.CompletedSessions,
			TotalMinutes:    agg.TotalMinutes,
			AverageScore:    round2(agg.AverageScore),
			Progress:        map[string]interface{}{},
			AreasToImprove:  []string{},
			Recommendations: []string{},
		})
	}

	return &model.ClassReportResponse{
		TotalStudents: len(reports),
		Reports:       reports,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
