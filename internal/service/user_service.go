package service

import (
	"context"
	"errors"
	"time"

	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService covers the teacher/admin management surface: browsing and
// editing student and teacher profiles and managing teacher-student
// assignments.
type UserService interface {
	ListStudents(ctx context.Context, userID uuid.UUID, role model.UserRole) ([]*model.StudentProfile, error)
	GetStudent(ctx context.Context, userID uuid.UUID, role model.UserRole, studentID uuid.UUID) (*model.StudentProfile, error)
	UpdateStudent(ctx context.Context, userID uuid.UUID, role model.UserRole, studentID uuid.UUID, req *model.UpdateStudentRequest) (*model.StudentProfile, error)
	ListTeachers(ctx context.Context) ([]*model.TeacherProfile, error)
	GetTeacher(ctx context.Context, teacherID uuid.UUID) (*model.TeacherProfile, error)
	UpdateTeacher(ctx context.Context, teacherID uuid.UUID, req *model.UpdateTeacherRequest) (*model.TeacherProfile, error)
	CreateAssignment(ctx context.Context, req *model.CreateAssignmentRequest) (*model.Assignment, error)
	DeactivateAssignment(ctx context.Context, teacherID, studentID uuid.UUID) error
}

type userService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	assignmentRepo repository.AssignmentRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, assignmentRepo repository.AssignmentRepository) UserService {
	return &userService{
		db:             db,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ListStudents shows a teacher its actively assigned students; an admin
// sees everyone.
func (s *userService) ListStudents(ctx context.Context, userID uuid.UUID, role model.UserRole) ([]*model.StudentProfile, error) {
	var students []*model.StudentProfile
	var err error
	if role == model.RoleTeacher {
		students, err = s.profileRepo.ListStudentsForTeacher(ctx, s.db, userID)
	} else {
		students, err = s.profileRepo.ListStudents(ctx, s.db)
	}
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return students, nil
}

func (s *userService) GetStudent(ctx context.Context, userID uuid.UUID, role model.UserRole, studentID uuid.UUID) (*model.StudentProfile, error) {
	if err := s.checkStudentVisibility(ctx, userID, role, studentID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindStudentByUser(ctx, s.db, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("STUDENT_NOT_FOUND", "El estudiante no existe.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return profile, nil
}

func (s *userService) UpdateStudent(ctx context.Context, userID uuid.UUID, role model.UserRole, studentID uuid.UUID, req *model.UpdateStudentRequest) (*model.StudentProfile, error) {
	logger := middleware.GetLogger(ctx)

	if err := s.checkStudentVisibility(ctx, userID, role, studentID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Level != nil {
		updates["level"] = *req.Level
	}
	if req.Goals != nil {
		updates["goals"] = *req.Goals
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.UpdateStudent(ctx, tx, studentID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("STUDENT_NOT_FOUND", "El estudiante no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar el estudiante.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Student profile updated", "student_id", studentID.String())
	return s.GetStudent(ctx, userID, role, studentID)
}

func (s *userService) ListTeachers(ctx context.Context) ([]*model.TeacherProfile, error) {
	teachers, err := s.profileRepo.ListTeachers(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return teachers, nil
}

func (s *userService) GetTeacher(ctx context.Context, teacherID uuid.UUID) (*model.TeacherProfile, error) {
	profile, err := s.profileRepo.FindTeacherByUser(ctx, s.db, teacherID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TEACHER_NOT_FOUND", "El docente no existe.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return profile, nil
}

func (s *userService) UpdateTeacher(ctx context.Context, teacherID uuid.UUID, req *model.UpdateTeacherRequest) (*model.TeacherProfile, error) {
	logger := middleware.GetLogger(ctx)

	updates := map[string]interface{}{}
	if req.Specialty != nil {
		updates["specialty"] = *req.Specialty
	}
	if req.YearsExperience != nil {
		updates["years_experience"] = *req.YearsExperience
	}
	if req.Certifications != nil {
		updates["certifications"] = *req.Certifications
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.UpdateTeacher(ctx, tx, teacherID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TEACHER_NOT_FOUND", "El docente no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar el docente.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Teacher profile updated", "teacher_id", teacherID.String())
	return s.GetTeacher(ctx, teacherID)
}

// CreateAssignment links a teacher to a student. An existing inactive link
// is reactivated; an active one is reported as a duplicate.
func (s *userService) CreateAssignment(ctx context.Context, req *model.CreateAssignmentRequest) (*model.Assignment, error) {
	logger := middleware.GetLogger(ctx)

	var assignment *model.Assignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkUserHasRole(ctx, tx, req.TeacherID, model.RoleTeacher, "docente_id", "El docente no existe."); err != nil {
			return err
		}
		if err := s.checkUserHasRole(ctx, tx, req.StudentID, model.RoleStudent, "estudiante_id", "El estudiante no existe."); err != nil {
			return err
		}

		existing, err := s.assignmentRepo.FindByPair(ctx, tx, req.TeacherID, req.StudentID)
		if err == nil {
			if existing.Active {
				return model.NewAppError("DUPLICATE_ASSIGNMENT", "El estudiante ya está asignado a este docente.", "", model.ErrInvalidInput)
			}
			updates := map[string]interface{}{"active": true, "assigned_at": time.Now()}
			if err := s.assignmentRepo.Update(ctx, tx, existing.AssignmentID, updates); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear la asignación.", "", err)
			}
			existing.Active = true
			assignment = existing
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		assignment = &model.Assignment{
			AssignmentID: uuid.New(),
			TeacherID:    req.TeacherID,
			StudentID:    req.StudentID,
			AssignedAt:   time.Now(),
			Active:       true,
		}
		if err := s.assignmentRepo.Create(ctx, tx, assignment); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_ASSIGNMENT", "El estudiante ya está asignado a este docente.", "", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear la asignación.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Assignment created",
		"teacher_id", req.TeacherID.String(),
		"student_id", req.StudentID.String(),
	)
	return assignment, nil
}

// DeactivateAssignment hides the student from the teacher's reports without
// touching session history.
func (s *userService) DeactivateAssignment(ctx context.Context, teacherID, studentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err := s.assignmentRepo.FindByPair(ctx, tx, teacherID, studentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("ASSIGNMENT_NOT_FOUND", "La asignación no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		if err := s.assignmentRepo.Update(ctx, tx, assignment.AssignmentID, map[string]interface{}{"active": false}); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al desactivar la asignación.", "", err)
		}

		logger.Info("Assignment deactivated",
			"teacher_id", teacherID.String(),
			"student_id", studentID.String(),
		)
		return nil
	})
}

// --- helpers ---

// checkStudentVisibility limits teachers to students actively assigned to
// them. Admins see everyone.
func (s *userService) checkStudentVisibility(ctx context.Context, userID uuid.UUID, role model.UserRole, studentID uuid.UUID) error {
	if role != model.RoleTeacher {
		return nil
	}
	assignment, err := s.assignmentRepo.FindByPair(ctx, s.db, userID, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("FORBIDDEN", "El estudiante no está asignado a este docente.", "", model.ErrForbidden)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	if !assignment.Active {
		return model.NewAppError("FORBIDDEN", "El estudiante no está asignado a este docente.", "", model.ErrForbidden)
	}
	return nil
}

func (s *userService) checkUserHasRole(ctx context.Context, tx *gorm.DB, userID uuid.UUID, role model.UserRole, field, message string) error {
	user, err := s.userRepo.FindByID(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", message, field, model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	if user.Role != role {
		return model.NewAppError("INVALID_ROLE", message, field, model.ErrInvalidInput)
	}
	return nil
}
