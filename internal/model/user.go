// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "estudiante"
	RoleTeacher UserRole = "docente"
	RoleAdmin   UserRole = "administrador"
)

// CEFRLevel is an English proficiency level on the CEFR scale.
type CEFRLevel string

const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// User is the base account. Exactly one role profile is attached 1:1
// according to Role; accounts are deactivated, never hard-deleted.
type User struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	FirstName    string         `gorm:"not null" json:"nombre"`
	LastName     string         `gorm:"not null" json:"apellido"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'estudiante'" json:"tipo_usuario"`
	AvatarURL    *string        `json:"avatar_url"`
	PasswordHash string         `gorm:"not null" json:"-"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// StudentProfile carries the learning state of a student account. The
// aggregate fields (hours, average, completed counter) are only written by
// session finalization.
type StudentProfile struct {
	ProfileID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Level             CEFRLevel `gorm:"type:varchar(5);not null;default:'A1'" json:"nivel_ingles"`
	Goals             string    `json:"objetivos"`
	PracticeHours     int       `gorm:"not null;default:0" json:"horas_practica"`
	AverageScore      float64   `gorm:"not null;default:0" json:"puntuacion_promedio"`
	CompletedSessions int       `gorm:"not null;default:0" json:"sesiones_completadas"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"usuario,omitempty"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

type TeacherProfile struct {
	ProfileID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Specialty       string    `json:"especialidad"`
	YearsExperience int       `gorm:"not null;default:0" json:"anios_experiencia"`
	Certifications  string    `json:"certificaciones"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"usuario,omitempty"`
}

func (TeacherProfile) TableName() string {
	return "teacher_profiles"
}

type AdminProfile struct {
	ProfileID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	AccessLevel int       `gorm:"not null;default:1" json:"nivel_acceso"`
	Department  string    `json:"departamento"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"usuario,omitempty"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}

// Assignment links a teacher to a supervised student. At most one row per
// (teacher, student) pair; visibility in reports follows the Active flag.
type Assignment struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID    uuid.UUID `gorm:"type:uuid;not null;index:idx_teacher_student,unique" json:"docente_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index:idx_teacher_student,unique" json:"estudiante_id"`
	AssignedAt   time.Time `gorm:"not null" json:"fecha_asignacion"`
	Active       bool      `gorm:"not null;default:true" json:"activo"`
}

func (Assignment) TableName() string {
	return "assignments"
}

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserRoleKey ContextKey = "userRole"
)

// RegisterRequest creates a user plus its role profile. The profile fields
// that apply depend on tipo_usuario.
type RegisterRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Username        string   `json:"username" validate:"required,min=3,max=100"`
	Password        string   `json:"password" validate:"required,min=6,max=72"`
	PasswordConfirm string   `json:"password_confirm" validate:"required,eqfield=Password"`
	FirstName       string   `json:"nombre" validate:"required,max=100"`
	LastName        string   `json:"apellido" validate:"required,max=100"`
	Role            UserRole `json:"tipo_usuario" validate:"omitempty,oneof=estudiante docente administrador"`

	// Student fields
	Level CEFRLevel `json:"nivel_ingles" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	Goals string    `json:"objetivos"`

	// Teacher fields
	Specialty       string `json:"especialidad"`
	YearsExperience int    `json:"anios_experiencia" validate:"omitempty,min=0"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"apellido,omitempty" validate:"omitempty,min=1,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`

	Level *CEFRLevel `json:"nivel_ingles,omitempty" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	Goals *string    `json:"objetivos,omitempty"`

	Specialty       *string `json:"especialidad,omitempty"`
	YearsExperience *int    `json:"anios_experiencia,omitempty" validate:"omitempty,min=0"`
	Certifications  *string `json:"certificaciones,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"password_actual" validate:"required"`
	NewPassword     string `json:"password_nuevo" validate:"required,min=6,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=NewPassword"`
}

type UpdateStudentRequest struct {
	Level *CEFRLevel `json:"nivel_ingles,omitempty" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	Goals *string    `json:"objetivos,omitempty"`
}

type UpdateTeacherRequest struct {
	Specialty       *string `json:"especialidad,omitempty"`
	YearsExperience *int    `json:"anios_experiencia,omitempty" validate:"omitempty,min=0"`
	Certifications  *string `json:"certificaciones,omitempty"`
}

type CreateAssignmentRequest struct {
	TeacherID uuid.UUID `json:"docente_id" validate:"required"`
	StudentID uuid.UUID `json:"estudiante_id" validate:"required"`
}

// ProfileResponse pairs the base user with whichever role profile exists.
type ProfileResponse struct {
	User    *User       `json:"usuario"`
	Profile interface{} `json:"perfil"`
}
