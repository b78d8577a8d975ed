package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/juank2492/LenBot/internal/config"
	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error
}

type authService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tokenRepo   repository.TokenRepository
	mailer      Mailer
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// Register creates the user and its role profile in one transaction. The
// welcome email goes out after commit so a mail outage never loses the
// account.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	logger := middleware.GetLogger(ctx)

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}

	var newUser *model.User
	var profile interface{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.userRepo.CheckEmailExists(ctx, tx, req.Email)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if exists {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "El email ya está registrado.", "email", model.ErrInvalidInput)
		}

		exists, err = s.userRepo.CheckUsernameExists(ctx, tx, req.Username)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if exists {
			logger.Warn("Username already exists", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "El nombre de usuario ya está en uso.", "username", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al procesar la contraseña.", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			Email:        req.Email,
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         role,
			PasswordHash: string(hashedPassword),
			IsActive:     true,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_ENTRY", "El email o nombre de usuario ya está registrado.", "email,username", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el usuario.", "", err)
		}
		newUser = user

		profile, err = s.createRoleProfile(ctx, tx, user, req)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokenPair(ctx, newUser)
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(ctx, newUser)

	logger.Info("User registered", "user_id", newUser.UserID, "role", string(newUser.Role))
	return &model.RegisterResponse{
		Message: "Usuario registrado exitosamente",
		User:    newUser,
		Profile: profile,
		Tokens:  *tokens,
	}, nil
}

// Login authenticates by email and password and returns the user, its role
// profile and a fresh token pair.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Credenciales inválidas.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Credenciales inválidas.", "", model.ErrUnauthorized)
	}

	if !user.IsActive {
		logger.Warn("Login failed: account deactivated", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_DISABLED", "La cuenta está desactivada.", "", model.ErrUnauthorized)
	}

	profile, err := s.loadRoleProfile(ctx, s.db, user)
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{
		Message: "Inicio de sesión exitoso",
		User:    user,
		Profile: profile,
		Tokens:  *tokens,
	}, nil
}

// Refresh rotates the refresh token: the presented token is deleted and a
// new pair is issued. Expired or unknown tokens yield 401.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	logger := middleware.GetLogger(ctx)

	var user *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := s.tokenRepo.FindRefreshToken(ctx, tx, refreshToken)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Refresh failed: token not found")
				return model.NewAppError("INVALID_TOKEN", "El token de refresco no es válido.", "refresh", model.ErrUnauthorized)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		if time.Now().After(stored.ExpiresAt) {
			logger.Warn("Refresh failed: token expired", "user_id", stored.UserID)
			_ = s.tokenRepo.DeleteRefreshToken(ctx, tx, refreshToken)
			return model.NewAppError("INVALID_TOKEN", "El token de refresco ha expirado.", "refresh", model.ErrUnauthorized)
		}

		user, err = s.userRepo.FindByID(ctx, tx, stored.UserID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INVALID_TOKEN", "El token de refresco no es válido.", "refresh", model.ErrUnauthorized)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		if !user.IsActive {
			return model.NewAppError("ACCOUNT_DISABLED", "La cuenta está desactivada.", "", model.ErrUnauthorized)
		}

		if err := s.tokenRepo.DeleteRefreshToken(ctx, tx, refreshToken); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("Token refreshed", "user_id", user.UserID)
	return tokens, nil
}

// Logout revokes the presented refresh token. Unknown tokens are ignored so
// logout is idempotent.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	logger := middleware.GetLogger(ctx)
	if refreshToken == "" {
		return nil
	}
	if err := s.tokenRepo.DeleteRefreshToken(ctx, s.db, refreshToken); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	logger.Info("Logout successful")
	return nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "El usuario no existe.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}

	profile, err := s.loadRoleProfile(ctx, s.db, user)
	if err != nil {
		return nil, err
	}

	return &model.ProfileResponse{User: user, Profile: profile}, nil
}

// UpdateProfile patches the base user fields and whichever role profile
// fields apply, in one transaction.
func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "El usuario no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		userUpdates := map[string]interface{}{}
		if req.FirstName != nil {
			userUpdates["first_name"] = *req.FirstName
		}
		if req.LastName != nil {
			userUpdates["last_name"] = *req.LastName
		}
		if req.AvatarURL != nil {
			userUpdates["avatar_url"] = *req.AvatarURL
		}
		if len(userUpdates) > 0 {
			if err := s.userRepo.Update(ctx, tx, userID, userUpdates); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar el perfil.", "", err)
			}
		}

		switch user.Role {
		case model.RoleStudent:
			profileUpdates := map[string]interface{}{}
			if req.Level != nil {
				profileUpdates["level"] = *req.Level
			}
			if req.Goals != nil {
				profileUpdates["goals"] = *req.Goals
			}
			if len(profileUpdates) > 0 {
				if err := s.profileRepo.UpdateStudent(ctx, tx, userID, profileUpdates); err != nil {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar el perfil.", "", err)
				}
			}
		case model.RoleTeacher:
			profileUpdates := map[string]interface{}{}
			if req.Specialty != nil {
				profileUpdates["specialty"] = *req.Specialty
			}
			if req.YearsExperience != nil {
				profileUpdates["years_experience"] = *req.YearsExperience
			}
			if req.Certifications != nil {
				profileUpdates["certifications"] = *req.Certifications
			}
			if len(profileUpdates) > 0 {
				if err := s.profileRepo.UpdateTeacher(ctx, tx, userID, profileUpdates); err != nil {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar el perfil.", "", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Profile updated", "user_id", userID.String())
	return s.GetProfile(ctx, userID)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every refresh token of the user.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "El usuario no existe.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			logger.Warn("Change password failed: current password mismatch", "user_id", userID.String())
			return model.NewAppError("INVALID_PASSWORD", "La contraseña actual no es correcta.", "password_actual", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al procesar la contraseña.", "", err)
		}

		if err := s.userRepo.Update(ctx, tx, userID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Error al actualizar la contraseña.", "", err)
		}

		if err := s.tokenRepo.DeleteRefreshTokensByUser(ctx, tx, userID); err != nil {
			logger.Error("Failed to revoke refresh tokens after password change", "error", err)
		}

		logger.Info("Password changed", "user_id", userID.String())
		return nil
	})
}

// --- helpers ---

func (s *authService) createRoleProfile(ctx context.Context, tx *gorm.DB, user *model.User, req *model.RegisterRequest) (interface{}, error) {
	switch user.Role {
	case model.RoleStudent:
		level := req.Level
		if level == "" {
			level = model.LevelA1
		}
		profile := &model.StudentProfile{
			ProfileID: uuid.New(),
			UserID:    user.UserID,
			Level:     level,
			Goals:     req.Goals,
		}
		if err := s.profileRepo.CreateStudent(ctx, tx, profile); err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el perfil de estudiante.", "", err)
		}
		return profile, nil
	case model.RoleTeacher:
		profile := &model.TeacherProfile{
			ProfileID:       uuid.New(),
			UserID:          user.UserID,
			Specialty:       req.Specialty,
			YearsExperience: req.YearsExperience,
		}
		if err := s.profileRepo.CreateTeacher(ctx, tx, profile); err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el perfil de docente.", "", err)
		}
		return profile, nil
	case model.RoleAdmin:
		profile := &model.AdminProfile{
			ProfileID: uuid.New(),
			UserID:    user.UserID,
		}
		if err := s.profileRepo.CreateAdmin(ctx, tx, profile); err != nil {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al crear el perfil de administrador.", "", err)
		}
		return profile, nil
	default:
		return nil, model.NewAppError("INVALID_ROLE", "El tipo de usuario no es válido.", "tipo_usuario", model.ErrInvalidInput)
	}
}

func (s *authService) loadRoleProfile(ctx context.Context, db *gorm.DB, user *model.User) (interface{}, error) {
	logger := middleware.GetLogger(ctx)

	var profile interface{}
	var err error
	switch user.Role {
	case model.RoleStudent:
		profile, err = s.profileRepo.FindStudentByUser(ctx, db, user.UserID)
	case model.RoleTeacher:
		profile, err = s.profileRepo.FindTeacherByUser(ctx, db, user.UserID)
	case model.RoleAdmin:
		profile, err = s.profileRepo.FindAdminByUser(ctx, db, user.UserID)
	default:
		return nil, nil
	}
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Role profile missing for user", "user_id", user.UserID, "role", string(user.Role))
			return nil, nil
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocurrió un error interno en el servidor.", "", err)
	}
	return profile, nil
}

// issueTokenPair signs a new access JWT and persists a new refresh token.
func (s *authService) issueTokenPair(ctx context.Context, user *model.User) (*model.TokenPair, error) {
	logger := middleware.GetLogger(ctx)

	claims := &model.AccessClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.App.Name,
			Subject:   user.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al generar el token.", "", err)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		logger.Error("Failed to generate refresh token bytes", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al generar el token.", "", err)
	}
	refreshString := hex.EncodeToString(tokenBytes)

	refreshToken := &model.RefreshToken{
		Token:     refreshString,
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(s.cfg.JWT.RefreshTokenTTL),
	}
	if err := s.tokenRepo.CreateRefreshToken(ctx, s.db, refreshToken); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Error al guardar el token de refresco.", "", err)
	}

	return &model.TokenPair{Access: signedToken, Refresh: refreshString}, nil
}

// sendWelcomeEmail is best effort: a mail failure is logged, never surfaced.
func (s *authService) sendWelcomeEmail(ctx context.Context, user *model.User) {
	logger := middleware.GetLogger(ctx)
	subject := fmt.Sprintf("¡Bienvenido a %s!", s.cfg.App.Name)
	body := fmt.Sprintf("Hola %s,\n\nTu cuenta ha sido creada exitosamente. Ya puedes comenzar a practicar inglés con tu agente virtual.\n\n%s", user.FirstName, s.cfg.App.FrontendURL)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Error("Failed to send welcome email", "error", err, "to", user.Email)
	}
}
