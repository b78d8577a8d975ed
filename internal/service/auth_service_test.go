// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/juank2492/LenBot/internal/config"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository/mocks"
)

func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "LenBot"
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = 15 * time.Minute
	cfg.JWT.RefreshTokenTTL = 7 * 24 * time.Hour
	return cfg
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()

	baseReq := func() *model.RegisterRequest {
		return &model.RegisterRequest{
			Email:           "ana@example.com",
			Username:        "ana",
			Password:        "secret123",
			PasswordConfirm: "secret123",
			FirstName:       "Ana",
			LastName:        "García",
		}
	}

	tests := []struct {
		name      string
		req       *model.RegisterRequest
		setupMock func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository)
		wantErr   error
		check     func(t *testing.T, resp *model.RegisterResponse)
	}{
		{
			name: "registers a student with default level",
			req:  baseReq(),
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("CheckEmailExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(false, nil).Once()
				userRepo.On("CheckUsernameExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana").
					Return(false, nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(2).(*model.User)
						assert.Equal(t, model.RoleStudent, user.Role)
						assert.True(t, user.IsActive)
						assert.NotEmpty(t, user.PasswordHash)
						assert.NotEqual(t, "secret123", user.PasswordHash)
					}).Return(nil).Once()
				profileRepo.On("CreateStudent", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StudentProfile")).
					Run(func(args mock.Arguments) {
						profile := args.Get(2).(*model.StudentProfile)
						assert.Equal(t, model.LevelA1, profile.Level)
					}).Return(nil).Once()
				tokenRepo.On("CreateRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RefreshToken")).
					Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.RegisterResponse) {
				assert.Equal(t, "Usuario registrado exitosamente", resp.Message)
				assert.NotEmpty(t, resp.Tokens.Access)
				assert.NotEmpty(t, resp.Tokens.Refresh)
				assert.NotNil(t, resp.Profile)
			},
		},
		{
			name: "registers a teacher profile",
			req: func() *model.RegisterRequest {
				req := baseReq()
				req.Role = model.RoleTeacher
				req.Specialty = "Conversación"
				req.YearsExperience = 5
				return req
			}(),
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("CheckEmailExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(false, nil).Once()
				userRepo.On("CheckUsernameExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana").
					Return(false, nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(nil).Once()
				profileRepo.On("CreateTeacher", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TeacherProfile")).
					Run(func(args mock.Arguments) {
						profile := args.Get(2).(*model.TeacherProfile)
						assert.Equal(t, "Conversación", profile.Specialty)
						assert.Equal(t, 5, profile.YearsExperience)
					}).Return(nil).Once()
				tokenRepo.On("CreateRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RefreshToken")).
					Return(nil).Once()
			},
		},
		{
			name: "duplicate email",
			req:  baseReq(),
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("CheckEmailExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(true, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "duplicate username",
			req:  baseReq(),
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("CheckEmailExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(false, nil).Once()
				userRepo.On("CheckUsernameExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana").
					Return(true, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "race on unique index maps to invalid input",
			req:  baseReq(),
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("CheckEmailExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(false, nil).Once()
				userRepo.On("CheckUsernameExists", ctx, mock.AnythingOfType("*gorm.DB"), "ana").
					Return(false, nil).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBAuth()
			userRepo := new(mocks.UserRepository)
			profileRepo := new(mocks.ProfileRepository)
			tokenRepo := new(mocks.TokenRepository)
			tt.setupMock(userRepo, profileRepo, tokenRepo)

			svc := NewAuthService(db, userRepo, profileRepo, tokenRepo, &LogMailer{}, testAuthConfig())
			resp, err := svc.Register(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				if tt.check != nil {
					tt.check(t, resp)
				}
			}
			userRepo.AssertExpectations(t)
			profileRepo.AssertExpectations(t)
			tokenRepo.AssertExpectations(t)
		})
	}
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	passwordHash := hashPassword(t, "secret123")

	activeUser := func() *model.User {
		return &model.User{
			UserID:       userID,
			Email:        "ana@example.com",
			Role:         model.RoleStudent,
			PasswordHash: passwordHash,
			IsActive:     true,
		}
	}

	tests := []struct {
		name      string
		req       *model.LoginRequest
		setupMock func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository)
		wantErr   error
		wantCode  string
		check     func(t *testing.T, resp *model.LoginResponse)
	}{
		{
			name: "success",
			req:  &model.LoginRequest{Email: "ana@example.com", Password: "secret123"},
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(activeUser(), nil).Once()
				profileRepo.On("FindStudentByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.StudentProfile{UserID: userID, Level: model.LevelA1}, nil).Once()
				tokenRepo.On("CreateRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RefreshToken")).
					Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.LoginResponse) {
				assert.Equal(t, "Inicio de sesión exitoso", resp.Message)
				assert.NotNil(t, resp.Profile)

				// The access token must carry the user id and role.
				claims := &model.AccessClaims{}
				_, err := jwt.ParseWithClaims(resp.Tokens.Access, claims, func(token *jwt.Token) (interface{}, error) {
					return []byte("test-secret"), nil
				})
				require.NoError(t, err)
				assert.Equal(t, userID.String(), claims.Subject)
				assert.Equal(t, model.RoleStudent, claims.Role)
			},
		},
		{
			name: "wrong password",
			req:  &model.LoginRequest{Email: "ana@example.com", Password: "wrong"},
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(activeUser(), nil).Once()
			},
			wantErr:  model.ErrUnauthorized,
			wantCode: "AUTHENTICATION_FAILED",
		},
		{
			name: "unknown email",
			req:  &model.LoginRequest{Email: "nadie@example.com", Password: "secret123"},
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nadie@example.com").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr:  model.ErrUnauthorized,
			wantCode: "AUTHENTICATION_FAILED",
		},
		{
			name: "deactivated account",
			req:  &model.LoginRequest{Email: "ana@example.com", Password: "secret123"},
			setupMock: func(userRepo *mocks.UserRepository, profileRepo *mocks.ProfileRepository, tokenRepo *mocks.TokenRepository) {
				user := activeUser()
				user.IsActive = false
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").
					Return(user, nil).Once()
			},
			wantErr:  model.ErrUnauthorized,
			wantCode: "ACCOUNT_DISABLED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBAuth()
			userRepo := new(mocks.UserRepository)
			profileRepo := new(mocks.ProfileRepository)
			tokenRepo := new(mocks.TokenRepository)
			tt.setupMock(userRepo, profileRepo, tokenRepo)

			svc := NewAuthService(db, userRepo, profileRepo, tokenRepo, &LogMailer{}, testAuthConfig())
			resp, err := svc.Login(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantCode != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				if tt.check != nil {
					tt.check(t, resp)
				}
			}
			userRepo.AssertExpectations(t)
			profileRepo.AssertExpectations(t)
			tokenRepo.AssertExpectations(t)
		})
	}
}

func Test_authService_Refresh(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates a valid token", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(mocks.UserRepository)
		tokenRepo := new(mocks.TokenRepository)

		tokenRepo.On("FindRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), "valid-token").
			Return(&model.RefreshToken{Token: "valid-token", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.User{UserID: userID, Role: model.RoleStudent, IsActive: true}, nil).Once()
		tokenRepo.On("DeleteRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), "valid-token").
			Return(nil).Once()
		tokenRepo.On("CreateRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RefreshToken")).
			Run(func(args mock.Arguments) {
				token := args.Get(2).(*model.RefreshToken)
				assert.NotEqual(t, "valid-token", token.Token)
			}).Return(nil).Once()

		svc := NewAuthService(db, userRepo, new(mocks.ProfileRepository), tokenRepo, &LogMailer{}, testAuthConfig())
		tokens, err := svc.Refresh(ctx, "valid-token")

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.Access)
		assert.NotEqual(t, "valid-token", tokens.Refresh)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("expired token is revoked", func(t *testing.T) {
		db := setupTestDBAuth()
		tokenRepo := new(mocks.TokenRepository)
		tokenRepo.On("FindRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), "expired-token").
			Return(&model.RefreshToken{Token: "expired-token", UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
		tokenRepo.On("DeleteRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), "expired-token").
			Return(nil).Once()

		svc := NewAuthService(db, new(mocks.UserRepository), new(mocks.ProfileRepository), tokenRepo, &LogMailer{}, testAuthConfig())
		_, err := svc.Refresh(ctx, "expired-token")

		assert.ErrorIs(t, err, model.ErrUnauthorized)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("unknown token", func(t *testing.T) {
		db := setupTestDBAuth()
		tokenRepo := new(mocks.TokenRepository)
		tokenRepo.On("FindRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), "ghost").
			Return(nil, model.ErrNotFound).Once()

		svc := NewAuthService(db, new(mocks.UserRepository), new(mocks.ProfileRepository), tokenRepo, &LogMailer{}, testAuthConfig())
		_, err := svc.Refresh(ctx, "ghost")

		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func Test_authService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the token", func(t *testing.T) {
		db := setupTestDBAuth()
		tokenRepo := new(mocks.TokenRepository)
		tokenRepo.On("DeleteRefreshToken", ctx, mock.AnythingOfType("*gorm.DB"), "some-token").
			Return(nil).Once()

		svc := NewAuthService(db, new(mocks.UserRepository), new(mocks.ProfileRepository), tokenRepo, &LogMailer{}, testAuthConfig())
		err := svc.Logout(ctx, "some-token")

		require.NoError(t, err)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		db := setupTestDBAuth()
		tokenRepo := new(mocks.TokenRepository)

		svc := NewAuthService(db, new(mocks.UserRepository), new(mocks.ProfileRepository), tokenRepo, &LogMailer{}, testAuthConfig())
		err := svc.Logout(ctx, "")

		require.NoError(t, err)
		tokenRepo.AssertNotCalled(t, "DeleteRefreshToken")
	})
}

func Test_authService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	passwordHash := hashPassword(t, "old-password")

	t.Run("success revokes all refresh tokens", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(mocks.UserRepository)
		tokenRepo := new(mocks.TokenRepository)

		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.User{UserID: userID, PasswordHash: passwordHash}, nil).Once()
		userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			hash, ok := updates["password_hash"].(string)
			return ok && hash != "" && hash != passwordHash
		})).Return(nil).Once()
		tokenRepo.On("DeleteRefreshTokensByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil).Once()

		svc := NewAuthService(db, userRepo, new(mocks.ProfileRepository), tokenRepo, &LogMailer{}, testAuthConfig())
		err := svc.ChangePassword(ctx, userID, &model.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
			PasswordConfirm: "new-password",
		})

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		db := setupTestDBAuth()
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(&model.User{UserID: userID, PasswordHash: passwordHash}, nil).Once()

		svc := NewAuthService(db, userRepo, new(mocks.ProfileRepository), new(mocks.TokenRepository), &LogMailer{}, testAuthConfig())
		err := svc.ChangePassword(ctx, userID, &model.ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password",
			PasswordConfirm: "new-password",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_PASSWORD", appErr.Detail.Code)
	})
}
