// internal/handlers/auth_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/service/mocks"
)

func newAuthRouter(svc *mocks.MockAuthService) http.Handler {
	h := NewAuthHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/auth/registro", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	return r
}

func validRegisterBody() map[string]interface{} {
	return map[string]interface{}{
		"email":            "ana@example.com",
		"username":         "ana",
		"password":         "secret123",
		"password_confirm": "secret123",
		"nombre":           "Ana",
		"apellido":         "García",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers a user", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		userID := uuid.New()
		svc.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Run(func(args mock.Arguments) {
				req := args.Get(1).(*model.RegisterRequest)
				assert.Equal(t, "ana@example.com", req.Email)
			}).
			Return(&model.RegisterResponse{
				Message: "Usuario registrado exitosamente",
				User:    &model.User{UserID: userID, Email: "ana@example.com", Role: model.RoleStudent},
				Tokens:  model.TokenPair{Access: "access", Refresh: "refresh"},
			}, nil).Once()

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/registro", validRegisterBody()))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp model.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.User.UserID)
		assert.NotEmpty(t, resp.Tokens.Access)
	})

	t.Run("password mismatch fails validation", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		body := validRegisterBody()
		body["password_confirm"] = "otra-cosa"

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/registro", body))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		assert.Equal(t, "Las contraseñas no coinciden", errResp.Error.Message)
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		body := validRegisterBody()
		body["email"] = "no-es-un-email"

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/registro", body))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		assert.Equal(t, "email", errResp.Error.Field)
	})

	t.Run("duplicate email from service", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(nil, model.NewAppError("DUPLICATE_EMAIL", "El email ya está registrado.", "email", model.ErrInvalidInput)).Once()

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/registro", validRegisterBody()))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec)
		assert.Equal(t, "DUPLICATE_EMAIL", errResp.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		router := newAuthRouter(svc)
		req := httptest.NewRequest(http.MethodPost, "/auth/registro", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec)
		assert.Equal(t, "INVALID_REQUEST_BODY", errResp.Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(&model.LoginResponse{
				Message: "Inicio de sesión exitoso",
				User:    &model.User{UserID: uuid.New(), Role: model.RoleStudent},
				Tokens:  model.TokenPair{Access: "access", Refresh: "refresh"},
			}, nil).Once()

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ana@example.com",
			"password": "secret123",
		}))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "Credenciales inválidas.", "", model.ErrUnauthorized)).Once()

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ana@example.com",
			"password": "wrong",
		}))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		errResp := decodeErrorResponse(t, rec)
		assert.Equal(t, "AUTHENTICATION_FAILED", errResp.Error.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("returns a new pair", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Refresh", mock.Anything, "old-refresh").
			Return(&model.TokenPair{Access: "new-access", Refresh: "new-refresh"}, nil).Once()

		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh": "old-refresh"}))

		require.Equal(t, http.StatusOK, rec.Code)
		var tokens model.TokenPair
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
		assert.Equal(t, "new-access", tokens.Access)
	})

	t.Run("missing refresh token fails validation", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		router := newAuthRouter(svc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/auth/refresh", map[string]string{}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
	})
}
