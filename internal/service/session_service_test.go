// internal/service/session_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

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

func setupTestDBSession() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_sessionService_OpenSession(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	agentID := uuid.New()
	activeAgent := &model.Agent{AgentID: agentID, Name: "Lena", IsActive: true}

	tests := []struct {
		name      string
		req       *model.CreateSessionRequest
		setupMock func(sessionRepo *mocks.SessionRepository, agentRepo *mocks.AgentRepository, profileRepo *mocks.ProfileRepository)
		wantErr   error
		check     func(t *testing.T, session *model.Session)
	}{
		{
			name: "success with explicit agent and full request",
			req: &model.CreateSessionRequest{
				AgentID:    &agentID,
				Title:      "Conversación en el café",
				Topic:      "daily life",
				Difficulty: "B1",
			},
			setupMock: func(sessionRepo *mocks.SessionRepository, agentRepo *mocks.AgentRepository, profileRepo *mocks.ProfileRepository) {
				agentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), agentID).
					Return(activeAgent, nil).Once()
				sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Run(func(args mock.Arguments) {
						session := args.Get(2).(*model.Session)
						assert.Equal(t, studentID, session.StudentID)
						assert.Equal(t, agentID, *session.AgentID)
						assert.Equal(t, "Conversación en el café", session.Title)
						assert.Equal(t, "B1", session.Difficulty)
						assert.Equal(t, model.SessionStarted, session.State)
						assert.NotEqual(t, uuid.Nil, session.SessionID)
					}).Return(nil).Once()
			},
			check: func(t *testing.T, session *model.Session) {
				assert.Equal(t, model.SessionStarted, session.State)
				assert.NotNil(t, session.Transcript)
			},
		},
		{
			name: "agent not found",
			req:  &model.CreateSessionRequest{AgentID: &agentID},
			setupMock: func(sessionRepo *mocks.SessionRepository, agentRepo *mocks.AgentRepository, profileRepo *mocks.ProfileRepository) {
				agentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), agentID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "defaults difficulty from student profile",
			req:  &model.CreateSessionRequest{},
			setupMock: func(sessionRepo *mocks.SessionRepository, agentRepo *mocks.AgentRepository, profileRepo *mocks.ProfileRepository) {
				agentRepo.On("FindFirstActive", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(activeAgent, nil).Once()
				profileRepo.On("FindStudentByUser", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
					Return(&model.StudentProfile{UserID: studentID, Level: model.LevelB2}, nil).Once()
				sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Run(func(args mock.Arguments) {
						session := args.Get(2).(*model.Session)
						assert.Equal(t, "B2", session.Difficulty)
						assert.NotEmpty(t, session.Title)
					}).Return(nil).Once()
			},
		},
		{
			name: "provisions default agent when none active",
			req:  &model.CreateSessionRequest{Difficulty: "A2"},
			setupMock: func(sessionRepo *mocks.SessionRepository, agentRepo *mocks.AgentRepository, profileRepo *mocks.ProfileRepository) {
				agentRepo.On("FindFirstActive", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(nil, model.ErrNotFound).Once()
				agentRepo.On("UpsertByName", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Agent")).
					Run(func(args mock.Arguments) {
						agent := args.Get(2).(*model.Agent)
						assert.Equal(t, model.DefaultAgentName, agent.Name)
						assert.True(t, agent.IsActive)
					}).Return(nil).Once()
				agentRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), model.DefaultAgentName).
					Return(activeAgent, nil).Once()
				sessionRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBSession()
			sessionRepo := new(mocks.SessionRepository)
			agentRepo := new(mocks.AgentRepository)
			profileRepo := new(mocks.ProfileRepository)
			tt.setupMock(sessionRepo, agentRepo, profileRepo)

			svc := NewSessionService(db, sessionRepo, agentRepo, profileRepo)
			session, err := svc.OpenSession(ctx, studentID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				if tt.check != nil {
					tt.check(t, session)
				}
			}
			sessionRepo.AssertExpectations(t)
			agentRepo.AssertExpectations(t)
			profileRepo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_UpdateSession(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	sessionID := uuid.New()
	newTitle := "Nuevo título"
	cancelled := model.SessionCancelled

	tests := []struct {
		name      string
		userID    uuid.UUID
		role      model.UserRole
		req       *model.UpdateSessionRequest
		setupMock func(sessionRepo *mocks.SessionRepository)
		wantErr   error
		check     func(t *testing.T, session *model.Session)
	}{
		{
			name:   "success patches title",
			userID: studentID,
			role:   model.RoleStudent,
			req:    &model.UpdateSessionRequest{Title: &newTitle},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{SessionID: sessionID, StudentID: studentID, State: model.SessionStarted}, nil).Once()
				sessionRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
			},
			check: func(t *testing.T, session *model.Session) {
				assert.Equal(t, newTitle, session.Title)
			},
		},
		{
			name:   "cancelling sets end timestamp",
			userID: studentID,
			role:   model.RoleStudent,
			req:    &model.UpdateSessionRequest{State: &cancelled},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{SessionID: sessionID, StudentID: studentID, State: model.SessionInProgress}, nil).Once()
				sessionRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
			},
			check: func(t *testing.T, session *model.Session) {
				assert.Equal(t, model.SessionCancelled, session.State)
				require.NotNil(t, session.EndedAt)
			},
		},
		{
			name:   "rejects update on finalized session",
			userID: studentID,
			role:   model.RoleStudent,
			req:    &model.UpdateSessionRequest{Title: &newTitle},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{SessionID: sessionID, StudentID: studentID, State: model.SessionCompleted}, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:   "student cannot touch another student's session",
			userID: uuid.New(),
			role:   model.RoleStudent,
			req:    &model.UpdateSessionRequest{Title: &newTitle},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{SessionID: sessionID, StudentID: studentID, State: model.SessionStarted}, nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
		{
			name:   "session not found",
			userID: studentID,
			role:   model.RoleStudent,
			req:    &model.UpdateSessionRequest{Title: &newTitle},
			setupMock: func(sessionRepo *mocks.SessionRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBSession()
			sessionRepo := new(mocks.SessionRepository)
			tt.setupMock(sessionRepo)

			svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), new(mocks.ProfileRepository))
			session, err := svc.UpdateSession(ctx, tt.userID, tt.role, sessionID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, session)
				if tt.check != nil {
					tt.check(t, session)
				}
			}
			sessionRepo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_FinalizeSession(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name      string
		role      model.UserRole
		setupMock func(sessionRepo *mocks.SessionRepository, profileRepo *mocks.ProfileRepository)
		wantErr   error
		check     func(t *testing.T, resp *model.FinalizeSessionResponse)
	}{
		{
			name: "success computes score and refreshes aggregates",
			role: model.RoleStudent,
			setupMock: func(sessionRepo *mocks.SessionRepository, profileRepo *mocks.ProfileRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{
						SessionID:        sessionID,
						StudentID:        studentID,
						State:            model.SessionInProgress,
						StartedAt:        time.Now().Add(-30 * time.Minute),
						CorrectPhrases:   3,
						IncorrectPhrases: 1,
					}, nil).Once()
				sessionRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Run(func(args mock.Arguments) {
						session := args.Get(2).(*model.Session)
						assert.Equal(t, model.SessionCompleted, session.State)
						assert.Equal(t, 75.0, session.Score)
						assert.NotNil(t, session.EndedAt)
						assert.GreaterOrEqual(t, session.DurationMinutes, 29)
					}).Return(nil).Once()
				sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
					Return(&model.SessionAggregates{
						CompletedSessions: 5,
						TotalMinutes:      150,
						AverageScore:      80,
					}, nil).Once()
				profileRepo.On("UpdateStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					return updates["completed_sessions"] == int64(5) &&
						updates["practice_hours"] == int64(2) &&
						updates["average_score"] == 80.0
				})).Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.FinalizeSessionResponse) {
				assert.Equal(t, "Sesión finalizada exitosamente", resp.Message)
				assert.Equal(t, 75.0, resp.Statistics.FinalScore)
				assert.Equal(t, 3, resp.Statistics.CorrectPhrases)
				assert.Equal(t, 1, resp.Statistics.IncorrectPhrases)
			},
		},
		{
			name: "finalize from paused session is allowed",
			role: model.RoleStudent,
			setupMock: func(sessionRepo *mocks.SessionRepository, profileRepo *mocks.ProfileRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{
						SessionID: sessionID,
						StudentID: studentID,
						State:     model.SessionPaused,
						StartedAt: time.Now().Add(-5 * time.Minute),
					}, nil).Once()
				sessionRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
				sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
					Return(&model.SessionAggregates{}, nil).Once()
				profileRepo.On("UpdateStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, mock.AnythingOfType("map[string]interface {}")).
					Return(nil).Once()
			},
			check: func(t *testing.T, resp *model.FinalizeSessionResponse) {
				// No phrases recorded: the score stays at zero.
				assert.Equal(t, 0.0, resp.Statistics.FinalScore)
			},
		},
		{
			name: "already finalized",
			role: model.RoleStudent,
			setupMock: func(sessionRepo *mocks.SessionRepository, profileRepo *mocks.ProfileRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{SessionID: sessionID, StudentID: studentID, State: model.SessionCancelled}, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "missing profile is tolerated",
			role: model.RoleStudent,
			setupMock: func(sessionRepo *mocks.SessionRepository, profileRepo *mocks.ProfileRepository) {
				sessionRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
					Return(&model.Session{
						SessionID: sessionID,
						StudentID: studentID,
						State:     model.SessionInProgress,
						StartedAt: time.Now(),
					}, nil).Once()
				sessionRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Session")).
					Return(nil).Once()
				sessionRepo.On("AggregateCompleted", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
					Return(&model.SessionAggregates{CompletedSessions: 1}, nil).Once()
				profileRepo.On("UpdateStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, mock.AnythingOfType("map[string]interface {}")).
					Return(model.ErrNotFound).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBSession()
			sessionRepo := new(mocks.SessionRepository)
			profileRepo := new(mocks.ProfileRepository)
			tt.setupMock(sessionRepo, profileRepo)

			svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), profileRepo)
			resp, err := svc.FinalizeSession(ctx, studentID, tt.role, sessionID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				if tt.check != nil {
					tt.check(t, resp)
				}
			}
			sessionRepo.AssertExpectations(t)
			profileRepo.AssertExpectations(t)
		})
	}
}

func Test_sessionService_ListSessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	studentID := uuid.New()
	sessions := []*model.Session{{SessionID: uuid.New(), StudentID: studentID}}

	t.Run("student sees only own sessions", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		sessionRepo.On("FindByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(sessions, nil).Once()

		svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), new(mocks.ProfileRepository))
		got, err := svc.ListSessions(ctx, studentID, model.RoleStudent)

		require.NoError(t, err)
		assert.Equal(t, sessions, got)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("teacher sees all sessions", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		sessionRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(sessions, nil).Once()

		svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), new(mocks.ProfileRepository))
		got, err := svc.ListSessions(ctx, uuid.New(), model.RoleTeacher)

		require.NoError(t, err)
		assert.Equal(t, sessions, got)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		sessionRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil, errors.New("db down")).Once()

		svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), new(mocks.ProfileRepository))
		_, err := svc.ListSessions(ctx, uuid.New(), model.RoleAdmin)

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
		sessionRepo.AssertExpectations(t)
	})
}

func Test_sessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	sessionID := uuid.New()

	t.Run("success", func(t *testing.T) {
		db := setupTestDBSession()
		sessionRepo := new(mocks.SessionRepository)
		sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
			Return(&model.Session{SessionID: sessionID, StudentID: studentID}, nil).Once()
		sessionRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
			Return(nil).Once()

		svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), new(mocks.ProfileRepository))
		err := svc.DeleteSession(ctx, studentID, model.RoleStudent, sessionID)

		require.NoError(t, err)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDBSession()
		sessionRepo := new(mocks.SessionRepository)
		sessionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), sessionID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewSessionService(db, sessionRepo, new(mocks.AgentRepository), new(mocks.ProfileRepository))
		err := svc.DeleteSession(ctx, studentID, model.RoleStudent, sessionID)

		assert.ErrorIs(t, err, model.ErrNotFound)
		sessionRepo.AssertExpectations(t)
	})
}
