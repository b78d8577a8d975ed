// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/juank2492/LenBot/internal/config"
	"github.com/juank2492/LenBot/internal/handlers"
	"github.com/juank2492/LenBot/internal/middleware"
	"github.com/juank2492/LenBot/internal/model"
	"github.com/juank2492/LenBot/internal/repository"
	"github.com/juank2492/LenBot/internal/scoring"
	"github.com/juank2492/LenBot/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config is loaded.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// Database
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.TeacherProfile{},
		&model.AdminProfile{},
		&model.Assignment{},
		&model.Agent{},
		&model.Session{},
		&model.Feedback{},
		&model.RefreshToken{},
	); err != nil {
		slog.Error("Error running migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection
	userRepo := repository.NewGormUserRepository()
	profileRepo := repository.NewGormProfileRepository()
	agentRepo := repository.NewGormAgentRepository()
	sessionRepo := repository.NewGormSessionRepository()
	feedbackRepo := repository.NewGormFeedbackRepository()
	assignmentRepo := repository.NewGormAssignmentRepository()
	tokenRepo := repository.NewGormTokenRepository()

	mailer := service.NewMailer(&config.Cfg)
	engine := scoring.NewEngine(rand.NewSource(time.Now().UnixNano()), nil)

	authService := service.NewAuthService(db, userRepo, profileRepo, tokenRepo, mailer, &config.Cfg)
	agentService := service.NewAgentService(db, agentRepo)
	sessionService := service.NewSessionService(db, sessionRepo, agentRepo, profileRepo)
	interactionService := service.NewInteractionService(db, sessionRepo, feedbackRepo, engine)
	reportService := service.NewReportService(db, sessionRepo, profileRepo)
	userService := service.NewUserService(db, userRepo, profileRepo, assignmentRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	agentHandler := handlers.NewAgentHandler(agentService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)
	interactionHandler := handlers.NewInteractionHandler(interactionService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/registro", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/perfil", authHandler.GetProfile)
			r.Put("/auth/perfil", authHandler.UpdateProfile)
			r.Post("/auth/cambiar-password", authHandler.ChangePassword)

			r.Route("/agentes", func(r chi.Router) {
				r.Get("/", agentHandler.GetAgents)
				r.Get("/{agent_id}", agentHandler.GetAgent)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(model.RoleAdmin))
					r.Post("/", agentHandler.PostAgent)
					r.Put("/{agent_id}", agentHandler.PutAgent)
				})
			})

			r.Route("/sesiones", func(r chi.Router) {
				r.Get("/", sessionHandler.GetSessions)
				r.Get("/{session_id}", sessionHandler.GetSession)
				r.Patch("/{session_id}", sessionHandler.PatchSession)
				r.Post("/{session_id}/finalizar", sessionHandler.PostFinalize)
				r.Delete("/{session_id}", sessionHandler.DeleteSession)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(model.RoleStudent))
					r.Post("/", sessionHandler.PostSession)
				})
			})

			r.Post("/interaccion", interactionHandler.PostInteraction)
			r.Get("/retroalimentaciones", interactionHandler.GetFeedback)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(model.RoleStudent))
				r.Get("/estadisticas", reportHandler.GetStatistics)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(model.RoleTeacher, model.RoleAdmin))
				r.Get("/reportes/estudiantes", reportHandler.GetStudentReports)

				r.Route("/estudiantes", func(r chi.Router) {
					r.Get("/", userHandler.GetStudents)
					r.Get("/{student_id}", userHandler.GetStudent)
					r.Put("/{student_id}", userHandler.PutStudent)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(model.RoleAdmin))

				r.Route("/docentes", func(r chi.Router) {
					r.Get("/", userHandler.GetTeachers)
					r.Get("/{teacher_id}", userHandler.GetTeacher)
					r.Put("/{teacher_id}", userHandler.PutTeacher)
				})

				r.Route("/asignaciones", func(r chi.Router) {
					r.Post("/", userHandler.PostAssignment)
					r.Delete("/{teacher_id}/{student_id}", userHandler.DeleteAssignment)
				})
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
