package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportsessions/config"
	"sportsessions/internal/adapters/auth"
	"sportsessions/internal/adapters/email"
	httpdelivery "sportsessions/internal/delivery/http"
	"sportsessions/internal/delivery/http/controllers"
	"sportsessions/internal/domain"
	"sportsessions/internal/repository/memory"
	"sportsessions/internal/repository/postgres"
	"sportsessions/internal/services"
)

const (
	dbConnectTimeout = 5 * time.Second
	shutdownTimeout  = 15 * time.Second
)

type repositories struct {
	sports      domain.SportRepository
	sessions    domain.SessionRepository
	memberships domain.MembershipRepository
	users       domain.UserRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)
	logger.Info("configuration loaded", slog.String("env", cfg.Environment), slog.String("store", cfg.Store))

	repos, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mail.AWSRegion,
			AccessKeyID:     cfg.Mail.AWSAccessKeyID,
			SecretAccessKey: cfg.Mail.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to initialize mailer", slog.Any("error", err))
		os.Exit(1)
	}

	timeout := cfg.ContextTimeout
	notifier := services.NewEmailService(repos.users, mailer, email.NewTemplateRenderer(), logger)
	userService := services.NewUserService(repos.users, timeout)
	sportService := services.NewSportService(repos.sports, logger, timeout)
	sessionService := services.NewSessionService(repos.sessions, logger, timeout)
	availabilityService := services.NewAvailabilityService(repos.sessions, timeout)
	membershipService := services.NewMembershipService(repos.sessions, repos.memberships, notifier, logger, timeout)
	reportService := services.NewReportService(repos.sessions, timeout)
	logger.Info("services initialized")

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:         logger,
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		Users:          userService,
		AllowedOrigins: cfg.AllowedOrigins,
		Sports:         controllers.NewSportController(logger, sportService),
		Session:        controllers.NewSessionController(logger, sessionService),
		Player:         controllers.NewPlayerController(logger, availabilityService, membershipService),
		Reports:        controllers.NewReportController(logger, reportService),
	})

	server := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			closeStore()
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		}
	}
	logger.Info("server stopped")
}

// openStore returns the repositories for the configured backend and a func releasing it.
func openStore(cfg *config.Config, logger *slog.Logger) (repositories, func(), error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("using the in-memory store, data is lost on restart")
		st := memory.NewStore()
		return repositories{
			sports:      st.Sports(),
			sessions:    st.Sessions(),
			memberships: st.Memberships(),
			users:       st.Users(),
		}, func() {}, nil
	}

	db, err := postgres.Connect(cfg.DBUrl, dbConnectTimeout)
	if err != nil {
		return repositories{}, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, err
	}
	logger.Info("database connection established")

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}
	return repositories{
		sports:      postgres.NewSportRepository(db),
		sessions:    postgres.NewSessionRepository(db),
		memberships: postgres.NewMembershipRepository(db),
		users:       postgres.NewUserRepository(db),
	}, closeDB, nil
}
