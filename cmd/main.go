package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/database"
	"github.com/lshigami/examportal/internal/logger"
	"github.com/lshigami/examportal/internal/repository"
	"github.com/lshigami/examportal/internal/service"
	"github.com/lshigami/examportal/internal/ui"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const appID = "io.examportal.app"

func main() {
	logger.Init()

	// fyne must own the main goroutine, so the app is created here and handed to fx.
	fyneApp := app.NewWithID(appID)

	var portal *ui.Portal
	fxApp := fx.New(
		fx.Provide(
			config.NewConfig,
			NewDatabase,
			func() fyne.App { return fyneApp },
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewExamService,
			service.NewSession,
		),

		fx.Provide(ui.NewPortal),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(InitializeStore),
		fx.Populate(&portal),
	)

	if err := fxApp.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		ui.ShowFatal(fyneApp, "Online Exam Portal", err)
		os.Exit(1)
	}

	portal.ShowAndRun()

	log.Info().Msg("Application shutting down...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fxApp.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

// NewDatabase opens the store and closes it when the application stops.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrStoreUnavailable, err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return database.Close(db)
		},
	})
	return db, nil
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func InitializeStore(db *gorm.DB) error {
	if err := database.Initialize(db); err != nil {
		return fmt.Errorf("%w: %w", service.ErrStoreUnavailable, err)
	}
	return nil
}
