package main

import (
	"golang.org/x/sync/errgroup"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/config"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coaching"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/note"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/strength"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database/repository/noterepo"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database/repository/strengthrepo"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database/repository/turnrepo"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/inference"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/logger"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/metrics"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/handlers/coachinghandler"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/handlers/notehandler"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/handlers/strengthhandler"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1/coach"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1/notes"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/interfaces/httpserver/routes/v1/strengths"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.GetLogger()
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log, err := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		bootLog := logger.GetLogger()
		bootLog.Fatal().Err(err).Msg("configure logger")
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
	}

	m := metrics.New()

	exchangeRepo := turnrepo.NewExchangeGormRepository(db)
	strengthRepo := strengthrepo.NewStrengthGormRepository(db)
	noteRepo := noterepo.NewNoteGormRepository(db)

	strengthService := strength.NewService(strengthRepo)
	noteService := note.NewService(noteRepo)

	completion := inference.NewInstrumentedClient(
		inference.NewCompletionClient(cfg, log),
		cfg.CoachProvider,
		m,
	)
	coachingService := coaching.NewService(exchangeRepo, strengthService, completion, coaching.Options{
		HistoryWindow: cfg.HistoryWindow,
		TopStrengths:  cfg.TopStrengths,
	}, log)

	v1Route := v1.NewV1Route(
		coach.NewCoachRoute(coachinghandler.NewCoachingHandler(coachingService, m, log)),
		strengths.NewStrengthsRoute(strengthhandler.NewStrengthHandler(strengthService, log)),
		notes.NewNotesRoute(notehandler.NewNoteHandler(noteService, log)),
	)
	server := httpserver.NewHTTPServer(v1Route, cfg, m, log)

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Int("metrics_port", cfg.MetricsPort).
		Str("provider", cfg.CoachProvider).
		Msg("starting coaching server")

	var eg errgroup.Group
	eg.Go(func() error {
		return m.Serve(cfg.MetricsPort)
	})
	eg.Go(func() error {
		return server.Run()
	})
	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
