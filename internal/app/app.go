package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	foodrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/food"
	mealrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/meal"
	mealfoodrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/mealfood"
	meallogrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/meallog"
	memberrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/member"
	targetrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/nutrienttarget"
	reportrepo "github.com/bablog/bablog-backend/internal/adapter/postgres/report"
	"github.com/bablog/bablog-backend/internal/adapter/provider/nutriai"
	"github.com/bablog/bablog-backend/internal/config"
	mealsvc "github.com/bablog/bablog-backend/internal/service/meal"
	reportsvc "github.com/bablog/bablog-backend/internal/service/report"
)

// Services bundles the wired application services so entry points and future
// transports share one construction path.
type Services struct {
	Meal   *mealsvc.Service
	Report *reportsvc.Service
}

// Build wires repositories, providers and services onto the given pool.
func Build(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Services {
	var db postgres.DB = pool
	tx := postgres.NewTxManager(db)

	meals := mealrepo.New(db)
	mealFoods := mealfoodrepo.New(db)
	mealLogs := meallogrepo.New(db)
	foods := foodrepo.New(db)
	members := memberrepo.New(db)
	targets := targetrepo.New(db)
	reports := reportrepo.New(db)

	var insight reportsvc.InsightProvider
	if cfg.AI.UseStub {
		insight = nutriai.NewStub()
	} else {
		insight = nutriai.NewClient(cfg.AI, logger)
	}

	meal := mealsvc.NewService(logger, meals, mealFoods, mealLogs, foods, targets, tx)
	report := reportsvc.NewService(logger, reports, members, targets, meal, mealLogs, insight, cfg.Report)

	return &Services{Meal: meal, Report: report}
}

// Run is the application entry point. It loads configuration, initializes the
// logger and the database pool, wires the services and blocks until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	_ = Build(cfg, logger, pool)

	logger.Info("application ready", slog.Bool("ai_stub", cfg.AI.UseStub))

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
