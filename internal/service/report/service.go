// Package report generates and serves AI-scored nutrition reports. Scoring is
// delegated to an external insight provider; when the provider fails or the
// member logged nothing, a deterministic local result is persisted instead,
// so report generation itself never fails on provider trouble.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/config"
	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reportRepo interface {
	UpsertDaily(ctx context.Context, rep *domain.DailyReport) (*domain.DailyReport, error)
	GetDaily(ctx context.Context, memberID uuid.UUID, date time.Time) (*domain.DailyReport, error)
	UpsertWeekly(ctx context.Context, rep *domain.WeeklyReport) (*domain.WeeklyReport, error)
	GetWeekly(ctx context.Context, memberID uuid.UUID, startDate, endDate time.Time) (*domain.WeeklyReport, error)
}

type memberRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
}

type targetRepo interface {
	GetDaily(ctx context.Context, memberID uuid.UUID, targetDate time.Time) (*domain.DailyNutrientTarget, error)
}

type mealReader interface {
	MealsForMember(ctx context.Context, memberID uuid.UUID, mealDate time.Time) ([]domain.MealAggregate, error)
	MealsForMemberBetween(ctx context.Context, memberID uuid.UUID, start, end time.Time) ([]domain.MealAggregate, error)
}

type mealLogRepo interface {
	DailyTotal(ctx context.Context, memberID uuid.UUID, mealDate time.Time) (domain.Nutrition, error)
}

// InsightProvider scores assembled intake data. Exported so the wiring layer
// can choose between the HTTP client and the local stub.
type InsightProvider interface {
	ScoreDaily(ctx context.Context, req provider.DailyScoringRequest) (*provider.DailyInsight, error)
	ScoreWeekly(ctx context.Context, req provider.WeeklyScoringRequest) (*provider.WeeklyInsight, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements report generation and retrieval.
type Service struct {
	log      *slog.Logger
	reports  reportRepo
	members  memberRepo
	targets  targetRepo
	meals    mealReader
	mealLogs mealLogRepo
	insight  InsightProvider
	cfg      config.ReportConfig
}

// NewService creates a new report service.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	members memberRepo,
	targets targetRepo,
	meals mealReader,
	mealLogs mealLogRepo,
	insight InsightProvider,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "report"),
		reports:  reports,
		members:  members,
		targets:  targets,
		meals:    meals,
		mealLogs: mealLogs,
		insight:  insight,
		cfg:      cfg,
	}
}

func memberAttributes(m *domain.Member) provider.MemberAttributes {
	return provider.MemberAttributes{
		Gender:   m.Gender.String(),
		HeightCm: m.HeightCm,
		WeightKg: m.WeightKg,
	}
}
