package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bablog/bablog-backend/internal/domain"
	"github.com/bablog/bablog-backend/internal/provider"
	"github.com/bablog/bablog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 1. GenerateDaily / GetDaily
// ---------------------------------------------------------------------------

// GenerateDaily scores one day of the calling member's meals and persists the
// result, replacing any earlier report for that date. A day with no logged
// food is persisted without consulting the provider; a provider failure
// degrades to a neutral fallback result. Provider errors never surface to
// the caller.
func (s *Service) GenerateDaily(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date", "is required")
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	aggregates, err := s.meals.MealsForMember(ctx, memberID, date)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}

	target := domain.ZeroNutrition()
	dailyTarget, err := s.targets.GetDaily(ctx, memberID, date)
	switch {
	case err == nil:
		target = dailyTarget.Target
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get daily target: %w", err)
	}

	actual, err := s.mealLogs.DailyTotal(ctx, memberID, date)
	if err != nil {
		return nil, fmt.Errorf("sum daily log: %w", err)
	}
	metrics := s.dailyMetrics("", actual, aggregates, target)

	var insight *provider.DailyInsight
	if actual.IsZero() {
		insight = noDataDaily()
	} else {
		req := provider.DailyScoringRequest{
			Type:    "daily",
			Date:    formatDate(date),
			Member:  memberAttributes(member),
			Actual:  nutritionValues(actual),
			Target:  nutritionValues(target),
			Metrics: metrics,
			Meals:   mealBreakdowns(aggregates),
		}
		insight, err = s.insight.ScoreDaily(ctx, req)
		if err != nil {
			s.log.Warn("daily scoring failed, using fallback",
				"member_id", memberID,
				"date", formatDate(date),
				"error", err,
			)
			insight = fallbackDaily()
		}
	}

	rep := &domain.DailyReport{
		MemberID:        memberID,
		ReportDate:      date,
		Score:           insight.Score,
		Grade:           insight.Grade,
		Summary:         insight.Summary,
		Highlights:      listJSON(insight.Highlights),
		Improvements:    listJSON(insight.Improvements),
		Recommendations: listJSON(insight.Recommendations),
		NutrientScores:  mapJSON(insight.NutrientScores),
		RiskFlags:       listJSON(insight.RiskFlags),
		Metrics:         toJSON(metrics, "{}"),
		ReportVersion:   domain.ReportVersion,
	}
	saved, err := s.reports.UpsertDaily(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("save daily report: %w", err)
	}

	s.log.Info("daily report generated",
		"member_id", memberID,
		"date", formatDate(date),
		"score", saved.Score,
	)
	return saved, nil
}

// GetDaily returns the stored report for a date, ErrNotFound when none was
// generated yet.
func (s *Service) GetDaily(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.reports.GetDaily(ctx, memberID, date)
}
