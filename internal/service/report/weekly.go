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
// 2. GenerateWeekly / GetWeekly
// ---------------------------------------------------------------------------

// GenerateWeekly scores the Monday-to-Sunday week containing anchor and
// persists the result, replacing any earlier report for the same period. The
// provider's best/worst day answers are kept only when they parse and fall
// inside the week; otherwise they are stored as unset. Provider failures
// degrade to a fallback result, never an error.
func (s *Service) GenerateWeekly(ctx context.Context, anchor time.Time) (*domain.WeeklyReport, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if anchor.IsZero() {
		return nil, domain.NewValidationError("date", "is required")
	}

	start := weekStart(anchor)
	end := weekEnd(start)

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	all, err := s.meals.MealsForMemberBetween(ctx, memberID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	byDate := make(map[string][]domain.MealAggregate)
	for _, agg := range all {
		key := formatDate(agg.Meal.MealDate)
		byDate[key] = append(byDate[key], agg)
	}

	var dailyMetrics []provider.DailyMetrics
	anyLogged := false
	for _, day := range datesBetween(start, end) {
		aggregates := byDate[formatDate(day)]

		target := domain.ZeroNutrition()
		dailyTarget, err := s.targets.GetDaily(ctx, memberID, day)
		switch {
		case err == nil:
			target = dailyTarget.Target
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get daily target: %w", err)
		}

		actual, err := s.mealLogs.DailyTotal(ctx, memberID, day)
		if err != nil {
			return nil, fmt.Errorf("sum daily log for %s: %w", formatDate(day), err)
		}
		if !actual.IsZero() {
			anyLogged = true
		}
		dailyMetrics = append(dailyMetrics, s.dailyMetrics(formatDate(day), actual, aggregates, target))
	}

	var insight *provider.WeeklyInsight
	if !anyLogged {
		insight = noDataWeekly()
	} else {
		req := provider.WeeklyScoringRequest{
			Type: "weekly",
			Period: provider.Period{
				StartDate: formatDate(start),
				EndDate:   formatDate(end),
			},
			Member:       memberAttributes(member),
			DailyMetrics: dailyMetrics,
		}
		insight, err = s.insight.ScoreWeekly(ctx, req)
		if err != nil {
			s.log.Warn("weekly scoring failed, using fallback",
				"member_id", memberID,
				"start", formatDate(start),
				"error", err,
			)
			insight = fallbackWeekly()
		}
	}

	rep := &domain.WeeklyReport{
		MemberID:         memberID,
		StartDate:        start,
		EndDate:          end,
		Score:            insight.Score,
		ConsistencyScore: insight.ConsistencyScore,
		Grade:            insight.Grade,
		Summary:          insight.Summary,
		PatternSummary:   insight.PatternSummary,
		BestDay:          parseDayInWindow(insight.BestDay, start, end),
		BestReason:       insight.BestReason,
		WorstDay:         parseDayInWindow(insight.WorstDay, start, end),
		WorstReason:      insight.WorstReason,
		NextWeekFocus:    insight.NextWeekFocus,
		Highlights:       listJSON(insight.Highlights),
		Improvements:     listJSON(insight.Improvements),
		Recommendations:  listJSON(insight.Recommendations),
		Trend:            anyMapJSON(insight.Trend),
		RiskFlags:        listJSON(insight.RiskFlags),
		ReportVersion:    domain.ReportVersion,
	}
	saved, err := s.reports.UpsertWeekly(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("save weekly report: %w", err)
	}

	s.log.Info("weekly report generated",
		"member_id", memberID,
		"start", formatDate(start),
		"end", formatDate(end),
		"score", saved.Score,
	)
	return saved, nil
}

// GetWeekly returns the stored report for the week containing anchor,
// ErrNotFound when none was generated yet.
func (s *Service) GetWeekly(ctx context.Context, anchor time.Time) (*domain.WeeklyReport, error) {
	memberID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	start := weekStart(anchor)
	return s.reports.GetWeekly(ctx, memberID, start, weekEnd(start))
}
