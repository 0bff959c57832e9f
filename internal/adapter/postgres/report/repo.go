// Package report implements persistence for generated daily and weekly
// nutrition reports. Reports are upserted: at most one row exists per key,
// regeneration overwrites the previous snapshot.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bablog/bablog-backend/internal/adapter/postgres"
	"github.com/bablog/bablog-backend/internal/domain"
)

const upsertDailySQL = `
INSERT INTO daily_reports (id, member_id, report_date, score, grade, summary,
                           highlights, improvements, recommendations, nutrient_scores, risk_flags,
                           metrics, report_version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
ON CONFLICT (member_id, report_date) DO UPDATE
SET score           = EXCLUDED.score,
    grade           = EXCLUDED.grade,
    summary         = EXCLUDED.summary,
    highlights      = EXCLUDED.highlights,
    improvements    = EXCLUDED.improvements,
    recommendations = EXCLUDED.recommendations,
    nutrient_scores = EXCLUDED.nutrient_scores,
    risk_flags      = EXCLUDED.risk_flags,
    metrics         = EXCLUDED.metrics,
    report_version  = EXCLUDED.report_version,
    updated_at      = now()
RETURNING id, created_at, updated_at`

const getDailySQL = `
SELECT id, member_id, report_date, score, grade, summary,
       highlights, improvements, recommendations, nutrient_scores, risk_flags,
       metrics, report_version, created_at, updated_at
FROM daily_reports
WHERE member_id = $1 AND report_date = $2`

const upsertWeeklySQL = `
INSERT INTO weekly_reports (id, member_id, start_date, end_date, score, consistency_score, grade,
                            summary, pattern_summary, best_day, best_reason, worst_day, worst_reason,
                            next_week_focus, highlights, improvements, recommendations, trend, risk_flags,
                            report_version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, now(), now())
ON CONFLICT (member_id, start_date, end_date) DO UPDATE
SET score             = EXCLUDED.score,
    consistency_score = EXCLUDED.consistency_score,
    grade             = EXCLUDED.grade,
    summary           = EXCLUDED.summary,
    pattern_summary   = EXCLUDED.pattern_summary,
    best_day          = EXCLUDED.best_day,
    best_reason       = EXCLUDED.best_reason,
    worst_day         = EXCLUDED.worst_day,
    worst_reason      = EXCLUDED.worst_reason,
    next_week_focus   = EXCLUDED.next_week_focus,
    highlights        = EXCLUDED.highlights,
    improvements      = EXCLUDED.improvements,
    recommendations   = EXCLUDED.recommendations,
    trend             = EXCLUDED.trend,
    risk_flags        = EXCLUDED.risk_flags,
    report_version    = EXCLUDED.report_version,
    updated_at        = now()
RETURNING id, created_at, updated_at`

const getWeeklySQL = `
SELECT id, member_id, start_date, end_date, score, consistency_score, grade,
       summary, pattern_summary, best_day, best_reason, worst_day, worst_reason,
       next_week_focus, highlights, improvements, recommendations, trend, risk_flags,
       report_version, created_at, updated_at
FROM weekly_reports
WHERE member_id = $1 AND start_date = $2 AND end_date = $3`

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new report repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// UpsertDaily writes the daily report, superseding any prior report for the
// same (member, date) key.
func (r *Repo) UpsertDaily(ctx context.Context, rep *domain.DailyReport) (*domain.DailyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, upsertDailySQL,
		rep.ID, rep.MemberID, rep.ReportDate, rep.Score, rep.Grade, rep.Summary,
		rep.Highlights, rep.Improvements, rep.Recommendations, rep.NutrientScores, rep.RiskFlags,
		rep.Metrics, rep.ReportVersion,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "daily_report", rep.MemberID)
	}
	return rep, nil
}

// GetDaily returns the daily report for (member, date).
func (r *Repo) GetDaily(ctx context.Context, memberID uuid.UUID, date time.Time) (*domain.DailyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rep domain.DailyReport
	err := q.QueryRow(ctx, getDailySQL, memberID, date).Scan(
		&rep.ID, &rep.MemberID, &rep.ReportDate, &rep.Score, &rep.Grade, &rep.Summary,
		&rep.Highlights, &rep.Improvements, &rep.Recommendations, &rep.NutrientScores, &rep.RiskFlags,
		&rep.Metrics, &rep.ReportVersion, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "daily_report", memberID)
	}
	return &rep, nil
}

// UpsertWeekly writes the weekly report, superseding any prior report for the
// same (member, startDate, endDate) key.
func (r *Repo) UpsertWeekly(ctx context.Context, rep *domain.WeeklyReport) (*domain.WeeklyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, upsertWeeklySQL,
		rep.ID, rep.MemberID, rep.StartDate, rep.EndDate, rep.Score, rep.ConsistencyScore, rep.Grade,
		rep.Summary, rep.PatternSummary, rep.BestDay, rep.BestReason, rep.WorstDay, rep.WorstReason,
		rep.NextWeekFocus, rep.Highlights, rep.Improvements, rep.Recommendations, rep.Trend, rep.RiskFlags,
		rep.ReportVersion,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weekly_report", rep.MemberID)
	}
	return rep, nil
}

// GetWeekly returns the weekly report for (member, startDate, endDate).
func (r *Repo) GetWeekly(ctx context.Context, memberID uuid.UUID, startDate, endDate time.Time) (*domain.WeeklyReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rep domain.WeeklyReport
	err := q.QueryRow(ctx, getWeeklySQL, memberID, startDate, endDate).Scan(
		&rep.ID, &rep.MemberID, &rep.StartDate, &rep.EndDate, &rep.Score, &rep.ConsistencyScore, &rep.Grade,
		&rep.Summary, &rep.PatternSummary, &rep.BestDay, &rep.BestReason, &rep.WorstDay, &rep.WorstReason,
		&rep.NextWeekFocus, &rep.Highlights, &rep.Improvements, &rep.Recommendations, &rep.Trend, &rep.RiskFlags,
		&rep.ReportVersion, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "weekly_report", memberID)
	}
	return &rep, nil
}
