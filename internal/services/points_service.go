// Package services – PointsService
//
// This file implements the gamification points engine. Calculate is a pure,
// total function over session telemetry; Constants exposes the static values
// behind the formula so clients can render explanations. There is no durable
// ledger: the accumulated total is a fixed baseline offset plus the points
// earned in the submitted session.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

const (
	// basePointsPerQuestion is awarded per message in the session.
	basePointsPerQuestion = 5
	// timePointsPerMinute is awarded per completed minute of session time.
	timePointsPerMinute = 1
	// durationPointsCap bounds the duration contribution.
	durationPointsCap = 30
	// streakBonus is a fixed bonus; real multi-session streaks are not
	// tracked (a known simplification, kept as-is).
	streakBonus = 5
	// totalPointsBaseline stands in for a persisted per-user ledger.
	totalPointsBaseline = 1000
)

// PointsService converts session telemetry into a points breakdown.
type PointsService struct{}

// Calculate applies the points formula to metrics:
//
//	messagePoints  = 5 * messageCount
//	durationPoints = min(durationSeconds/60, 30)   (completed minutes)
//	pointsEarned   = messagePoints + durationPoints + streakBonus(5)
//	totalPoints    = 1000 + pointsEarned
func (s *PointsService) Calculate(ctx context.Context, metrics domain.SessionMetrics) domain.PointsBreakdown {
	tr := otel.Tracer("services/PointsService")
	_, span := tr.Start(ctx, "Calculate",
		trace.WithAttributes(
			attribute.String("session.persona", string(metrics.Persona)),
			attribute.Int("session.duration_seconds", metrics.DurationSeconds),
			attribute.Int("session.message_count", metrics.MessageCount),
		),
	)
	defer span.End()

	messagePoints := basePointsPerQuestion * metrics.MessageCount

	durationPoints := metrics.DurationSeconds / 60
	if durationPoints > durationPointsCap {
		durationPoints = durationPointsCap
	}

	earned := messagePoints + durationPoints + streakBonus

	return domain.PointsBreakdown{
		PointsEarned: earned,
		TotalPoints:  totalPointsBaseline + earned,
		Breakdown: map[string]int{
			"base":     messagePoints,
			"duration": durationPoints,
			"streak":   streakBonus,
		},
	}
}

// Constants returns the static calculation constants. The quality multipliers
// and milestone bonuses are reserved for future use and are returned verbatim
// even though Calculate does not consult them.
func (s *PointsService) Constants() domain.PointsCalculations {
	return domain.PointsCalculations{
		BasePointsPerQuestion: basePointsPerQuestion,
		TimePointsPerMinute:   timePointsPerMinute,
		QualityMultipliers: map[string]float64{
			"low":    0.5,
			"medium": 1.0,
			"high":   1.5,
		},
		StreakBonus: streakBonus,
		MilestoneBonuses: map[string]int{
			"5_questions":  10,
			"10_questions": 20,
			"25_questions": 50,
		},
	}
}
