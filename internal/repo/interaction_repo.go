// Package repo implements the persistence layer for interaction telemetry,
// backed by GORM. This file provides the write path plus the aggregate
// queries behind the administrative stats endpoint. Each function is
// context-aware and safe to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// CreateInteraction inserts one telemetry row. The row carries score
// telemetry only; no conversation content is ever written.
func CreateInteraction(ctx context.Context, db *gorm.DB, rec *domain.Interaction) error {
	return db.WithContext(ctx).Create(rec).Error
}

// InteractionStats is the aggregate view served to administrators.
type InteractionStats struct {
	Total        int64          `json:"total"`
	Fallbacks    int64          `json:"fallbacks"`
	AverageScore float64        `json:"average_score"`
	ByPersona    []PersonaCount `json:"by_persona"`
}

// PersonaCount is one per-persona row of the aggregate view.
type PersonaCount struct {
	Persona domain.Persona `json:"persona"`
	Count   int64          `json:"count"`
}

// StatsStore binds Stats to a database handle so transport code can depend on
// a narrow interface instead of *gorm.DB.
type StatsStore struct {
	DB *gorm.DB
}

// Stats aggregates interactions recorded since the cutoff.
func (s StatsStore) Stats(ctx context.Context, since time.Time) (InteractionStats, error) {
	return Stats(ctx, s.DB, since)
}

// Stats aggregates interactions recorded since the given cutoff. A zero
// cutoff aggregates everything. When no rows match, all aggregates are zero.
func Stats(ctx context.Context, db *gorm.DB, since time.Time) (InteractionStats, error) {
	var out InteractionStats

	q := db.WithContext(ctx).Model(&domain.Interaction{})
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}

	if err := q.Session(&gorm.Session{}).Count(&out.Total).Error; err != nil {
		return InteractionStats{}, err
	}
	if out.Total == 0 {
		return out, nil
	}

	if err := q.Session(&gorm.Session{}).Where("fallback = ?", true).Count(&out.Fallbacks).Error; err != nil {
		return InteractionStats{}, err
	}

	// AVG() comes back as float; scan into a nullable shim to survive the
	// no-rows case on some drivers.
	var row struct {
		Avg *float64
	}
	if err := q.Session(&gorm.Session{}).Select("AVG(quality_score) AS avg").Scan(&row).Error; err != nil {
		return InteractionStats{}, err
	}
	if row.Avg != nil {
		out.AverageScore = *row.Avg
	}

	if err := q.Session(&gorm.Session{}).
		Select("persona, COUNT(*) AS count").
		Group("persona").
		Order("count DESC").
		Scan(&out.ByPersona).Error; err != nil {
		return InteractionStats{}, err
	}

	return out, nil
}
