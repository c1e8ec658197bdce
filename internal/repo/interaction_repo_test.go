package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:interactions_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seed(t *testing.T, db *gorm.DB, persona domain.Persona, score int, fallback bool, at time.Time) {
	t.Helper()
	rec := &domain.Interaction{
		ID:           uuid.NewString(),
		Persona:      persona,
		QualityScore: score,
		Fallback:     fallback,
		LatencyMS:    120,
		CreatedAt:    at,
	}
	if err := CreateInteraction(context.Background(), db, rec); err != nil {
		t.Fatalf("seed interaction: %v", err)
	}
}

func TestStats_Empty(t *testing.T) {
	db := newTestDB(t)

	got, err := Stats(context.Background(), db, time.Time{})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if got.Total != 0 || got.Fallbacks != 0 || got.AverageScore != 0 {
		t.Fatalf("expected zero aggregates, got %+v", got)
	}
}

func TestStats_Aggregates(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	seed(t, db, domain.PersonaKarma, 8, false, now)
	seed(t, db, domain.PersonaKarma, 6, false, now)
	seed(t, db, domain.PersonaDharma, 7, true, now)

	got, err := Stats(context.Background(), db, time.Time{})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.Fallbacks != 1 {
		t.Errorf("Fallbacks = %d, want 1", got.Fallbacks)
	}
	if got.AverageScore != 7 {
		t.Errorf("AverageScore = %v, want 7", got.AverageScore)
	}
	if len(got.ByPersona) != 2 || got.ByPersona[0].Persona != domain.PersonaKarma || got.ByPersona[0].Count != 2 {
		t.Errorf("ByPersona = %+v", got.ByPersona)
	}
}

func TestStats_SinceCutoff(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	seed(t, db, domain.PersonaAtma, 9, false, now.Add(-48*time.Hour))
	seed(t, db, domain.PersonaAtma, 5, false, now)

	got, err := Stats(context.Background(), db, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if got.Total != 1 {
		t.Errorf("Total = %d, want 1 (old row excluded)", got.Total)
	}
	if got.AverageScore != 5 {
		t.Errorf("AverageScore = %v, want 5", got.AverageScore)
	}
}
