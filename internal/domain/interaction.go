package domain

import "time"

// Interaction is the persisted telemetry row recorded for every freshly
// generated chat response (cache replays are not re-recorded). Only score
// telemetry is stored; conversation content never reaches the database.
//
// Fields:
//   - ID: the response ID (UUID, char(36)).
//   - Persona: persona that served the request; indexed for aggregation.
//   - QualityScore: parsed quality score carried by the response.
//   - Fallback: whether the response was a provider-failure fallback.
//   - LatencyMS: wall-clock provider latency in milliseconds.
//   - CreatedAt: insertion timestamp managed by GORM.
type Interaction struct {
	ID           string    `json:"id" gorm:"type:char(36);primaryKey"`
	Persona      Persona   `json:"persona" gorm:"type:varchar(16);not null;index:idx_interactions_persona"`
	QualityScore int       `json:"quality_score" gorm:"not null"`
	Fallback     bool      `json:"fallback" gorm:"not null"`
	LatencyMS    int64     `json:"latency_ms" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Interaction.
func (Interaction) TableName() string { return "interactions" }
