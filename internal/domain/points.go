package domain

// SessionMetrics is the telemetry submitted for a finished chat session.
// Values are transient; nothing here carries a persisted identity.
type SessionMetrics struct {
	Persona         Persona `json:"persona" binding:"required" example:"dharma"`
	DurationSeconds int     `json:"durationSeconds" binding:"min=0" example:"720"`
	MessageCount    int     `json:"messageCount" binding:"min=0" example:"12"`
}

// PointsBreakdown is the result of a points calculation. TotalPoints is a
// fixed baseline offset plus PointsEarned; there is no durable ledger behind
// it.
type PointsBreakdown struct {
	PointsEarned int            `json:"pointsEarned" example:"77"`
	TotalPoints  int            `json:"totalPoints" example:"1077"`
	Breakdown    map[string]int `json:"breakdown"`
}

// PointsCalculations exposes the static constants behind the points formula.
// QualityMultipliers and MilestoneBonuses are reserved for future use and are
// returned verbatim even though Calculate does not consult them.
type PointsCalculations struct {
	BasePointsPerQuestion int                `json:"base_points_per_question" example:"5"`
	TimePointsPerMinute   int                `json:"time_points_per_minute" example:"1"`
	QualityMultipliers    map[string]float64 `json:"quality_multipliers"`
	StreakBonus           int                `json:"streak_bonus" example:"5"`
	MilestoneBonuses      map[string]int     `json:"milestone_bonuses"`
}
