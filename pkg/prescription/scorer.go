package prescription

import (
	"MediAssist-Backend/domain"
	"math"
)

// CalculateVerificationScore derives a 0-100 confidence score for an analyzed
// prescription. Legibility sets the base, missing medicines cost 30 points and
// every detected conflict costs 15.
func CalculateVerificationScore(medicines []domain.MedicineMention, conflicts []domain.ConflictRecord, legibilityScore float64) float64 {
	baseScore := legibilityScore * 100

	if len(medicines) == 0 {
		baseScore -= 30
	}

	score := baseScore - float64(len(conflicts)*15)

	score = math.Max(0, math.Min(100, score))
	return math.Round(score*100) / 100
}

// DeriveStatus applies the creation-time invariant: a prescription is verified
// only when it scored at least 70 and carries no conflicts.
func DeriveStatus(score float64, conflicts []domain.ConflictRecord) string {
	if score >= 70 && len(conflicts) == 0 {
		return domain.PrescriptionStatusVerified
	}
	return domain.PrescriptionStatusFlagged
}
