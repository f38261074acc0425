package prescription

import (
	"MediAssist-Backend/domain"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateVerificationScore_PerfectLegibilityNoIssues(t *testing.T) {
	medicines := []domain.MedicineMention{{Name: "paracetamol", Dosage: "500mg", Frequency: "twice daily"}}

	score := CalculateVerificationScore(medicines, nil, 1.0)

	assert.Equal(t, 100.0, score)
}

func TestCalculateVerificationScore_ConflictPenalty(t *testing.T) {
	medicines := []domain.MedicineMention{
		{Name: "aspirin"},
		{Name: "warfarin"},
	}
	conflicts := []domain.ConflictRecord{
		{Drug1: "aspirin", Drug2: "warfarin", Severity: domain.ConflictSeverityHigh},
	}

	score := CalculateVerificationScore(medicines, conflicts, 1.0)

	assert.Equal(t, 85.0, score)
}

func TestCalculateVerificationScore_NoMedicinesPenalty(t *testing.T) {
	score := CalculateVerificationScore(nil, nil, 0.7)

	assert.Equal(t, 40.0, score)
}

func TestCalculateVerificationScore_ClampsToZero(t *testing.T) {
	conflicts := make([]domain.ConflictRecord, 10)

	score := CalculateVerificationScore(nil, conflicts, 0.1)

	assert.Equal(t, 0.0, score)
}

func TestCalculateVerificationScore_RoundsToTwoDecimals(t *testing.T) {
	medicines := []domain.MedicineMention{{Name: "ibuprofen"}}

	score := CalculateVerificationScore(medicines, nil, 0.856)

	assert.Equal(t, 85.6, score)
}

func TestDeriveStatus_VerifiedAboveThreshold(t *testing.T) {
	assert.Equal(t, domain.PrescriptionStatusVerified, DeriveStatus(70.0, nil))
	assert.Equal(t, domain.PrescriptionStatusVerified, DeriveStatus(100.0, nil))
}

func TestDeriveStatus_FlaggedBelowThreshold(t *testing.T) {
	assert.Equal(t, domain.PrescriptionStatusFlagged, DeriveStatus(69.99, nil))
}

func TestDeriveStatus_FlaggedWithConflicts(t *testing.T) {
	conflicts := []domain.ConflictRecord{{Drug1: "aspirin", Drug2: "warfarin"}}

	assert.Equal(t, domain.PrescriptionStatusFlagged, DeriveStatus(95.0, conflicts))
}

func TestScoreAndStatus_RandomizedCombinations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		legibility := rng.Float64()
		medicines := make([]domain.MedicineMention, rng.Intn(6))
		conflicts := make([]domain.ConflictRecord, rng.Intn(8))

		score := CalculateVerificationScore(medicines, conflicts, legibility)

		expected := legibility * 100
		if len(medicines) == 0 {
			expected -= 30
		}
		expected -= float64(len(conflicts) * 15)
		expected = math.Max(0, math.Min(100, expected))
		expected = math.Round(expected*100) / 100
		assert.Equal(t, expected, score,
			"legibility=%f medicines=%d conflicts=%d", legibility, len(medicines), len(conflicts))

		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)

		status := DeriveStatus(score, conflicts)
		if score >= 70 && len(conflicts) == 0 {
			assert.Equal(t, domain.PrescriptionStatusVerified, status)
		} else {
			assert.Equal(t, domain.PrescriptionStatusFlagged, status)
		}
	}
}
