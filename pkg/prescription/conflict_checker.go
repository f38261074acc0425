package prescription

import (
	"MediAssist-Backend/domain"
	"MediAssist-Backend/pkg/openfda"
	"context"
	"fmt"
	"log"
	"strings"
)

// maxFDALookups caps the number of openFDA queries per check to stay inside
// the public rate limits.
const maxFDALookups = 3

type (
	ConflictChecker interface {
		CheckDrugConflicts(ctx context.Context, medicineNames []string) []domain.ConflictRecord
	}

	conflictChecker struct {
		fda openfda.Client
	}
)

func NewConflictChecker(fda openfda.Client) ConflictChecker {
	return &conflictChecker{fda: fda}
}

// CheckDrugConflicts runs every unordered pair of names against the local
// interaction table, then asks openFDA for supplementary interaction text for
// at most the first three distinct names. External failures are logged and
// swallowed; the local results are always returned.
func (c *conflictChecker) CheckDrugConflicts(ctx context.Context, medicineNames []string) []domain.ConflictRecord {
	conflicts := []domain.ConflictRecord{}

	if len(medicineNames) == 0 {
		return conflicts
	}

	normalized := make([]string, 0, len(medicineNames))
	for _, name := range medicineNames {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(name)))
	}

	for i, med1 := range normalized {
		for _, med2 := range normalized[i+1:] {
			// One record per pair; the first direction that matches wins.
			if knownInteraction(med1, med2) {
				conflicts = append(conflicts, domain.ConflictRecord{
					Drug1:       med1,
					Drug2:       med2,
					Severity:    domain.ConflictSeverityHigh,
					Description: fmt.Sprintf("Known interaction between %s and %s", med1, med2),
					Source:      domain.ConflictSourceLocalDB,
				})
			} else if knownInteraction(med2, med1) {
				conflicts = append(conflicts, domain.ConflictRecord{
					Drug1:       med2,
					Drug2:       med1,
					Severity:    domain.ConflictSeverityHigh,
					Description: fmt.Sprintf("Known interaction between %s and %s", med2, med1),
					Source:      domain.ConflictSourceLocalDB,
				})
			}
		}
	}

	seen := make(map[string]bool)
	queried := 0
	for i, name := range medicineNames {
		if queried >= maxFDALookups {
			break
		}
		if seen[normalized[i]] {
			continue
		}
		seen[normalized[i]] = true
		queried++

		interactions, err := c.fda.LookupInteractions(ctx, name)
		if err != nil {
			log.Printf("openFDA lookup failed for %q: %v", name, err)
			continue
		}
		if interactions == "" {
			continue
		}

		// Truncate on runes so a multi-byte character is never split.
		description := interactions
		if runes := []rune(description); len(runes) > 200 {
			description = string(runes[:200])
		}

		conflicts = append(conflicts, domain.ConflictRecord{
			Drug1:       name,
			Drug2:       "multiple",
			Severity:    domain.ConflictSeverityMedium,
			Description: description,
			Source:      domain.ConflictSourceFDAAPI,
		})
	}

	return conflicts
}
