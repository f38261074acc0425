package prescription

import (
	"MediAssist-Backend/domain"
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type stubFDAClient struct {
	interactions map[string]string
	err          error
	calls        []string
}

func (s *stubFDAClient) LookupInteractions(_ context.Context, brandName string) (string, error) {
	s.calls = append(s.calls, brandName)
	if s.err != nil {
		return "", s.err
	}
	return s.interactions[strings.ToLower(brandName)], nil
}

func TestCheckDrugConflicts_EmptyInputSkipsLookups(t *testing.T) {
	fda := &stubFDAClient{}
	checker := NewConflictChecker(fda)

	conflicts := checker.CheckDrugConflicts(context.Background(), nil)

	assert.Empty(t, conflicts)
	assert.Empty(t, fda.calls)
}

func TestCheckDrugConflicts_KnownPairDetected(t *testing.T) {
	checker := NewConflictChecker(&stubFDAClient{})

	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"Aspirin", "Warfarin"})

	assert.Len(t, conflicts, 1)
	assert.Equal(t, "aspirin", conflicts[0].Drug1)
	assert.Equal(t, "warfarin", conflicts[0].Drug2)
	assert.Equal(t, domain.ConflictSeverityHigh, conflicts[0].Severity)
	assert.Equal(t, domain.ConflictSourceLocalDB, conflicts[0].Source)
}

func TestCheckDrugConflicts_DetectionIsOrderIndependent(t *testing.T) {
	checker := NewConflictChecker(&stubFDAClient{})

	forward := checker.CheckDrugConflicts(context.Background(), []string{"warfarin", "aspirin"})
	reverse := checker.CheckDrugConflicts(context.Background(), []string{"aspirin", "warfarin"})

	assert.Len(t, forward, 1)
	assert.Len(t, reverse, 1)
}

func TestCheckDrugConflicts_OneRecordPerPair(t *testing.T) {
	checker := NewConflictChecker(&stubFDAClient{})

	// aspirin interacts with both warfarin and ibuprofen, and warfarin
	// interacts with ibuprofen. Three pairs, three records.
	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"aspirin", "warfarin", "ibuprofen"})

	assert.Len(t, conflicts, 3)
}

func TestCheckDrugConflicts_UnknownDrugsProduceNoLocalConflicts(t *testing.T) {
	checker := NewConflictChecker(&stubFDAClient{})

	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"paracetamol", "cetirizine"})

	assert.Empty(t, conflicts)
}

func TestCheckDrugConflicts_FDAFindingsAppended(t *testing.T) {
	fda := &stubFDAClient{interactions: map[string]string{
		"paracetamol": "May increase the anticoagulant effect of warfarin with prolonged use.",
	}}
	checker := NewConflictChecker(fda)

	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"Paracetamol"})

	assert.Len(t, conflicts, 1)
	assert.Equal(t, "Paracetamol", conflicts[0].Drug1)
	assert.Equal(t, "multiple", conflicts[0].Drug2)
	assert.Equal(t, domain.ConflictSeverityMedium, conflicts[0].Severity)
	assert.Equal(t, domain.ConflictSourceFDAAPI, conflicts[0].Source)
}

func TestCheckDrugConflicts_FDATextTruncated(t *testing.T) {
	fda := &stubFDAClient{interactions: map[string]string{
		"paracetamol": strings.Repeat("x", 500),
	}}
	checker := NewConflictChecker(fda)

	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"paracetamol"})

	assert.Len(t, conflicts, 1)
	assert.Len(t, conflicts[0].Description, 200)
}

func TestCheckDrugConflicts_FDATextTruncatedOnRuneBoundary(t *testing.T) {
	fda := &stubFDAClient{interactions: map[string]string{
		"paracetamol": strings.Repeat("é", 300),
	}}
	checker := NewConflictChecker(fda)

	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"paracetamol"})

	assert.Len(t, conflicts, 1)
	assert.Equal(t, 200, utf8.RuneCountInString(conflicts[0].Description))
	assert.True(t, utf8.ValidString(conflicts[0].Description))
}

func TestCheckDrugConflicts_FDAFailureSwallowed(t *testing.T) {
	fda := &stubFDAClient{err: errors.New("timeout")}
	checker := NewConflictChecker(fda)

	conflicts := checker.CheckDrugConflicts(context.Background(), []string{"aspirin", "warfarin"})

	// The local finding survives the external failure.
	assert.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictSourceLocalDB, conflicts[0].Source)
}

func TestCheckDrugConflicts_AtMostThreeDistinctLookups(t *testing.T) {
	fda := &stubFDAClient{}
	checker := NewConflictChecker(fda)

	checker.CheckDrugConflicts(context.Background(), []string{"a", "A ", "b", "c", "d", "e"})

	assert.Equal(t, []string{"a", "b", "c"}, fda.calls)
}
