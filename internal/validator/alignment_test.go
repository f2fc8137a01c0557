package validator

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/secmap/capmap-agent/internal/models"
)

func newTestScorer() *RoleAlignmentScorer {
	logger := zerolog.Nop()
	return NewAlignmentScorer(&logger)
}

func TestAlignmentScorer_Score(t *testing.T) {

	scorer := newTestScorer()

	tests := []struct {
		name           string
		claimed        models.CapabilityRole
		effective      models.CapabilityRole
		detected       models.CapabilityRole
		confidence     int
		domain         DomainValidation
		wantStatus     models.ValidationStatus
		wantConfidence int
	}{
		{
			name:           "claimed matches detected keeps confidence",
			claimed:        models.RoleFull,
			effective:      models.RoleFull,
			detected:       models.RoleFull,
			confidence:     100,
			wantStatus:     models.StatusSupported,
			wantConfidence: 100,
		},
		{
			name:           "claimed matches detected at questionable confidence",
			claimed:        models.RoleGovernance,
			effective:      models.RoleGovernance,
			detected:       models.RoleGovernance,
			confidence:     55,
			wantStatus:     models.StatusQuestionable,
			wantConfidence: 55,
		},
		{
			name:           "adjusted role agrees with detected",
			claimed:        models.RoleFull,
			effective:      models.RoleFacilitates,
			detected:       models.RoleFacilitates,
			confidence:     80,
			wantStatus:     models.StatusQuestionable,
			wantConfidence: 60,
		},
		{
			name:           "adjusted agreement respects the floor",
			claimed:        models.RoleFull,
			effective:      models.RoleFacilitates,
			detected:       models.RoleFacilitates,
			confidence:     20,
			wantStatus:     models.StatusUnsupported,
			wantConfidence: 30,
		},
		{
			name:           "full mismatch takes the larger penalty",
			claimed:        models.RoleFull,
			effective:      models.RoleFull,
			detected:       models.RoleValidates,
			confidence:     90,
			wantStatus:     models.StatusQuestionable,
			wantConfidence: 50,
		},
		{
			name:           "full mismatch respects the floor",
			claimed:        models.RoleFull,
			effective:      models.RoleFull,
			detected:       models.RoleValidates,
			confidence:     25,
			wantStatus:     models.StatusUnsupported,
			wantConfidence: 10,
		},
		{
			name:       "domain penalty applies before the status decision",
			claimed:    models.RoleFull,
			effective:  models.RoleFacilitates,
			detected:   models.RoleFacilitates,
			confidence: 100,
			domain: DomainValidation{
				Adjusted:  true,
				Reasoning: "tool type outside the required categories",
			},
			wantStatus:     models.StatusQuestionable,
			wantConfidence: 60,
		},
		{
			name:       "domain penalty can push the verdict to unsupported",
			claimed:    models.RoleFull,
			effective:  models.RoleFacilitates,
			detected:   models.RoleFacilitates,
			confidence: 20,
			domain: DomainValidation{
				Adjusted:  true,
				Reasoning: "tool type outside the required categories",
			},
			wantStatus:     models.StatusUnsupported,
			wantConfidence: 10,
		},
		{
			name:           "supported boundary at exactly seventy",
			claimed:        models.RoleValidates,
			effective:      models.RoleValidates,
			detected:       models.RoleValidates,
			confidence:     70,
			wantStatus:     models.StatusSupported,
			wantConfidence: 70,
		},
		{
			name:           "questionable boundary at exactly forty",
			claimed:        models.RoleValidates,
			effective:      models.RoleValidates,
			detected:       models.RoleValidates,
			confidence:     40,
			wantStatus:     models.StatusQuestionable,
			wantConfidence: 40,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := scorer.Score(test.claimed, test.effective, test.detected, test.confidence, test.domain)
			if got.Status != test.wantStatus {
				t.Errorf("Score() status = %q, want %q", got.Status, test.wantStatus)
			}
			if got.Confidence != test.wantConfidence {
				t.Errorf("Score() confidence = %d, want %d", got.Confidence, test.wantConfidence)
			}
			if got.Confidence < 0 || got.Confidence > 100 {
				t.Errorf("Score() confidence %d out of range", got.Confidence)
			}
		})
	}
}

func TestAlignmentScorer_DomainAdjustmentShapesFindings(t *testing.T) {
	scorer := newTestScorer()

	domain := DomainValidation{
		Adjusted:  true,
		Reasoning: "detected tool is outside the safeguard domain",
	}

	got := scorer.Score(models.RoleFull, models.RoleFacilitates, models.RoleFacilitates, 80, domain)

	if len(got.Gaps) == 0 || got.Gaps[0] != domain.Reasoning {
		t.Errorf("Gaps = %v, want domain reasoning first", got.Gaps)
	}
	if len(got.Recommendations) < 2 {
		t.Fatalf("Recommendations = %v, want domain remap plus role guidance", got.Recommendations)
	}
}

func TestAlignmentScorer_MatchProducesStrength(t *testing.T) {
	scorer := newTestScorer()

	got := scorer.Score(models.RoleFull, models.RoleFull, models.RoleFull, 90, DomainValidation{})

	if len(got.Strengths) != 1 {
		t.Errorf("Strengths = %v, want exactly one entry", got.Strengths)
	}
	if len(got.Gaps) != 0 {
		t.Errorf("Gaps = %v, want none on a clean match", got.Gaps)
	}
	if len(got.Recommendations) != 1 {
		t.Errorf("Recommendations = %v, want role guidance only", got.Recommendations)
	}
}
