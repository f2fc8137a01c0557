package validator

import (
	"fmt"

	"github.com/secmap/capmap-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	supportedThreshold    = 70
	questionableThreshold = 40

	adjustedAgreementPenalty = 20
	adjustedAgreementFloor   = 30
	mismatchPenalty          = 40
	mismatchFloor            = 10
	domainPenalty            = 20

	maxPrimaryGaps = 3
)

// Alignment reconciles the claimed, effective, and detected roles into a
// confidence-scored verdict.
type Alignment struct {
	Status          models.ValidationStatus
	Confidence      int
	Gaps            []string
	Strengths       []string
	Recommendations []string
}

// AlignmentScorer produces the final verdict for a validation request.
type AlignmentScorer interface {
	Score(claimed, effective, detected models.CapabilityRole, detectedConfidence int, domain DomainValidation) Alignment
}

type RoleAlignmentScorer struct {
	logger *zerolog.Logger
}

func NewAlignmentScorer(logger *zerolog.Logger) *RoleAlignmentScorer {
	return &RoleAlignmentScorer{logger: logger}
}

// Score compares the three roles in priority order. The domain adjustment
// penalty lands before the status thresholds are evaluated, so the status
// always reflects the final confidence value.
func (s *RoleAlignmentScorer) Score(claimed, effective, detected models.CapabilityRole, detectedConfidence int, domain DomainValidation) Alignment {
	var (
		alignment int
		gaps      []string
		strengths []string
	)

	switch {
	case claimed == detected:
		alignment = detectedConfidence
		strengths = append(strengths, fmt.Sprintf(
			"claimed role %q matches the independently detected capability", claimed))

	case effective == detected:
		alignment = floor(detectedConfidence-adjustedAgreementPenalty, adjustedAgreementFloor)
		gaps = append(gaps, fmt.Sprintf(
			"original claim %q is not what the description evidences", claimed))
		strengths = append(strengths, fmt.Sprintf(
			"adjusted role %q agrees with the detected capability", effective))

	default:
		alignment = floor(detectedConfidence-mismatchPenalty, mismatchFloor)
		gaps = append(gaps, fmt.Sprintf(
			"claimed role %q does not match the description, which reads as %q", claimed, detected))
	}

	if len(gaps) > maxPrimaryGaps {
		gaps = gaps[:maxPrimaryGaps]
	}

	recommendations := []string{recommendationFor(detected)}

	if domain.Adjusted {
		alignment = floor(alignment-domainPenalty, 0)
		gaps = append([]string{domain.Reasoning}, gaps...)
		recommendations = append([]string{fmt.Sprintf(
			"re-map this capability under %q, or supply evidence from a domain-appropriate tool", models.RoleFacilitates)},
			recommendations...)
	}

	result := Alignment{
		Status:          statusFor(alignment),
		Confidence:      alignment,
		Gaps:            gaps,
		Strengths:       strengths,
		Recommendations: recommendations,
	}

	s.logger.Debug().
		Str("claimed", string(claimed)).
		Str("effective", string(effective)).
		Str("detected", string(detected)).
		Int("confidence", result.Confidence).
		Str("status", string(result.Status)).
		Msg("alignment scored")

	return result
}

func statusFor(alignment int) models.ValidationStatus {
	switch {
	case alignment >= supportedThreshold:
		return models.StatusSupported
	case alignment >= questionableThreshold:
		return models.StatusQuestionable
	default:
		return models.StatusUnsupported
	}
}

func recommendationFor(role models.CapabilityRole) string {
	switch role {
	case models.RoleFull:
		return "document end-to-end coverage, including automation and review cadence, to support a full claim"
	case models.RolePartial:
		return "identify which portion of the safeguard is covered and name the complementary controls"
	case models.RoleGovernance:
		return "combine with technical implementation tools; governance alone does not operate the safeguard"
	case models.RoleValidates:
		return "pair with an implementation tool; validation evidence shows auditing of the safeguard, not operation"
	default:
		return "focus on how the tool enables or enhances other controls rather than claiming direct coverage"
	}
}

func floor(value, minimum int) int {
	if value < minimum {
		return minimum
	}
	return value
}
