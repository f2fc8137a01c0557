package executor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/secmap/capmap-agent/internal/classifier"
	"github.com/secmap/capmap-agent/internal/models"
)

// AnalyzeExecutor runs the detection-only pipeline: no claimed role, no
// domain validation, no alignment.
type AnalyzeExecutor struct {
	store      Store
	detector   ToolTypeDetector
	classifier CapabilityClassifier
	assessor   QualityAssessor
	logger     *zerolog.Logger
}

func NewAnalyzeExecutor(
	store Store,
	detector ToolTypeDetector,
	capClassifier CapabilityClassifier,
	assessor QualityAssessor,
	logger *zerolog.Logger,
) *AnalyzeExecutor {
	return &AnalyzeExecutor{
		store:      store,
		detector:   detector,
		classifier: capClassifier,
		assessor:   assessor,
		logger:     logger,
	}
}

func (e *AnalyzeExecutor) Execute(ctx context.Context, mc models.MappingContext) (models.AnalysisResult, error) {
	e.logger.Info().
		Str("requestID", mc.RequestID).
		Str("safeguard", mc.SafeguardID).
		Msg("starting analysis")

	safeguard, err := e.store.GetSafeguard(ctx, mc.SafeguardID)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("safeguard %s: %w", mc.SafeguardID, err)
	}

	toolType := e.detector.Detect(mc.Text, mc.SafeguardID)
	detection := e.classifier.Classify(mc.Text, *safeguard)
	scores := e.classifier.Scores(mc.Text, *safeguard)
	quality := e.assessor.Assess(mc.Text, *safeguard, detection.Role)

	result := models.AnalysisResult{
		ID:               mc.RequestID,
		SafeguardID:      mc.SafeguardID,
		Role:             detection.Role,
		RoleBreakdown:    breakdown(detection, scores),
		DetectedToolType: toolType,
		Confidence:       quality.Confidence,
		Evidence:         quality.Evidence,
		ToolCapability:   describeCapability(toolType, detection, *safeguard),
		RecommendedUse:   recommendedUse(detection.Role),
	}

	e.logger.Info().
		Str("requestID", mc.RequestID).
		Str("role", string(result.Role)).
		Str("toolType", toolType).
		Int("confidence", result.Confidence).
		Msg("analysis complete")

	return result, nil
}

// breakdown flags every role whose phrase group cleared the classification
// threshold, as an annotation alongside the single-valued verdict.
func breakdown(detection classifier.RoleDetection, scores classifier.GroupScores) models.RoleBreakdown {
	b := models.RoleBreakdown{
		Full:        scores.Implementation > 0.5,
		Partial:     scores.Implementation > 0.2,
		Governance:  scores.Governance > 0.2,
		Facilitates: scores.Facilitation > 0.2,
		Validates:   scores.Validation > 0.2,
	}

	switch detection.Role {
	case models.RoleFull:
		b.Full = true
	case models.RolePartial:
		b.Partial = true
	case models.RoleGovernance:
		b.Governance = true
	case models.RoleValidates:
		b.Validates = true
	case models.RoleFacilitates:
		b.Facilitates = true
	}

	return b
}

func describeCapability(toolType string, detection classifier.RoleDetection, safeguard models.Safeguard) string {
	category := toolType
	if category == models.ToolTypeUnknown {
		category = "tool of unrecognized category"
	} else {
		category += " tool"
	}

	if !detection.Signal {
		return fmt.Sprintf("A %s with no clear capability language for safeguard %s (%s).",
			category, safeguard.ID, safeguard.Title)
	}

	return fmt.Sprintf("A %s whose description supports the %q role for safeguard %s (%s).",
		category, detection.Role, safeguard.ID, safeguard.Title)
}

func recommendedUse(role models.CapabilityRole) string {
	switch role {
	case models.RoleFull:
		return "Map as the primary implementation of this safeguard."
	case models.RolePartial:
		return "Map as a partial implementation and pair with complementary controls."
	case models.RoleGovernance:
		return "Use for policy and oversight alongside a technical implementation tool."
	case models.RoleValidates:
		return "Use to audit and evidence the safeguard, not to operate it."
	default:
		return "Use to enable or enrich other tools that implement this safeguard."
	}
}
