package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/secmap/capmap-agent/internal/classifier"
	"github.com/secmap/capmap-agent/internal/models"
)

// primaryGapLimit bounds the gaps carried on a ValidationResult, not
// counting the domain gap a downgrade prepends.
const primaryGapLimit = 3

// ValidateExecutor runs the full validation pipeline: detect tool type,
// classify the role, assess quality, validate the domain, reconcile.
type ValidateExecutor struct {
	store      Store
	detector   ToolTypeDetector
	classifier CapabilityClassifier
	assessor   QualityAssessor
	domain     DomainValidator
	alignment  AlignmentScorer
	logger     *zerolog.Logger
}

func NewValidateExecutor(
	store Store,
	detector ToolTypeDetector,
	capClassifier CapabilityClassifier,
	assessor QualityAssessor,
	domain DomainValidator,
	alignment AlignmentScorer,
	logger *zerolog.Logger,
) *ValidateExecutor {
	return &ValidateExecutor{
		store:      store,
		detector:   detector,
		classifier: capClassifier,
		assessor:   assessor,
		domain:     domain,
		alignment:  alignment,
		logger:     logger,
	}
}

func (e *ValidateExecutor) Execute(ctx context.Context, mc models.MappingContext) (models.ValidationResult, error) {
	e.logger.Info().
		Str("requestID", mc.RequestID).
		Str("safeguard", mc.SafeguardID).
		Str("claimed", string(mc.ClaimedRole)).
		Msg("starting validation")

	safeguard, err := e.store.GetSafeguard(ctx, mc.SafeguardID)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("safeguard %s: %w", mc.SafeguardID, err)
	}

	requirement, err := e.store.GetDomainRequirement(ctx, mc.SafeguardID)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("domain requirement %s: %w", mc.SafeguardID, err)
	}

	// Detection and classification are independent of each other and of the
	// claimed role.
	var (
		toolType  string
		detection classifier.RoleDetection
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		toolType = e.detector.Detect(mc.Text, mc.SafeguardID)
	}()
	go func() {
		defer wg.Done()
		detection = e.classifier.Classify(mc.Text, *safeguard)
	}()
	wg.Wait()

	quality := e.assessor.Assess(mc.Text, *safeguard, detection.Role)
	domain := e.domain.Validate(requirement, mc.ClaimedRole, toolType)
	alignment := e.alignment.Score(mc.ClaimedRole, domain.EffectiveRole, detection.Role, quality.Confidence, domain)

	gapLimit := primaryGapLimit
	if domain.Adjusted {
		gapLimit++
	}
	gaps := mergeCapped(alignment.Gaps, quality.Gaps, gapLimit)

	result := models.ValidationResult{
		ID:               mc.RequestID,
		SafeguardID:      mc.SafeguardID,
		ClaimedRole:      mc.ClaimedRole,
		EffectiveRole:    domain.EffectiveRole,
		DetectedRole:     detection.Role,
		DetectedToolType: toolType,
		DomainMatch:      domain.DomainMatch,
		Confidence:       alignment.Confidence,
		Status:           alignment.Status,
		Evidence:         quality.Evidence,
		Gaps:             gaps,
		Recommendations:  alignment.Recommendations,
		Feedback:         composeFeedback(mc, toolType, detection, quality, domain.Adjusted, alignment.Status, alignment.Strengths),
	}

	e.logger.Info().
		Str("requestID", mc.RequestID).
		Str("status", string(result.Status)).
		Int("confidence", result.Confidence).
		Str("toolType", toolType).
		Msg("validation complete")

	return result, nil
}

func mergeCapped(first, second []string, limit int) []string {
	merged := make([]string, 0, limit)
	for _, gap := range append(append([]string{}, first...), second...) {
		if len(merged) == limit {
			break
		}
		merged = append(merged, gap)
	}
	return merged
}

func composeFeedback(
	mc models.MappingContext,
	toolType string,
	detection classifier.RoleDetection,
	quality classifier.QualityAssessment,
	adjusted bool,
	status models.ValidationStatus,
	strengths []string,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The %q claim for safeguard %s is %s. ", mc.ClaimedRole, mc.SafeguardID, status)

	if toolType == models.ToolTypeUnknown {
		b.WriteString("The description does not identify a recognizable tool category. ")
	} else {
		fmt.Fprintf(&b, "The description reads as a %s tool. ", toolType)
	}

	if detection.Signal {
		fmt.Fprintf(&b, "Its language evidences the %q role with %s quality (%d/100).", detection.Role, quality.Quality, quality.Confidence)
	} else {
		fmt.Fprintf(&b, "No role-specific language was found, so it defaults to %q with %s quality (%d/100).", detection.Role, quality.Quality, quality.Confidence)
	}

	if adjusted {
		b.WriteString(" The claim was downgraded because the tool category is not appropriate for this safeguard's domain.")
	}

	for _, strength := range strengths {
		b.WriteString(" ")
		b.WriteString(capitalize(strength))
		b.WriteString(".")
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
