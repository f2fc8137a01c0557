package executor

import (
	"context"

	"github.com/secmap/capmap-agent/internal/classifier"
	"github.com/secmap/capmap-agent/internal/models"
	"github.com/secmap/capmap-agent/internal/validator"
)

// ToolTypeDetector infers the tool category from free text.
type ToolTypeDetector interface {
	Detect(text string, safeguardID string) string
}

// CapabilityClassifier infers the capability role from free text.
type CapabilityClassifier interface {
	Classify(text string, safeguard models.Safeguard) classifier.RoleDetection
	Scores(text string, safeguard models.Safeguard) classifier.GroupScores
}

// QualityAssessor rates how well the detected role is executed.
type QualityAssessor interface {
	Assess(text string, safeguard models.Safeguard, role models.CapabilityRole) classifier.QualityAssessment
}

// DomainValidator checks claimed roles against domain restrictions.
type DomainValidator interface {
	Validate(requirement *models.DomainRequirement, claimedRole models.CapabilityRole, detectedToolType string) validator.DomainValidation
}

// AlignmentScorer reconciles claimed, effective, and detected roles.
type AlignmentScorer interface {
	Score(claimed, effective, detected models.CapabilityRole, detectedConfidence int, domain validator.DomainValidation) validator.Alignment
}

// Store is the safeguard reference-data boundary.
type Store interface {
	GetSafeguard(ctx context.Context, id string) (*models.Safeguard, error)
	GetDomainRequirement(ctx context.Context, id string) (*models.DomainRequirement, error)
	ListSafeguardIDs(ctx context.Context) ([]string, error)
}
