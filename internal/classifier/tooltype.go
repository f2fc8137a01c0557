package classifier

import (
	"strings"

	"github.com/secmap/capmap-agent/internal/models"
)

const (
	primaryKeywordWeight   = 3
	secondaryKeywordWeight = 1
	contextAffinityBonus   = 1
	minimumCategoryScore   = 2
)

// ToolTypeDetector infers what kind of product a free-text description is about.
type ToolTypeDetector interface {
	Detect(text string, safeguardID string) string
}

// LexicalToolTypeDetector scores text against every category signature with
// case-insensitive substring matching.
type LexicalToolTypeDetector struct {
	signatures []ToolTypeSignature
}

func NewToolTypeDetector() *LexicalToolTypeDetector {
	return &LexicalToolTypeDetector{
		signatures: toolTypeSignatures,
	}
}

// Detect returns the best-scoring category, or "unknown" when the maximum
// score is below the minimum threshold. Ties resolve to the earlier category
// in the signature table.
func (d *LexicalToolTypeDetector) Detect(text string, safeguardID string) string {
	lowered := strings.ToLower(text)

	best := models.ToolTypeUnknown
	bestScore := 0

	for _, sig := range d.signatures {
		score := 0
		for _, phrase := range sig.Primary {
			if strings.Contains(lowered, phrase) {
				score += primaryKeywordWeight
			}
		}
		for _, phrase := range sig.Secondary {
			if strings.Contains(lowered, phrase) {
				score += secondaryKeywordWeight
			}
		}
		if safeguardID != "" && containsString(sig.ContextAffinity, safeguardID) {
			score += contextAffinityBonus
		}

		if score > bestScore {
			bestScore = score
			best = sig.Category
		}
	}

	if bestScore < minimumCategoryScore {
		return models.ToolTypeUnknown
	}
	return best
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
