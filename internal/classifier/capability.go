package classifier

import (
	"strings"

	"github.com/secmap/capmap-agent/internal/models"
)

const (
	groupScoreThreshold = 0.2
	fullRoleThreshold   = 0.5
)

// RoleDetection is the classifier verdict. Signal is false when no phrase
// group cleared its threshold and the facilitates role was assigned as the
// default fallback rather than detected from the text.
type RoleDetection struct {
	Role   models.CapabilityRole
	Score  float64
	Signal bool
}

// GroupScores holds the four phrase-group scores for one description.
type GroupScores struct {
	Implementation float64
	Governance     float64
	Facilitation   float64
	Validation     float64
}

// CapabilityClassifier infers which capability role a description evidences.
type CapabilityClassifier interface {
	Classify(text string, safeguard models.Safeguard) RoleDetection
	Scores(text string, safeguard models.Safeguard) GroupScores
}

// LexicalCapabilityClassifier scores the text against the four indicator
// phrase groups and applies a fixed priority decision rule.
type LexicalCapabilityClassifier struct{}

func NewCapabilityClassifier() *LexicalCapabilityClassifier {
	return &LexicalCapabilityClassifier{}
}

// Scores computes all four group scores without deciding a role.
func (c *LexicalCapabilityClassifier) Scores(text string, safeguard models.Safeguard) GroupScores {
	lowered := strings.ToLower(text)
	return GroupScores{
		Implementation: groupScore(lowered, implementationPhrases[safeguard.ID]),
		Governance:     groupScore(lowered, governancePhrases),
		Facilitation:   groupScore(lowered, facilitationPhrases),
		Validation:     groupScore(lowered, validationPhrases),
	}
}

// Classify applies the decision rule in fixed priority order: direct
// implementation, then governance, then validation, with facilitates as the
// fallback when nothing clears its threshold.
func (c *LexicalCapabilityClassifier) Classify(text string, safeguard models.Safeguard) RoleDetection {
	scores := c.Scores(text, safeguard)

	if scores.Implementation > groupScoreThreshold &&
		scores.Implementation >= max3(scores.Facilitation, scores.Governance, scores.Validation) {
		role := models.RolePartial
		if scores.Implementation > fullRoleThreshold {
			role = models.RoleFull
		}
		return RoleDetection{Role: role, Score: scores.Implementation, Signal: true}
	}

	if scores.Governance > groupScoreThreshold &&
		scores.Governance >= maxFloat(scores.Facilitation, scores.Validation) {
		return RoleDetection{Role: models.RoleGovernance, Score: scores.Governance, Signal: true}
	}

	if scores.Validation > groupScoreThreshold && scores.Validation >= scores.Facilitation {
		return RoleDetection{Role: models.RoleValidates, Score: scores.Validation, Signal: true}
	}

	if scores.Facilitation > groupScoreThreshold {
		return RoleDetection{Role: models.RoleFacilitates, Score: scores.Facilitation, Signal: true}
	}

	// Default fallback: nothing cleared a threshold.
	return RoleDetection{Role: models.RoleFacilitates, Score: scores.Facilitation, Signal: false}
}

// groupScore is the shared scoring function for all four groups:
// fraction of the group's phrases found, plus 0.1 per total occurrence
// capped at 0.5, the sum capped at 1.0.
func groupScore(loweredText string, phrases []string) float64 {
	if len(phrases) == 0 {
		return 0
	}

	found := 0
	occurrences := 0
	for _, phrase := range phrases {
		count := strings.Count(loweredText, phrase)
		if count > 0 {
			found++
			occurrences += count
		}
	}

	score := float64(found) / float64(len(phrases))

	bonus := 0.1 * float64(occurrences)
	if bonus > 0.5 {
		bonus = 0.5
	}
	score += bonus

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c float64) float64 {
	return maxFloat(a, maxFloat(b, c))
}
