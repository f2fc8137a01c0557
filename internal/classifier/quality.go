package classifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/secmap/capmap-agent/internal/models"
)

const (
	primarySignalIncrement   = 0.4
	secondarySignalIncrement = 0.2

	maxEvidenceSnippets = 5
	maxQualityGaps      = 3

	snippetRadius = 40
)

type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// QualityAssessment rates how well the detected role is executed.
type QualityAssessment struct {
	Quality    Quality
	Confidence int
	Evidence   []string
	Gaps       []string
}

// QualityAssessor re-scans the text with role-specific signal phrases.
type QualityAssessor interface {
	Assess(text string, safeguard models.Safeguard, role models.CapabilityRole) QualityAssessment
}

type LexicalQualityAssessor struct{}

func NewQualityAssessor() *LexicalQualityAssessor {
	return &LexicalQualityAssessor{}
}

// Assess scores the text against the signal set for the given role. Each
// present signal adds a fixed increment (primary 0.4, secondary 0.2 each),
// capped at 1.0; confidence is the score on a 0-100 scale.
func (a *LexicalQualityAssessor) Assess(text string, safeguard models.Safeguard, role models.CapabilityRole) QualityAssessment {
	signals := signalSetFor(role)

	primary := signals.Primary
	if role == models.RoleFull || role == models.RolePartial {
		primary = implementationPhrases[safeguard.ID]
	}

	lowered := strings.ToLower(text)

	score := 0.0
	var evidence []string
	var gaps []string

	if phrase, ok := firstMatch(lowered, primary); ok {
		score += primarySignalIncrement
		evidence = append(evidence, snippet(lowered, phrase))
	} else {
		gaps = append(gaps, signals.PrimaryGap)
	}

	for _, signal := range signals.Secondary {
		if phrase, ok := firstMatch(lowered, signal.Phrases); ok {
			score += secondarySignalIncrement
			evidence = append(evidence, snippet(lowered, phrase))
		} else {
			gaps = append(gaps, fmt.Sprintf("description lacks %s language", signal.Label))
		}
	}

	if score > 1.0 {
		score = 1.0
	}

	if len(evidence) > maxEvidenceSnippets {
		evidence = evidence[:maxEvidenceSnippets]
	}
	if len(gaps) > maxQualityGaps {
		gaps = gaps[:maxQualityGaps]
	}

	return QualityAssessment{
		Quality:    bucket(score),
		Confidence: int(math.Round(score * 100)),
		Evidence:   evidence,
		Gaps:       gaps,
	}
}

func signalSetFor(role models.CapabilityRole) qualitySignalSet {
	switch role {
	case models.RoleGovernance:
		return governanceQuality
	case models.RoleValidates:
		return validationQuality
	case models.RoleFacilitates:
		return facilitationQuality
	default:
		return implementationQuality
	}
}

func bucket(score float64) Quality {
	switch {
	case score >= 0.8:
		return QualityExcellent
	case score >= 0.6:
		return QualityGood
	case score >= 0.4:
		return QualityFair
	default:
		return QualityPoor
	}
}

func firstMatch(loweredText string, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		if strings.Contains(loweredText, phrase) {
			return phrase, true
		}
	}
	return "", false
}

// snippet extracts a short window around the first occurrence of phrase,
// quoting the matched signal for the caller. It slices the lowered text the
// match was found in: lowercasing can change byte lengths (some characters
// widen in UTF-8), so offsets into it are not valid in the original.
func snippet(lowered, phrase string) string {
	idx := strings.Index(lowered, phrase)
	if idx < 0 {
		return fmt.Sprintf("%q", phrase)
	}

	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(phrase) + snippetRadius
	if end > len(lowered) {
		end = len(lowered)
	}

	window := strings.TrimSpace(lowered[start:end])
	return fmt.Sprintf("%q (matched %q)", window, phrase)
}
