package inputcheck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/secmap/capmap-agent/internal/models"
)

// Bounds the engine assumes hold before it runs.
const (
	MinTextLength = 10
	MaxTextLength = 10000
)

var (
	ErrInvalidSafeguardID = errors.New("invalid safeguard id")
	ErrInvalidRole        = errors.New("invalid capability role")
	ErrTextLength         = errors.New("text length out of bounds")
)

var safeguardIDPattern = regexp.MustCompile(`^\d+\.\d+$`)

// SafeguardID checks the id shape only; existence is the catalog's concern.
func SafeguardID(id string) error {
	if !safeguardIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q must match N.N", ErrInvalidSafeguardID, id)
	}
	return nil
}

// Role parses a claimed role into the closed five-value enum.
func Role(raw string) (models.CapabilityRole, error) {
	candidate := models.CapabilityRole(strings.ToLower(strings.TrimSpace(raw)))
	for _, role := range models.Roles {
		if candidate == role {
			return role, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
}

// Text enforces the supported description length after trimming.
func Text(text string) error {
	length := len(strings.TrimSpace(text))
	if length < MinTextLength || length > MaxTextLength {
		return fmt.Errorf("%w: got %d characters, want %d-%d", ErrTextLength, length, MinTextLength, MaxTextLength)
	}
	return nil
}
