package validator

import (
	"fmt"
	"strings"

	"github.com/secmap/capmap-agent/internal/models"
)

// DomainValidation is the outcome of checking a claimed role against the
// safeguard's domain restriction.
type DomainValidation struct {
	DomainMatch       bool
	RequiredToolTypes []string
	EffectiveRole     models.CapabilityRole
	Adjusted          bool
	Reasoning         string
}

// DomainValidator decides whether a claimed full/partial role is
// domain-appropriate for the detected tool type.
type DomainValidator interface {
	Validate(requirement *models.DomainRequirement, claimedRole models.CapabilityRole, detectedToolType string) DomainValidation
}

type RequirementDomainValidator struct{}

func NewDomainValidator() *RequirementDomainValidator {
	return &RequirementDomainValidator{}
}

// Validate downgrades a full/partial claim to facilitates when the detected
// tool type is outside the safeguard's required categories. It never
// upgrades and never adjusts facilitates/governance/validates claims.
// A nil requirement means the safeguard is unrestricted.
func (v *RequirementDomainValidator) Validate(requirement *models.DomainRequirement, claimedRole models.CapabilityRole, detectedToolType string) DomainValidation {
	if requirement == nil {
		return DomainValidation{
			DomainMatch:   true,
			EffectiveRole: claimedRole,
		}
	}

	match := toolTypeAllowed(requirement.RequiredToolTypes, detectedToolType)

	result := DomainValidation{
		DomainMatch:       match,
		RequiredToolTypes: requirement.RequiredToolTypes,
		EffectiveRole:     claimedRole,
	}

	restricted := claimedRole == models.RoleFull || claimedRole == models.RolePartial
	if restricted && !match {
		result.EffectiveRole = models.RoleFacilitates
		result.Adjusted = true
		result.Reasoning = fmt.Sprintf(
			"safeguard %s belongs to the %s domain and a %s claim requires a tool of type %s; the description reads as %s, so the effective role is %s",
			requirement.SafeguardID,
			requirement.Domain,
			claimedRole,
			strings.Join(requirement.RequiredToolTypes, " or "),
			detectedToolType,
			models.RoleFacilitates,
		)
	}

	return result
}

func toolTypeAllowed(required []string, detected string) bool {
	for _, toolType := range required {
		if toolType == detected {
			return true
		}
	}
	return false
}
