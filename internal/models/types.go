package models

import (
	"time"
)

// CapabilityRole is a vendor tool's functional relationship to a safeguard.
type CapabilityRole string

const (
	RoleFull        CapabilityRole = "full"
	RolePartial     CapabilityRole = "partial"
	RoleFacilitates CapabilityRole = "facilitates"
	RoleGovernance  CapabilityRole = "governance"
	RoleValidates   CapabilityRole = "validates"
)

// Roles lists the five capability roles.
var Roles = []CapabilityRole{RoleFull, RolePartial, RoleFacilitates, RoleGovernance, RoleValidates}

type ValidationStatus string

const (
	StatusSupported    ValidationStatus = "SUPPORTED"
	StatusQuestionable ValidationStatus = "QUESTIONABLE"
	StatusUnsupported  ValidationStatus = "UNSUPPORTED"
)

type EventType string

const (
	EventTypeVendorMapping EventType = "vendor_mapping"
	EventTypeVendorError   EventType = "vendor_error"
)

// ToolTypeUnknown is returned by the detector when no category scores high enough.
const ToolTypeUnknown = "unknown"

type Vendor struct {
	Name    string `json:"name"`
	Product string `json:"product"`
	Version string `json:"version"`
}

// Safeguard is a control requirement from the reference catalog.
// Domain and RequiredToolTypes are set only for the curated subset of
// safeguards that carry a domain restriction.
type Safeguard struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	Domain            string   `json:"domain,omitempty"`
	RequiredToolTypes []string `json:"required_tool_types,omitempty"`
}

// DomainRequirement restricts which tool categories may claim full or
// partial coverage of a safeguard. Other roles are never restricted.
type DomainRequirement struct {
	SafeguardID       string   `json:"safeguard_id"`
	Domain            string   `json:"domain"`
	RequiredToolTypes []string `json:"required_tool_types"`
}

type Mapping struct {
	SafeguardID    string `json:"safeguard_id"`
	ClaimedRole    string `json:"claimed_role"`
	SupportingText string `json:"supporting_text"`
}

// Input message

type ValidationRequest struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	Vendor    Vendor    `json:"vendor"`
	Mapping   Mapping   `json:"mapping"`
}

// Normalized internal object
type MappingContext struct {
	RequestID   string         `json:"request_id" jsonschema:"required,description=Unique event identifier"`
	VendorName  string         `json:"vendor_name" jsonschema:"description=Vendor being assessed"`
	SafeguardID string         `json:"safeguard_id" jsonschema:"required,description=Safeguard identifier such as 1.1"`
	ClaimedRole CapabilityRole `json:"claimed_role,omitempty" jsonschema:"description=Role the vendor claims for this safeguard"`
	Text        string         `json:"text" jsonschema:"required,description=Vendor capability description to classify"`
	CreatedAt   time.Time      `json:"created_at" jsonschema:"description=Time when the mapping context was created"`
}

// RoleBreakdown annotates which roles the text shows any evidence for.
// The classification contract itself stays single-valued.
type RoleBreakdown struct {
	Full        bool `json:"full"`
	Partial     bool `json:"partial"`
	Facilitates bool `json:"facilitates"`
	Governance  bool `json:"governance"`
	Validates   bool `json:"validates"`
}

// AnalysisResult is the output of the analyze operation (no claimed role).
type AnalysisResult struct {
	ID               string         `json:"id"`
	SafeguardID      string         `json:"safeguard_id"`
	Role             CapabilityRole `json:"role"`
	RoleBreakdown    RoleBreakdown  `json:"role_breakdown"`
	DetectedToolType string         `json:"detected_tool_type"`
	Confidence       int            `json:"confidence"`
	Evidence         []string       `json:"evidence"`
	ToolCapability   string         `json:"tool_capability_description"`
	RecommendedUse   string         `json:"recommended_use"`
}

// ValidationResult is the output of the validate_mapping operation.
// It is constructed once per request and never mutated afterwards.
type ValidationResult struct {
	ID               string           `json:"id"`
	SafeguardID      string           `json:"safeguard_id"`
	ClaimedRole      CapabilityRole   `json:"claimed_role"`
	EffectiveRole    CapabilityRole   `json:"effective_role"`
	DetectedRole     CapabilityRole   `json:"detected_role"`
	DetectedToolType string           `json:"detected_tool_type"`
	DomainMatch      bool             `json:"domain_match"`
	Confidence       int              `json:"confidence_score"`
	Status           ValidationStatus `json:"status"`
	Evidence         []string         `json:"evidence"`
	Gaps             []string         `json:"gaps"`
	Recommendations  []string         `json:"recommendations"`
	Feedback         string           `json:"feedback"`
}
