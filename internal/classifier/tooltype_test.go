package classifier

import (
	"testing"

	"github.com/secmap/capmap-agent/internal/models"
)

func TestToolTypeDetector(t *testing.T) {

	detector := NewToolTypeDetector()

	tests := []struct {
		name        string
		text        string
		safeguardID string
		want        string
	}{
		{
			name:        "inventory tool",
			text:        "comprehensive automated discovery, detailed hardware/software inventory, ownership records, bi-annual review",
			safeguardID: "1.1",
			want:        "inventory",
		},
		{
			name:        "vulnerability scanner beats inventory affinity",
			text:        "vulnerability scanner performs comprehensive network discovery and maintains detailed device databases",
			safeguardID: "1.1",
			want:        "vulnerability_management",
		},
		{
			name:        "identity tool",
			text:        "identity management platform with single sign-on and mfa for every account",
			safeguardID: "5.1",
			want:        "identity_management",
		},
		{
			name: "siem",
			text: "siem with centralized security monitoring, alert triage, and event correlation",
			want: "security_analytics",
		},
		{
			name: "no recognizable keywords",
			text: "our product makes your business more efficient",
			want: models.ToolTypeUnknown,
		},
		{
			name: "single weak keyword stays below threshold",
			text: "this mentions a threat only",
			want: models.ToolTypeUnknown,
		},
		{
			name: "case insensitive matching",
			text: "Asset Inventory with automated Discovery",
			want: "inventory",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := detector.Detect(test.text, test.safeguardID)
			if got != test.want {
				t.Errorf("Detect() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestToolTypeDetector_ContextAffinityBonus(t *testing.T) {
	detector := NewToolTypeDetector()

	// One secondary keyword alone stays below the threshold.
	if got := detector.Detect("we track things", ""); got != models.ToolTypeUnknown {
		t.Errorf("without affinity: got %q, want %q", got, models.ToolTypeUnknown)
	}

	// The affinity bonus for safeguard 1.1 lifts inventory to the threshold.
	if got := detector.Detect("we track things", "1.1"); got != "inventory" {
		t.Errorf("with affinity: got %q, want inventory", got)
	}
}

func TestToolTypeDetector_TieResolvesToTableOrder(t *testing.T) {
	detector := NewToolTypeDetector()

	// Two secondary hits each for inventory and identity_management.
	// inventory precedes identity_management in the signature table.
	got := detector.Detect("asset account discovery credential", "")
	if got != "inventory" {
		t.Errorf("tie: got %q, want inventory", got)
	}
}

func TestToolTypeDetector_Deterministic(t *testing.T) {
	detector := NewToolTypeDetector()
	text := "vulnerability scanner with patch management and cve remediation"

	first := detector.Detect(text, "7.1")
	for i := 0; i < 10; i++ {
		if got := detector.Detect(text, "7.1"); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}
