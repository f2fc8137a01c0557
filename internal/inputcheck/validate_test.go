package inputcheck

import (
	"errors"
	"strings"
	"testing"

	"github.com/secmap/capmap-agent/internal/models"
)

func TestSafeguardID(t *testing.T) {

	tests := []struct {
		id      string
		wantErr bool
	}{
		{"1.1", false},
		{"13.1", false},
		{"1.10", false},
		{"", true},
		{"1", true},
		{"1.1.1", true},
		{"a.b", true},
		{"1.1 ", true},
	}

	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			err := SafeguardID(test.id)
			if (err != nil) != test.wantErr {
				t.Errorf("SafeguardID(%q) error = %v, wantErr %v", test.id, err, test.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSafeguardID) {
				t.Errorf("SafeguardID(%q) error = %v, want ErrInvalidSafeguardID", test.id, err)
			}
		})
	}
}

func TestRole(t *testing.T) {

	tests := []struct {
		raw     string
		want    models.CapabilityRole
		wantErr bool
	}{
		{"full", models.RoleFull, false},
		{"partial", models.RolePartial, false},
		{"facilitates", models.RoleFacilitates, false},
		{"governance", models.RoleGovernance, false},
		{"validates", models.RoleValidates, false},
		{"FULL", models.RoleFull, false},
		{"  Partial  ", models.RolePartial, false},
		{"", "", true},
		{"complete", "", true},
		{"facilitate", "", true},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			got, err := Role(test.raw)
			if (err != nil) != test.wantErr {
				t.Fatalf("Role(%q) error = %v, wantErr %v", test.raw, err, test.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidRole) {
					t.Errorf("Role(%q) error = %v, want ErrInvalidRole", test.raw, err)
				}
				return
			}
			if got != test.want {
				t.Errorf("Role(%q) = %q, want %q", test.raw, got, test.want)
			}
		})
	}
}

func TestText(t *testing.T) {

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"minimum length", strings.Repeat("a", MinTextLength), false},
		{"maximum length", strings.Repeat("a", MaxTextLength), false},
		{"typical description", "integrates with your asset inventory", false},
		{"too short", "short", true},
		{"whitespace only", "             ", true},
		{"padding does not count", "  short  ", true},
		{"too long", strings.Repeat("a", MaxTextLength+1), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Text(test.text)
			if (err != nil) != test.wantErr {
				t.Errorf("Text() error = %v, wantErr %v", err, test.wantErr)
			}
			if err != nil && !errors.Is(err, ErrTextLength) {
				t.Errorf("Text() error = %v, want ErrTextLength", err)
			}
		})
	}
}
