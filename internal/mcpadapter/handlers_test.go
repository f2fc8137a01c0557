package mcpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/secmap/capmap-agent/internal/inputcheck"
)

func TestAnalyze_RejectsBadInput(t *testing.T) {

	tests := []struct {
		name    string
		input   AnalyzeInput
		wantErr error
	}{
		{
			name: "malformed safeguard id",
			input: AnalyzeInput{
				SafeguardID: "first",
				Text:        "a sufficiently long description",
			},
			wantErr: inputcheck.ErrInvalidSafeguardID,
		},
		{
			name: "text too short",
			input: AnalyzeInput{
				SafeguardID: "1.1",
				Text:        "short",
			},
			wantErr: inputcheck.ErrTextLength,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// The executor is never reached on rejected input.
			_, _, err := Analyze(context.Background(), nil, nil, test.input)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Analyze() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestValidate_RejectsBadInput(t *testing.T) {

	tests := []struct {
		name    string
		input   ValidateInput
		wantErr error
	}{
		{
			name: "malformed safeguard id",
			input: ValidateInput{
				SafeguardID: "x",
				ClaimedRole: "full",
				Text:        "a sufficiently long description",
			},
			wantErr: inputcheck.ErrInvalidSafeguardID,
		},
		{
			name: "unknown claimed role",
			input: ValidateInput{
				SafeguardID: "1.1",
				ClaimedRole: "total",
				Text:        "a sufficiently long description",
			},
			wantErr: inputcheck.ErrInvalidRole,
		},
		{
			name: "text too short",
			input: ValidateInput{
				SafeguardID: "1.1",
				ClaimedRole: "full",
				Text:        "short",
			},
			wantErr: inputcheck.ErrTextLength,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := Validate(context.Background(), nil, nil, test.input)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}
