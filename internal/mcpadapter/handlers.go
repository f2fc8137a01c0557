package mcpadapter

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/secmap/capmap-agent/internal/executor"
	"github.com/secmap/capmap-agent/internal/inputcheck"
	"github.com/secmap/capmap-agent/internal/models"
)

// AnalyzeInput is the MCP tool input schema for capability analysis.
type AnalyzeInput struct {
	EventID     string `json:"event_id" jsonschema:"unique event identifier"`
	VendorName  string `json:"vendor_name" jsonschema:"vendor being assessed"`
	SafeguardID string `json:"safeguard_id" jsonschema:"safeguard identifier such as 1.1"`
	Text        string `json:"response_text" jsonschema:"vendor capability description to classify"`
}

// ValidateInput is the MCP tool input schema for claimed-role validation.
type ValidateInput struct {
	EventID     string `json:"event_id" jsonschema:"unique event identifier"`
	VendorName  string `json:"vendor_name" jsonschema:"vendor being assessed"`
	SafeguardID string `json:"safeguard_id" jsonschema:"safeguard identifier such as 1.1"`
	ClaimedRole string `json:"claimed_role" jsonschema:"claimed role: full, partial, facilitates, governance, or validates"`
	Text        string `json:"supporting_text" jsonschema:"vendor evidence for the claimed role"`
}

// NewAnalyzeHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewAnalyzeHandler(exec *executor.AnalyzeExecutor) func(context.Context, *mcp.CallToolRequest, AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
		return Analyze(ctx, exec, req, input)
	}
}

// Analyze runs the detection-only pipeline and returns the result.
func Analyze(
	ctx context.Context,
	exec *executor.AnalyzeExecutor,
	req *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, models.AnalysisResult, error) {
	if err := inputcheck.SafeguardID(input.SafeguardID); err != nil {
		return nil, models.AnalysisResult{}, err
	}
	if err := inputcheck.Text(input.Text); err != nil {
		return nil, models.AnalysisResult{}, err
	}

	mc := models.MappingContext{
		RequestID:   input.EventID,
		VendorName:  input.VendorName,
		SafeguardID: input.SafeguardID,
		Text:        input.Text,
		CreatedAt:   time.Now(),
	}

	result, err := exec.Execute(ctx, mc)
	return nil, result, err
}

// NewValidateHandler returns a tool handler for claimed-role validation.
// Pass the returned function to mcp.AddTool.
func NewValidateHandler(exec *executor.ValidateExecutor) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
		return Validate(ctx, exec, req, input)
	}
}

// Validate runs the full validation pipeline and returns the result.
func Validate(
	ctx context.Context,
	exec *executor.ValidateExecutor,
	req *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, models.ValidationResult, error) {
	if err := inputcheck.SafeguardID(input.SafeguardID); err != nil {
		return nil, models.ValidationResult{}, err
	}
	role, err := inputcheck.Role(input.ClaimedRole)
	if err != nil {
		return nil, models.ValidationResult{}, err
	}
	if err := inputcheck.Text(input.Text); err != nil {
		return nil, models.ValidationResult{}, err
	}

	mc := models.MappingContext{
		RequestID:   input.EventID,
		VendorName:  input.VendorName,
		SafeguardID: input.SafeguardID,
		ClaimedRole: role,
		Text:        input.Text,
		CreatedAt:   time.Now(),
	}

	result, err := exec.Execute(ctx, mc)
	return nil, result, err
}
