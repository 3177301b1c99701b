package tools

import (
	"context"

	"github.com/creativeops/studio-mcp/internal/auth"
	"github.com/creativeops/studio-mcp/pkg/types"
)

// newValidateTool returns the platform-required validate tool. The upstream
// platform calls it after connecting to confirm the deployment and expects
// the deploying caller's number back.
func newValidateTool(creds auth.Credentials) Tool {
	descriptor := types.ToolDescriptor{
		Name:        "validate",
		Description: "Validate the bearer token and return the deploying caller's number.",
	}
	return newTool(descriptor, func(ctx context.Context, args map[string]any) (string, error) {
		return creds.CallerNumber, nil
	})
}
