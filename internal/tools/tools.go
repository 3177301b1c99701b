// Package tools defines the creative tool suite. Every tool is the same
// shape: a descriptor plus a render function that turns validated
// arguments into a markdown production guide. The dispatch core treats
// render functions as opaque handlers.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/creativeops/studio-mcp/internal/auth"
	"github.com/creativeops/studio-mcp/internal/registry"
	"github.com/creativeops/studio-mcp/pkg/types"
)

// Tool couples a descriptor with the handler that executes it.
type Tool struct {
	Descriptor types.ToolDescriptor
	Handler    types.Handler
}

// RichDescription mirrors the structured tool description advertised to
// orchestration clients: what the tool does and when to reach for it.
type RichDescription struct {
	Description string `json:"description"`
	UseWhen     string `json:"use_when"`
	SideEffects string `json:"side_effects,omitempty"`
}

// JSON renders the rich description as the tool's description string.
func (d RichDescription) JSON() string {
	b, err := json.Marshal(d)
	if err != nil {
		return d.Description
	}
	return string(b)
}

// renderFunc produces a tool's markdown payload from validated arguments.
type renderFunc func(ctx context.Context, args map[string]any) (string, error)

// newTool builds a Tool whose handler applies schema defaults and then
// delegates to the render function.
func newTool(descriptor types.ToolDescriptor, render renderFunc) Tool {
	handler := func(ctx context.Context, args map[string]any) (any, error) {
		return render(ctx, withDefaults(descriptor, args))
	}
	return Tool{Descriptor: descriptor, Handler: handler}
}

// withDefaults fills in declared defaults for absent optional parameters.
// The caller's map is never mutated.
func withDefaults(descriptor types.ToolDescriptor, args map[string]any) map[string]any {
	filled := make(map[string]any, len(args))
	for k, v := range args {
		filled[k] = v
	}
	for _, p := range descriptor.Params {
		if _, present := filled[p.Name]; !present && p.Default != nil {
			filled[p.Name] = p.Default
		}
	}
	return filled
}

// Catalog returns the full tool suite in advertisement order: the
// platform-required validate tool followed by the ten creative tools.
func Catalog(creds auth.Credentials) []Tool {
	return []Tool{
		newValidateTool(creds),
		newArtStyleTransferTool(),
		newVoiceCloningTool(),
		newPodcastProducerTool(),
		newMusicComposerTool(),
		newTaskAutomatorTool(),
		newMeetingAssistantTool(),
		newTournamentOrganizerTool(),
		newVideoScriptTool(),
		newThumbnailDesignerTool(),
		newStreamerAssistantTool(),
	}
}

// RegisterAll registers the catalog into the registry. Any error here is
// a boot-time misconfiguration and must be treated as fatal.
func RegisterAll(reg *registry.Registry, catalog []Tool) error {
	for _, tool := range catalog {
		if err := reg.Register(tool.Descriptor, tool.Handler); err != nil {
			return fmt.Errorf("registering tool: %w", err)
		}
	}
	return nil
}

// argString extracts a string argument, falling back when absent or not
// a string. Validation has already run by the time a handler sees args,
// so the fallback only covers optional parameters without defaults.
func argString(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// titleize turns an enum value like "van_gogh" into "Van Gogh".
func titleize(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// stamp formats the current date the way the guides present it.
func stamp() string {
	return time.Now().Format("January 2, 2006")
}
