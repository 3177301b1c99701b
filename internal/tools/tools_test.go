package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativeops/studio-mcp/internal/auth"
	"github.com/creativeops/studio-mcp/internal/dispatch"
	"github.com/creativeops/studio-mcp/internal/registry"
	"github.com/creativeops/studio-mcp/pkg/types"
)

var testCreds = auth.Credentials{
	AuthToken:    "test-token",
	CallerNumber: "919876543210",
}

func TestCatalog_Shape(t *testing.T) {
	catalog := Catalog(testCreds)
	require.Len(t, catalog, 11, "validate plus ten creative tools")

	seen := make(map[string]bool)
	for _, tool := range catalog {
		assert.NotEmpty(t, tool.Descriptor.Name)
		assert.NotEmpty(t, tool.Descriptor.Description)
		assert.NotNil(t, tool.Handler)
		assert.False(t, seen[tool.Descriptor.Name], "duplicate tool name %s", tool.Descriptor.Name)
		seen[tool.Descriptor.Name] = true
	}

	assert.Equal(t, "validate", catalog[0].Descriptor.Name)
}

func TestCatalog_ParamSpecsAreWellFormed(t *testing.T) {
	for _, tool := range Catalog(testCreds) {
		t.Run(tool.Descriptor.Name, func(t *testing.T) {
			for _, p := range tool.Descriptor.Params {
				assert.NotEmpty(t, p.Name)
				assert.Contains(t,
					[]types.ParamType{types.ParamString, types.ParamNumber, types.ParamBoolean},
					p.Type)
				if p.Required {
					assert.Nil(t, p.Default, "required param %q must not carry a default", p.Name)
				}
				if p.Default != nil && len(p.Enum) > 0 {
					assert.Contains(t, p.Enum, p.Default, "default for %q must be a valid enum value", p.Name)
				}
			}
		})
	}
}

func TestRegisterAll(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg, Catalog(testCreds)))
	assert.Equal(t, 11, reg.Len())

	// Listing order matches catalog order.
	catalog := Catalog(testCreds)
	for i, d := range reg.List() {
		assert.Equal(t, catalog[i].Descriptor.Name, d.Name)
	}
}

func TestRegisterAll_DuplicateFails(t *testing.T) {
	reg := registry.New()
	catalog := Catalog(testCreds)
	require.NoError(t, RegisterAll(reg, catalog))

	err := RegisterAll(reg, catalog[:1])
	assert.ErrorIs(t, err, registry.ErrDuplicateName)
}

// minimalArgs builds the smallest valid argument set for a descriptor:
// every required parameter, using the first enum value when one exists.
func minimalArgs(d types.ToolDescriptor) map[string]any {
	args := make(map[string]any)
	for _, p := range d.Params {
		if !p.Required {
			continue
		}
		if len(p.Enum) > 0 {
			args[p.Name] = p.Enum[0]
			continue
		}
		switch p.Type {
		case types.ParamString:
			args[p.Name] = "a quiet mountain lake at dawn"
		case types.ParamNumber:
			args[p.Name] = float64(1)
		case types.ParamBoolean:
			args[p.Name] = true
		}
	}
	return args
}

// Every advertised tool must dispatch cleanly with a minimal valid
// argument set: never UnknownTool, never InvalidArguments.
func TestCatalog_RoundTrip(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg, Catalog(testCreds)))

	d := dispatch.New(auth.NewGuard(testCreds.AuthToken), reg)

	for _, descriptor := range reg.List() {
		t.Run(descriptor.Name, func(t *testing.T) {
			result := d.Dispatch(context.Background(), types.Invocation{
				ToolName:  descriptor.Name,
				Arguments: minimalArgs(descriptor),
				Token:     testCreds.AuthToken,
			})
			require.True(t, result.OK(), "kind=%s message=%s", result.Kind, result.Message)
			payload, ok := result.Payload.(string)
			require.True(t, ok, "creative tools return text payloads")
			assert.NotEmpty(t, payload)
		})
	}
}

// Every enum value of every parameter must be accepted by its render
// function, not just the first.
func TestCatalog_AllEnumValuesRender(t *testing.T) {
	reg := registry.New()
	require.NoError(t, RegisterAll(reg, Catalog(testCreds)))
	d := dispatch.New(auth.NewGuard(testCreds.AuthToken), reg)

	for _, descriptor := range reg.List() {
		for _, p := range descriptor.Params {
			for _, v := range p.Enum {
				args := minimalArgs(descriptor)
				args[p.Name] = v
				result := d.Dispatch(context.Background(), types.Invocation{
					ToolName:  descriptor.Name,
					Arguments: args,
					Token:     testCreds.AuthToken,
				})
				assert.True(t, result.OK(), "%s %s=%s: %s", descriptor.Name, p.Name, v, result.Message)
			}
		}
	}
}

func TestValidateTool_ReturnsCallerNumber(t *testing.T) {
	tool := newValidateTool(testCreds)
	payload, err := tool.Handler(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, testCreds.CallerNumber, payload)
}

func TestRichDescription_JSON(t *testing.T) {
	desc := RichDescription{
		Description: "Does a thing",
		UseWhen:     "When the thing needs doing",
	}

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(desc.JSON()), &decoded))
	assert.Equal(t, "Does a thing", decoded["description"])
	assert.Equal(t, "When the thing needs doing", decoded["use_when"])
	_, hasSideEffects := decoded["side_effects"]
	assert.False(t, hasSideEffects, "empty side effects are omitted")
}

func TestWithDefaults(t *testing.T) {
	descriptor := types.ToolDescriptor{
		Name: "example",
		Params: []types.ParamSpec{
			{Name: "required", Type: types.ParamString, Required: true},
			{Name: "mood", Type: types.ParamString, Default: "vibrant"},
			{Name: "no_default", Type: types.ParamString},
		},
	}

	original := map[string]any{"required": "x"}
	filled := withDefaults(descriptor, original)

	assert.Equal(t, "x", filled["required"])
	assert.Equal(t, "vibrant", filled["mood"])
	_, ok := filled["no_default"]
	assert.False(t, ok)

	// Caller's map is untouched.
	_, ok = original["mood"]
	assert.False(t, ok)

	// Explicit values win over defaults.
	filled = withDefaults(descriptor, map[string]any{"required": "x", "mood": "dark"})
	assert.Equal(t, "dark", filled["mood"])
}

func TestTitleize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "van_gogh", expected: "Van Gogh"},
		{in: "single_elimination", expected: "Single Elimination"},
		{in: "pop", expected: "Pop"},
		{in: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, titleize(tt.in))
	}
}

func TestRenderArtStyleGuide_UnsupportedStyle(t *testing.T) {
	_, err := renderArtStyleGuide(context.Background(), map[string]any{
		"image_description": "a lake",
		"art_style":         "cave_painting",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported art style")
}

func TestRenderArtStyleGuide_Content(t *testing.T) {
	guide, err := renderArtStyleGuide(context.Background(), map[string]any{
		"image_description": "a lighthouse in a storm",
		"art_style":         "van_gogh",
		"mood":              "dramatic",
	})
	require.NoError(t, err)
	assert.Contains(t, guide, "Van Gogh")
	assert.Contains(t, guide, "a lighthouse in a storm")
	assert.Contains(t, guide, "Dramatic")
}
