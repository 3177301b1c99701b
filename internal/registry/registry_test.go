package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/creativeops/studio-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(ctx context.Context, args map[string]any) (any, error) {
	return "ok", nil
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name          string
		descriptor    types.ToolDescriptor
		handler       types.Handler
		errorContains string
	}{
		{
			name:       "valid registration",
			descriptor: types.ToolDescriptor{Name: "echo", Description: "Echoes input"},
			handler:    noopHandler,
		},
		{
			name:          "empty name",
			descriptor:    types.ToolDescriptor{Description: "No name"},
			handler:       noopHandler,
			errorContains: "must not be empty",
		},
		{
			name:          "nil handler",
			descriptor:    types.ToolDescriptor{Name: "broken"},
			handler:       nil,
			errorContains: "has no handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.Register(tt.descriptor, tt.handler)
			if tt.errorContains != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Equal(t, 0, r.Len())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, r.Len())
			}
		})
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := New()

	first := types.ToolDescriptor{Name: "echo", Description: "first"}
	second := types.ToolDescriptor{Name: "echo", Description: "second"}

	require.NoError(t, r.Register(first, noopHandler))
	err := r.Register(second, noopHandler)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), "echo")

	// The first registration is retained.
	descriptor, _, err := r.Resolve("echo")
	require.NoError(t, err)
	assert.Equal(t, "first", descriptor.Description)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Resolve(t *testing.T) {
	r := New()
	descriptor := types.ToolDescriptor{
		Name:        "echo",
		Description: "Echoes input",
		Params: []types.ParamSpec{
			{Name: "message", Type: types.ParamString, Required: true},
		},
	}
	require.NoError(t, r.Register(descriptor, noopHandler))

	got, handler, err := r.Resolve("echo")
	require.NoError(t, err)
	assert.Equal(t, descriptor, got)
	require.NotNil(t, handler)

	payload, err := handler(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", payload)
}

func TestRegistry_ResolveNotFound(t *testing.T) {
	r := New()
	_, _, err := r.Resolve("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_ListOrder(t *testing.T) {
	r := New()
	names := []string{"charlie", "alpha", "bravo", "delta"}
	for _, name := range names {
		require.NoError(t, r.Register(types.ToolDescriptor{Name: name}, noopHandler))
	}

	listed := r.List()
	require.Len(t, listed, len(names))
	for i, d := range listed {
		assert.Equal(t, names[i], d.Name)
	}
}

func TestRegistry_ListReturnsCopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(types.ToolDescriptor{Name: "echo"}, noopHandler))

	first := r.List()
	first[0].Name = "mutated"

	second := r.List()
	assert.Equal(t, "echo", second[0].Name)
}

func TestRegistry_ListIsRestartable(t *testing.T) {
	r := New()
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("tool_%d", i)
		require.NoError(t, r.Register(types.ToolDescriptor{Name: name}, noopHandler))
	}

	// Repeated listings yield the same sequence.
	assert.Equal(t, r.List(), r.List())
}
