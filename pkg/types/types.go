package types

import "context"

// ParamType identifies the wire type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
)

// ParamSpec describes a single parameter in a tool's input schema.
type ParamSpec struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required"`
	Default     any       `json:"default,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
}

// ToolDescriptor is the immutable metadata for a registered tool.
// Params preserves declaration order, which is also the order advertised
// to clients.
type ToolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamSpec `json:"params,omitempty"`
}

// Param returns the spec for the named parameter, if declared.
func (d ToolDescriptor) Param(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}

// Handler executes a tool's behavior. Implementations are opaque to the
// dispatch core: they return a payload or an error and nothing else.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Invocation is one parsed tool call, owned by the Dispatcher for the
// duration of a single dispatch.
type Invocation struct {
	ID        string
	ToolName  string
	Arguments map[string]any
	Token     string
	Caller    string
}
