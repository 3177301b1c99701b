package dispatch

import (
	"fmt"

	"github.com/creativeops/studio-mcp/pkg/types"
)

// validateArguments checks the invocation arguments against the descriptor's
// input schema. Required parameters must be present and type-compatible;
// unknown extra arguments are ignored for forward compatibility. On failure
// the message names the first offending parameter in declaration order.
func validateArguments(descriptor types.ToolDescriptor, args map[string]any) (string, bool) {
	for _, param := range descriptor.Params {
		value, present := args[param.Name]
		if !present {
			if param.Required {
				return fmt.Sprintf("missing required parameter %q", param.Name), false
			}
			continue
		}
		if !typeCompatible(param.Type, value) {
			return fmt.Sprintf("parameter %q must be a %s", param.Name, param.Type), false
		}
	}
	return "", true
}

// typeCompatible reports whether a decoded JSON value satisfies the declared
// parameter type. JSON numbers arrive as float64, but handlers written
// against Go literals may also see int values in tests.
func typeCompatible(t types.ParamType, value any) bool {
	switch t {
	case types.ParamString:
		_, ok := value.(string)
		return ok
	case types.ParamNumber:
		switch value.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case types.ParamBoolean:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
