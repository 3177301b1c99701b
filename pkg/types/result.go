package types

// ErrorKind is the stable tag attached to every dispatch failure.
type ErrorKind string

const (
	ErrorKindUnauthorized     ErrorKind = "unauthorized"
	ErrorKindUnknownTool      ErrorKind = "unknown_tool"
	ErrorKindInvalidArguments ErrorKind = "invalid_arguments"
	ErrorKindHandlerError     ErrorKind = "handler_error"
	ErrorKindTimeout          ErrorKind = "timeout"
)

// Result is the single terminal outcome of one dispatched invocation.
// Exactly one of Payload or (Kind, Message) is meaningful.
type Result struct {
	Payload any
	Kind    ErrorKind
	Message string
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool {
	return r.Kind == ""
}

// Success wraps a handler payload in a successful Result.
func Success(payload any) Result {
	return Result{Payload: payload}
}

// Failure builds a failed Result with the given kind and message.
func Failure(kind ErrorKind, message string) Result {
	return Result{Kind: kind, Message: message}
}
