package lang

import (
	"fmt"
	"log/slog"
)

// Error is the Go-level carrier for a JSPR raise: it wraps the raised
// Value payload (conventionally `[kind, ...context]`) so kernel errors
// compose with errors.Is/errors.As and slog.LogValuer for embedders (the
// CLI, the test harness), while .Raised still returns the exact Value the
// evaluator raised.
type Error struct {
	Kind    string
	payload Value
	cause   error
	attrs   []slog.Attr
}

// NewError wraps payload (expected to be a *Sequence whose first element
// names the error kind) as an *Error.
func NewError(payload Value) *Error {
	kind := ""

	if seq, ok := payload.(*Sequence); ok && seq.Len() > 0 {
		if s, ok := seq.Items[0].(string); ok {
			kind = s
		}
	}

	return &Error{Kind: kind, payload: payload}
}

// Raised returns the JSPR Value payload this error carries.
func (e *Error) Raised() Value {
	return e.payload
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}

	return e.Kind
}

// Wrap returns a copy of e with its Go-level cause set to err.
func (e *Error) Wrap(err error) *Error {
	clone := *e
	clone.cause = err

	return &clone
}

// With returns a copy of e carrying additional structured log attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	clone := *e
	clone.attrs = append(append([]slog.Attr{}, e.attrs...), attrs...)

	return &clone
}

// Unwrap exposes the wrapped Go-level cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// LogValue implements slog.LogValuer so a raised error renders its kind and
// payload as structured attributes rather than a flat string.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", e.Kind)}
	if e.payload != nil {
		attrs = append(attrs, slog.String("payload", String(e.payload)))
	}

	attrs = append(attrs, e.attrs...)

	return slog.GroupValue(attrs...)
}

// WrapError wraps a non-JSPR Go error (I/O, document-loader parse
// failures) as an *Error with no raised Value payload (.Raised() returns
// nil), so it renders through the same slog.LogValuer shape regardless of
// whether the failure originated inside the evaluator or in the document
// loader/CLI.
func WrapError(err error) *Error {
	return &Error{Kind: "go-error", cause: err}
}

// Raise builds and returns an *Error whose payload is `[kind, ...context]`.
func Raise(kind string, context ...Value) error {
	items := make([]Value, 0, len(context)+1)
	items = append(items, kind)
	items = append(items, context...)

	return NewError(NewSequence(items...))
}
