package render

import "errors"

// NoDependencySupportMessage is the message variants without dependency
// support report from Dependencies.
const NoDependencySupportMessage = "No dependency support for this variant"

var (
	// ErrUnsupportedOperation is matched by every *UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("render: unsupported operation")
	// ErrRendererNotFound signals a lookup for an unregistered method.
	ErrRendererNotFound = errors.New("render: renderer not found")
)

// UnsupportedOperationError reports that a renderer variant lacks a capability
// other variants implement. Error returns Message verbatim so callers can show
// it to users as-is.
type UnsupportedOperationError struct {
	Renderer  string
	Operation string
	Message   string
}

func (e *UnsupportedOperationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Is lets errors.Is(err, ErrUnsupportedOperation) match.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// Unsupported builds an UnsupportedOperationError.
func Unsupported(renderer, operation, message string) error {
	return &UnsupportedOperationError{
		Renderer:  renderer,
		Operation: operation,
		Message:   message,
	}
}

// IsUnsupported reports whether err signals a missing renderer capability.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}
