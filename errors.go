package wrecked

import "fmt"

// Code is the error taxonomy from spec.md §7, preserved as small nonzero
// integers so a binding layer across an FFI boundary can translate an error
// back to the wire contract the original mandates.
type Code uint8

const (
	CodeOK Code = iota
	CodeBadColor
	CodeInvalidUTF8
	CodeStringOverflow
	CodeNotFound
	CodeNoParent
	CodeParentNotFound
	CodeChildNotFound
	CodeOutOfBounds
)

// CodeUnknownError is the catch-all from spec.md §7; it is not contiguous
// with the rest of the table in the original wire format.
const CodeUnknownError Code = 255

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeBadColor:
		return "bad color"
	case CodeInvalidUTF8:
		return "invalid utf8"
	case CodeStringOverflow:
		return "string overflow"
	case CodeNotFound:
		return "not found"
	case CodeNoParent:
		return "no parent"
	case CodeParentNotFound:
		return "parent not found"
	case CodeChildNotFound:
		return "child not found"
	case CodeOutOfBounds:
		return "out of bounds"
	case CodeUnknownError:
		return "unknown error"
	default:
		return fmt.Sprintf("code(%d)", uint8(c))
	}
}

// Error is the error type every RectManager operation returns on failure.
// It carries the operation name and the rect id involved so a caller
// inspecting it has enough context to log or retry without re-deriving it,
// following the wrapped-error convention the pack uses at its boundary
// layers (e.g. csells-tmux-adapter's "activate pipe-pane: %w").
type Error struct {
	Code Code
	Op   string
	ID   ID
}

func (e *Error) Error() string {
	if e.ID == 0 && e.Op == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s(id=%d): %s", e.Op, e.ID, e.Code)
}

// Is reports whether target is a sentinel Error with the same Code,
// letting callers use errors.Is(err, wrecked.ErrNotFound) instead of type
// assertions.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code Code, op string, id ID) error {
	if code == CodeOK {
		return nil
	}
	return &Error{Code: code, Op: op, ID: id}
}

// Sentinel errors for errors.Is comparisons. Only Code is compared (see
// Error.Is), so the Op/ID fields here are unused placeholders.
var (
	ErrBadColor       = &Error{Code: CodeBadColor}
	ErrInvalidUTF8    = &Error{Code: CodeInvalidUTF8}
	ErrStringOverflow = &Error{Code: CodeStringOverflow}
	ErrNotFound       = &Error{Code: CodeNotFound}
	ErrNoParent       = &Error{Code: CodeNoParent}
	ErrParentNotFound = &Error{Code: CodeParentNotFound}
	ErrChildNotFound  = &Error{Code: CodeChildNotFound}
	ErrOutOfBounds    = &Error{Code: CodeOutOfBounds}
	ErrUnknown        = &Error{Code: CodeUnknownError}
)

// CodeOf extracts the Code from err, or CodeUnknownError if err is not a
// *Error (or CodeOK if err is nil). This is the seam an FFI binding layer
// calls to recover the integer return code spec.md §6 mandates.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeUnknownError
}
