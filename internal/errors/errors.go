// Package errors defines the coded errors returned by the generation pipeline.
// Every failure carries the pipeline stage it came from and, where one exists,
// the identifier (capability name, import key) that triggered it.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of pipeline failure.
type ErrorCode string

const (
	ErrEmptySelection      ErrorCode = "EMPTY_SELECTION"
	ErrUnknownCapability   ErrorCode = "UNKNOWN_CAPABILITY"
	ErrUnresolvedImportKey ErrorCode = "UNRESOLVED_IMPORT_KEY"
	ErrTypeErasureFailed   ErrorCode = "TYPE_ERASURE_FAILED"
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrInternal            ErrorCode = "INTERNAL"
)

// Pipeline stages reported in InjectError.Stage.
const (
	StageValidate = "validate"
	StageResolve  = "resolve"
	StageAssemble = "assemble"
	StageErase    = "erase"
	StageConvert  = "convert"
	StageCatalog  = "catalog"
)

// InjectError is a structured pipeline error.
type InjectError struct {
	Code       ErrorCode
	Stage      string
	Identifier string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *InjectError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Stage != "" {
		msg = fmt.Sprintf("%s [stage=%s]", msg, e.Stage)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *InjectError) Unwrap() error {
	return e.Err
}

// NewEmptySelection reports that no capabilities were chosen.
func NewEmptySelection() *InjectError {
	return &InjectError{
		Code:    ErrEmptySelection,
		Stage:   StageValidate,
		Message: "no capabilities selected; choose at least one",
	}
}

// NewUnknownCapability reports a selection entry that is not in the registry.
func NewUnknownCapability(name string) *InjectError {
	return &InjectError{
		Code:       ErrUnknownCapability,
		Stage:      StageValidate,
		Identifier: name,
		Message:    fmt.Sprintf("unknown capability %q", name),
	}
}

// NewUnresolvedImportKey reports a capability that references an import key
// missing from the import catalog. This is a catalog defect, not user error.
func NewUnresolvedImportKey(capability, key string) *InjectError {
	return &InjectError{
		Code:       ErrUnresolvedImportKey,
		Stage:      StageResolve,
		Identifier: key,
		Message:    fmt.Sprintf("capability %q references import key %q which is not in the import catalog", capability, key),
	}
}

// NewTypeErasureFailed wraps a failure of the external type eraser.
func NewTypeErasureFailed(err error) *InjectError {
	return &InjectError{
		Code:    ErrTypeErasureFailed,
		Stage:   StageErase,
		Message: "type erasure failed",
		Err:     err,
	}
}

// NewInvalidRequest reports malformed input that is not covered by a more
// specific code (bad language name, invalid catalog document, ...).
func NewInvalidRequest(stage, msg string) *InjectError {
	return &InjectError{
		Code:    ErrInvalidRequest,
		Stage:   stage,
		Message: msg,
	}
}

// NewInternal wraps an unexpected failure.
func NewInternal(stage string, err error) *InjectError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &InjectError{
		Code:    ErrInternal,
		Stage:   stage,
		Message: msg,
	}
}

// Is reports whether err, or any error it wraps, is an InjectError with the
// given code.
func Is(err error, code ErrorCode) bool {
	var ie *InjectError
	if stderrors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}

// As returns the first InjectError in err's chain.
func As(err error) (*InjectError, bool) {
	var ie *InjectError
	if stderrors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
