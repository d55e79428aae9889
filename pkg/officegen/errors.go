package officegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/models"
)

// ErrInvalidStructure indicates IR that fails schema validation.
var ErrInvalidStructure = models.ErrInvalidStructure

// ErrUnknownDocumentType indicates a document type with no engine.
var ErrUnknownDocumentType = errors.New("unknown document type")

// ErrRenderFailure indicates the engine or the output sink failed.
var ErrRenderFailure = errors.New("render failure")

// Error kinds reported in Result.ErrorKind.
const (
	KindInvalidStructure    = "InvalidStructure"
	KindUnknownDocumentType = "UnknownDocumentType"
	KindRenderFailure       = "RenderFailure"
	KindCanceled            = "Canceled"
)

// RenderError represents a failure while rendering or storing a container.
type RenderError struct {
	DocType   DocType
	Component string // "page", "heading", "paragraph", "sheet", "rows", "formulas", "layout", "slides", "container", "output"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in %s (%s): %v", e.DocType, e.Component, e.Err)
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRenderFailure, e.Err}
}

// NewRenderError creates a new RenderError.
func NewRenderError(docType DocType, component string, err error) *RenderError {
	return &RenderError{
		DocType:   docType,
		Component: component,
		Err:       err,
	}
}

// ErrorKind classifies err into one of the Kind constants. It returns "" for nil.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidStructure):
		return KindInvalidStructure
	case errors.Is(err, ErrUnknownDocumentType):
		return KindUnknownDocumentType
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindRenderFailure
	}
}
