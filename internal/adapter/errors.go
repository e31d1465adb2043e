package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mjml-api/models"
)

var (
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrPayloadTooLarge = errors.New("document too large")
	ErrCompileFailed   = errors.New("compile failed")
	ErrNotFound        = errors.New("not found")
	ErrServerBusy      = errors.New("server busy")

	ErrEmptyAddress = errors.New("empty address")
)

// CompileError is returned by Render when the server answers 500.
type CompileError struct {
	Message string
	Errors  []models.Diagnostic
}

func (e *CompileError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: %s", ErrCompileFailed, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d errors)", ErrCompileFailed, e.Message, len(e.Errors))
}

func (e *CompileError) Unwrap() error {
	return ErrCompileFailed
}
