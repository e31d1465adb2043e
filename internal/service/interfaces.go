package service

import (
	"context"

	"github.com/MKhiriev/go-mjml-api/models"
)

// RenderService turns a raw request body into a render response.
type RenderService interface {
	// Render interprets raw, compiles the resulting document and returns the
	// response body. Compile failures wrap ErrCompileFailed; when the
	// compiler reported diagnostics the chain also holds *mjml.CompileError.
	Render(ctx context.Context, raw []byte) (models.RenderResponse, error)
}

// RenderServiceWrapper defines middleware composition for RenderService.
// Implementations wrap an existing RenderService to add behavior such as
// logging.
type RenderServiceWrapper interface {
	Wrap(RenderService) RenderService // returns a decorated RenderService applying additional behavior
}
