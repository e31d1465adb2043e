package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mjml-api/internal/app"
	"github.com/MKhiriev/go-mjml-api/internal/mjml"
	"github.com/MKhiriev/go-mjml-api/internal/service"
	"github.com/MKhiriev/go-mjml-api/models"
)

// errorStatuses is checked in order: busy and timeout errors also wrap
// ErrCompileFailed. A render that never got a compile slot is reported as
// unavailable, every other failure as a server error.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrRenderBusy, http.StatusServiceUnavailable},
	{service.ErrRenderTimeout, http.StatusInternalServerError},
	{service.ErrCompileFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func renderErrorResponse(err error) (int, models.ErrorResponse) {
	resp := models.ErrorResponse{Message: app.MsgFailedToCompile}

	var compileErr *mjml.CompileError
	if errors.As(err, &compileErr) {
		resp.Errors = compileErr.Errors
	}

	return statusFromError(err), resp
}
