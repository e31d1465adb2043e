package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-mjml-api/internal/auth"
	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/mjml"
	"github.com/MKhiriev/go-mjml-api/internal/service"
	"github.com/stretchr/testify/require"
)

type testHandlerOptions struct {
	auth     config.Auth
	render   *config.Render
	maxBody  int64
	compiler mjml.Compiler
}

// newTestHandler builds a Handler with a nop logger. Unset options fall back
// to the native compiler, default render settings and a disabled gate.
func newTestHandler(t *testing.T, opts testHandlerOptions) *Handler {
	t.Helper()

	if opts.compiler == nil {
		opts.compiler = mjml.NewNativeCompiler()
	}
	renderCfg := config.Defaults().Render
	if opts.render != nil {
		renderCfg = *opts.render
	}

	gate, err := auth.NewGate(opts.auth, logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(opts.compiler, renderCfg, logger.Nop())
	return NewHandler(services, gate, opts.maxBody, logger.Nop())
}

func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func serve(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, testHandlerOptions{maxBody: 42})

	require.NotNil(t, h.services)
	require.NotNil(t, h.gate)
	require.Equal(t, int64(42), h.maxBody)
	require.Equal(t, auth.ModeNone, h.gate.Mode())
	require.NotNil(t, h.Init())
}
