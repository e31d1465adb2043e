package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Server {
	return config.Server{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}
}

func TestNewServer_NilHandler(t *testing.T) {
	s, err := NewServer(nil, testConfig(), logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoHandlerProvided)
}

func TestServer_RunOnServesUntilContextDone(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s, err := NewServer(handler, testConfig(), logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.(*server).runOn(ctx, l)
	}()

	resp, err := http.Get("http://" + l.Addr().String() + "/healthz")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.Port = busy.Addr().(*net.TCPAddr).Port

	s, err := NewServer(http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}

func TestServer_RunServerReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.Port = busy.Addr().(*net.TCPAddr).Port

	s, err := NewServer(http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listening on")
}
