package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	renderPath = "/v1/render"
	healthPath = "/healthz"

	tokenHeader = "X-Authentication-Token"

	defaultTimeout = 15 * time.Second
)

// Config describes how to reach and authenticate against a render server.
// Token takes precedence over Username/Password when both are set.
type Config struct {
	Address  string
	Token    string
	Username string
	Password string
	Timeout  time.Duration
}

type httpRenderClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPRenderClient constructs an HTTP/REST implementation of
// [RenderClient]. Returns an error if cfg.Address is empty or cannot be
// parsed as a URL.
func NewHTTPRenderClient(cfg Config, logger *logger.Logger) (RenderClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid render server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	switch {
	case cfg.Token != "":
		client.SetHeader(tokenHeader, cfg.Token)
	case cfg.Username != "" || cfg.Password != "":
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}

	return &httpRenderClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Render implements [RenderClient].
func (h *httpRenderClient) Render(ctx context.Context, doc string) (models.RenderResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RenderRequest{MJML: doc}).
		Post(renderPath)
	if err != nil {
		return models.RenderResponse{}, fmt.Errorf("render request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RenderResponse{}, err
	}

	var rendered models.RenderResponse
	if err = json.Unmarshal(resp.Body(), &rendered); err != nil {
		return models.RenderResponse{}, fmt.Errorf("decode render response: %w", err)
	}

	h.logger.Debug().
		Str("mjml_version", rendered.MJMLVersion).
		Int("errors", len(rendered.Errors)).
		Msg("document rendered")

	return rendered, nil
}

// Health implements [RenderClient].
func (h *httpRenderClient) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}
