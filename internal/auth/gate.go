// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-mjml-api/internal/config"
	"github.com/MKhiriev/go-mjml-api/internal/logger"
	"github.com/MKhiriev/go-mjml-api/internal/utils"
)

// Mode is the configured authentication scheme.
type Mode string

const (
	ModeNone  Mode = "none"
	ModeBasic Mode = "basic"
	ModeToken Mode = "token"
)

// Decision is the outcome of Gate.Authorize.
type Decision int

const (
	Reject Decision = iota
	Admit
)

func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	default:
		return "reject"
	}
}

const (
	// TokenQueryParam is the query parameter checked first in token mode.
	TokenQueryParam = "token"
	// TokenHeader is the header checked when the query parameter is absent.
	TokenHeader = "X-Authentication-Token"

	// PrincipalAnonymous is reported for requests admitted without credentials.
	PrincipalAnonymous = "anonymous"
	// PrincipalToken is reported for requests admitted by the shared token.
	PrincipalToken = "token"
)

// Gate decides whether a request may reach the render handler.
type Gate interface {
	// Authorize inspects r and returns the decision together with the name
	// of the admitted principal. The principal is empty on Reject.
	Authorize(r *http.Request) (Decision, string)
	// Mode reports the effective scheme; ModeNone when auth is disabled.
	Mode() Mode
}

type gate struct {
	mode     Mode
	username string
	password string
	secret   string
}

// NewGate builds a Gate from cfg.
//
// A disabled gate, or one of type "none", admits everything. A basic or token
// gate whose credentials are missing is still built but rejects every
// request; a warning is logged so the misconfiguration is visible. An unknown
// type yields ErrUnknownMode.
func NewGate(cfg config.Auth, log *logger.Logger) (Gate, error) {
	g := &gate{
		mode:     Mode(cfg.Type),
		username: cfg.BasicAuth.Username,
		password: cfg.BasicAuth.Password,
		secret:   cfg.Token.Secret,
	}

	if !cfg.IsEnabled() || g.mode == "" {
		g.mode = ModeNone
	}

	switch g.mode {
	case ModeNone:
	case ModeBasic:
		if g.username == "" || g.password == "" {
			log.Warn().Err(ErrMissingCredentials).Str("mode", string(g.mode)).
				Msg("basic auth enabled without username/password, every request will be rejected")
		}
	case ModeToken:
		if g.secret == "" {
			log.Warn().Err(ErrMissingCredentials).Str("mode", string(g.mode)).
				Msg("token auth enabled without a secret, every request will be rejected")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Type)
	}

	return g, nil
}

func (g *gate) Mode() Mode {
	return g.mode
}

// Authorize dispatches on the mode exactly once. Each branch returns, so a
// request can never be evaluated by two modes in the same pass.
func (g *gate) Authorize(r *http.Request) (Decision, string) {
	switch g.mode {
	case ModeNone:
		return Admit, PrincipalAnonymous
	case ModeBasic:
		return g.authorizeBasic(r)
	case ModeToken:
		return g.authorizeToken(r)
	default:
		return Reject, ""
	}
}

func (g *gate) authorizeBasic(r *http.Request) (Decision, string) {
	username, password, ok := r.BasicAuth()
	if !ok || g.username == "" || g.password == "" {
		return Reject, ""
	}

	// both factors are always compared
	userOK := utils.SafeCompare(username, g.username)
	passOK := utils.SafeCompare(password, g.password)
	if !(userOK && passOK) {
		return Reject, ""
	}

	return Admit, username
}

func (g *gate) authorizeToken(r *http.Request) (Decision, string) {
	token := tokenFromRequest(r)
	if token == "" || g.secret == "" {
		return Reject, ""
	}

	if !utils.SafeCompare(token, g.secret) {
		return Reject, ""
	}

	return Admit, PrincipalToken
}

// tokenFromRequest returns the query parameter if set, else the header.
func tokenFromRequest(r *http.Request) string {
	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		return token
	}
	return r.Header.Get(TokenHeader)
}
