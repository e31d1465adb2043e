// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the authentication gate that sits in front of the
// render endpoint.
//
// A Gate is built once from config.Auth and is read-only afterwards, so a
// single instance is shared by all request goroutines. Authorize returns an
// explicit Decision; the HTTP middleware turns Reject into an empty 401.
//
// Supported modes:
//   - none: every request is admitted;
//   - basic: HTTP Basic credentials (Authorization header or URL userinfo);
//   - token: a shared secret from the "token" query parameter or the
//     X-Authentication-Token header. The query parameter is checked first.
package auth
