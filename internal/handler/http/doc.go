// Package http implements the HTTP transport layer of the MJML render API.
//
// It exposes route wiring, the render and health handlers, and the
// middleware chain in front of them. Request tracing, access logging,
// response compression, the body size limit and the authentication gate are
// handled here before requests are delegated to the service layer.
//
// Routes:
//
//	POST /v1/render                    body limit, auth gate, render
//	GET  /healthz, /livez, /readyz     200 with an empty body
//	anything else                      404 {"message": "..."}
package http
