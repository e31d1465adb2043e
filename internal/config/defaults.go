// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used when no other source sets a value.
// Values mirror the previous render API: listen on 0.0.0.0:80, soft
// validation, 1mb bodies, authentication disabled. MaxConcurrent stays zero so
// the render service sizes itself from GOMAXPROCS after automaxprocs ran.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Host:            "0.0.0.0",
			Port:            80,
			MaxBody:         "1mb",
			ShutdownTimeout: 15 * time.Second,
		},
		Render: Render{
			ValidationLevel: "soft",
			Backend:         "native",
			CLIPath:         "mjml",
			Timeout:         10 * time.Second,
			FilePath:        ".",
		},
		Auth: Auth{
			Type: "none",
		},
		Log: Log{
			Level: "info",
		},
	}
}
