// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a config file. The same
// structure is accepted as JSON or YAML; the format is picked by extension.
type StructuredFileConfig struct {
	Server struct {
		Host            string   `json:"host" yaml:"host"`
		Port            int      `json:"port" yaml:"port"`
		MaxBody         string   `json:"max_body" yaml:"max_body"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Render struct {
		KeepComments    *bool    `json:"keep_comments" yaml:"keep_comments"`
		Beautify        *bool    `json:"beautify" yaml:"beautify"`
		Minify          *bool    `json:"minify" yaml:"minify"`
		FilePath        string   `json:"file_path" yaml:"file_path"`
		ValidationLevel string   `json:"validation_level" yaml:"validation_level"`
		Backend         string   `json:"backend" yaml:"backend"`
		CLIPath         string   `json:"cli_path" yaml:"cli_path"`
		Timeout         Duration `json:"timeout" yaml:"timeout"`
		MaxConcurrent   int      `json:"max_concurrent" yaml:"max_concurrent"`
	} `json:"render,omitempty" yaml:"render,omitempty"`

	Auth struct {
		Enabled   *bool  `json:"enabled" yaml:"enabled"`
		Type      string `json:"type" yaml:"type"`
		BasicAuth struct {
			Username string `json:"username" yaml:"username"`
			Password string `json:"password" yaml:"password"`
		} `json:"basic_auth" yaml:"basic_auth"`
		Token struct {
			Secret string `json:"secret" yaml:"secret"`
		} `json:"token" yaml:"token"`
	} `json:"authentication,omitempty" yaml:"authentication,omitempty"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Server: Server{
			Host:            fileCfg.Server.Host,
			Port:            fileCfg.Server.Port,
			MaxBody:         fileCfg.Server.MaxBody,
			ShutdownTimeout: time.Duration(fileCfg.Server.ShutdownTimeout),
		},
		Render: Render{
			KeepComments:    fileCfg.Render.KeepComments,
			Beautify:        fileCfg.Render.Beautify,
			Minify:          fileCfg.Render.Minify,
			FilePath:        fileCfg.Render.FilePath,
			ValidationLevel: fileCfg.Render.ValidationLevel,
			Backend:         fileCfg.Render.Backend,
			CLIPath:         fileCfg.Render.CLIPath,
			Timeout:         time.Duration(fileCfg.Render.Timeout),
			MaxConcurrent:   fileCfg.Render.MaxConcurrent,
		},
		Auth: Auth{
			Enabled: fileCfg.Auth.Enabled,
			Type:    fileCfg.Auth.Type,
			BasicAuth: BasicAuth{
				Username: fileCfg.Auth.BasicAuth.Username,
				Password: fileCfg.Auth.BasicAuth.Password,
			},
			Token: Token{
				Secret: fileCfg.Auth.Token.Secret,
			},
		},
		Log: Log{
			Level: fileCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML, and from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
