// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	// base is the number of leading layers that sit below the config file.
	base int
	err  error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	// mergo never lets an explicit false override true, so the tri-state
	// booleans are resolved by hand: the last layer that sets one wins.
	config.Render.KeepComments = lastSet(b.configs, func(c *StructuredConfig) *bool { return c.Render.KeepComments })
	config.Render.Beautify = lastSet(b.configs, func(c *StructuredConfig) *bool { return c.Render.Beautify })
	config.Render.Minify = lastSet(b.configs, func(c *StructuredConfig) *bool { return c.Render.Minify })
	config.Auth.Enabled = lastSet(b.configs, func(c *StructuredConfig) *bool { return c.Auth.Enabled })

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// lastSet returns a copy of the value chosen by field in the last layer that
// sets it, or nil when no layer does.
func lastSet(configs []*StructuredConfig, field func(*StructuredConfig) *bool) *bool {
	var resolved *bool
	for _, cfg := range configs {
		if v := field(cfg); v != nil {
			resolved = Bool(*v)
		}
	}
	return resolved
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	b.base++
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withFile loads the config file named by the last layer that sets FilePath
// and slots it directly above the base layers, so env and flags still win.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = slices.Insert(b.configs, b.base, fileCfg)
	return b
}
