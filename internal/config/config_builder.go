// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs     []*StructuredConfig
	// defaultMode is used when no source sets App.Mode. It also picks the
	// .env files when APP_MODE is unset.
	defaultMode Mode
	err         error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:     make([]*StructuredConfig, 0, 4),
		defaultMode: ModeDevelopment,
	}
}

// build merges the collected configs in order (later non-zero fields win),
// fills the remaining zero fields from [Defaults] and validates the result.
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

	if config.App.Mode == "" {
		config.App.Mode = b.defaultMode
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withDefaultMode must come before withDotEnv for the .env file selection
// to follow it.
func (b *configBuilder) withDefaultMode(mode Mode) *configBuilder {
	if _, err := ParseMode(string(mode)); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.defaultMode = mode
	return b
}

func (b *configBuilder) withDotEnv(dir string) *configBuilder {
	if err := loadDotEnv(dir, b.defaultMode); err != nil {
		b.err = errors.Join(b.err, err)
	}

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

func (b *configBuilder) withFlags(name string, args []string) *configBuilder {
	flags, err := ParseFlags(name, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
