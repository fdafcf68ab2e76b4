// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/header"
	"github.com/inpsyde/multilingual-press-sub005/pkg/requirements"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/serializer"
	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

// Environment variables overriding file values.
const (
	EnvStorePath         = "MLP_STORE_PATH"
	EnvCheckPage         = "MLP_CHECK_PAGE"
	EnvMinRuntimeVersion = "MLP_MIN_RUNTIME_VERSION"
	EnvMinHostVersion    = "MLP_MIN_HOST_VERSION"
	EnvPluginVersion     = "MLP_PLUGIN_VERSION"
)

const (
	// DefaultPluginVersion is the plugin release the gate installs when no
	// version is configured.
	DefaultPluginVersion = "2.4.0"

	// DefaultStorePath is the option store database used when none is configured.
	DefaultStorePath = "mlp.db"
)

// Plugin identifies the gated plugin.
type Plugin struct {
	Name     string `json:"name" yaml:"name"`
	BaseName string `json:"baseName" yaml:"baseName"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Version  string `json:"version" yaml:"version"`
}

// Store locates the option store.
type Store struct {
	Path string `json:"path" yaml:"path"`
}

// Config is the gate configuration.
type Config struct {
	header.Header `json:",inline" yaml:",inline"`

	Plugin       Plugin                    `json:"plugin" yaml:"plugin"`
	CheckPage    string                    `json:"checkPage" yaml:"checkPage"`
	Requirements requirements.Requirements `json:"requirements" yaml:"requirements"`
	Store        Store                     `json:"store" yaml:"store"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Header: header.Header{
			Kind:       header.KindConfig,
			APIVersion: header.DefaultAPIVersion,
		},
		Plugin: Plugin{
			Name:     selfcheck.DefaultPluginName,
			BaseName: selfcheck.DefaultBaseName,
			Version:  DefaultPluginVersion,
		},
		CheckPage:    selfcheck.DefaultCheckPage,
		Requirements: requirements.Default(),
		Store:        Store{Path: DefaultStorePath},
	}
}

// Load reads the file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := serializer.FromFileInto(path, cfg); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to load configuration", err, map[string]any{"path": path})
		}
		slog.Debug("configuration loaded", "path", path)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the MLP_* environment variables.
// Unset or blank variables leave the field alone.
func (c *Config) ApplyEnv() {
	override := func(name string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			slog.Debug("configuration override", "env", name, "value", v)
			*dst = v
		}
	}

	override(EnvStorePath, &c.Store.Path)
	override(EnvCheckPage, &c.CheckPage)
	override(EnvMinRuntimeVersion, &c.Requirements.MinRuntimeVersion)
	override(EnvMinHostVersion, &c.Requirements.MinHostVersion)
	override(EnvPluginVersion, &c.Plugin.Version)
}

// Validate reports the first missing or inconsistent field.
func (c *Config) Validate() error {
	if c.Kind != "" && c.Kind != header.KindConfig {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unexpected document kind",
			map[string]any{"kind": c.Kind.String(), "expected": header.KindConfig.String()})
	}

	required := []struct {
		field string
		value string
	}{
		{"plugin.name", c.Plugin.Name},
		{"plugin.baseName", c.Plugin.BaseName},
		{"plugin.version", c.Plugin.Version},
		{"checkPage", c.CheckPage},
		{"store.path", c.Store.Path},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "missing required configuration value",
				map[string]any{"field": r.field})
		}
	}

	if version.Parse(c.Plugin.Version).IsZero() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "plugin version does not normalize to a release",
			map[string]any{"field": "plugin.version", "value": c.Plugin.Version})
	}
	return nil
}

// CurrentVersion returns the normalized plugin version.
func (c *Config) CurrentVersion() version.Number {
	return version.Parse(c.Plugin.Version)
}

// GateOptions returns the self-check options described by the configuration.
// Callers append their own deactivator.
func (c *Config) GateOptions() []selfcheck.Option {
	return []selfcheck.Option{
		selfcheck.WithPluginName(c.Plugin.Name),
		selfcheck.WithBaseName(c.Plugin.BaseName),
		selfcheck.WithPluginFile(c.Plugin.File),
		selfcheck.WithCheckPage(c.CheckPage),
		selfcheck.WithRequirements(c.Requirements),
	}
}
