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

package installer

import (
	"context"
	"log/slog"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

// Settings is the plugin settings document stored under store.KeySettings.
type Settings struct {
	Modules map[string]bool `json:"modules" yaml:"modules"`
}

// DefaultSettings returns the settings written on a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		Modules: map[string]bool{
			"alternative_language_title": false,
			"hreflang":                   true,
			"language_manager":           true,
			"quicklink":                  true,
			"redirect":                   true,
			"trasher":                    true,
			"user_admin_language":        false,
		},
	}
}

// Updater installs and upgrades the plugin data in an option store.
type Updater struct {
	store      store.OptionStore
	current    version.Number
	migrations []Migration
	settings   Settings
	toolVer    string
}

// UpdaterOption is a functional option for configuring Updater instances.
type UpdaterOption func(*Updater)

// WithMigrations sets the upgrade steps. They are ordered by version.
func WithMigrations(ms ...Migration) UpdaterOption {
	return func(u *Updater) {
		u.migrations = sortMigrations(ms)
	}
}

// WithSettings sets the settings written on installation.
func WithSettings(s Settings) UpdaterOption {
	return func(u *Updater) {
		u.settings = s
	}
}

// WithToolVersion sets the version recorded in report headers.
func WithToolVersion(v string) UpdaterOption {
	return func(u *Updater) {
		u.toolVer = v
	}
}

// NewUpdater returns an Updater for the running plugin version current.
func NewUpdater(s store.OptionStore, current version.Number, opts ...UpdaterOption) *Updater {
	u := &Updater{
		store:    s,
		current:  current,
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Current returns the running plugin version.
func (u *Updater) Current() version.Number {
	return u.current
}

// LastVersion reads the last installed version. A missing value yields the
// zero version and false.
func (u *Updater) LastVersion(ctx context.Context) (version.Number, bool, error) {
	raw, ok, err := u.store.Get(ctx, store.KeyVersion)
	if err != nil {
		return version.Number{}, false, errors.Wrap(errors.ErrCodeUnavailable, "failed to read installed version", err)
	}
	if !ok {
		return version.Number{}, false, nil
	}
	return version.Parse(raw), true, nil
}

// SettingsExist reports whether a previous installation left settings behind.
func (u *Updater) SettingsExist(ctx context.Context) (bool, error) {
	_, ok, err := u.store.Get(ctx, store.KeySettings)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeUnavailable, "failed to read settings", err)
	}
	return ok, nil
}

// Pending returns the migrations that apply when upgrading from last,
// i.e. those with last < Version <= current, in version order.
func (u *Updater) Pending(last version.Number) []Migration {
	var out []Migration
	for _, m := range u.migrations {
		if last.Less(m.Version) && m.Version.Compare(u.current) <= 0 {
			out = append(out, m)
		}
	}
	return out
}

// Install creates the plugin schema, writes default settings unless some
// already exist and records the running version.
func (u *Updater) Install(ctx context.Context) error {
	if err := u.installSchema(ctx); err != nil {
		return err
	}

	exists, err := u.SettingsExist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := store.SetJSON(ctx, u.store, store.KeySettings, u.settings); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "failed to write default settings", err)
		}
	}

	if err := u.recordVersion(ctx); err != nil {
		return err
	}

	slog.Info("plugin installed", "version", u.current.String())
	return nil
}

// Upgrade applies every pending migration since last and records the
// running version. It returns the names of the applied migrations.
// On failure the stored version is left untouched.
func (u *Updater) Upgrade(ctx context.Context, last version.Number) ([]string, error) {
	if err := u.installSchema(ctx); err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range u.Pending(last) {
		if err := ctx.Err(); err != nil {
			return applied, errors.Wrap(errors.ErrCodeTimeout, "upgrade interrupted", err)
		}
		if err := m.Apply(ctx, u.store); err != nil {
			return applied, errors.WrapWithContext(errors.ErrCodeInternal, "migration failed", err,
				map[string]any{
					"migration": m.Name,
					"version":   m.Version.String(),
				})
		}
		slog.Debug("migration applied", "migration", m.Name, "version", m.Version.String())
		applied = append(applied, m.Name)
	}

	if err := u.recordVersion(ctx); err != nil {
		return applied, err
	}

	slog.Info("plugin upgraded",
		"from", last.String(),
		"to", u.current.String(),
		"migrations", len(applied))
	return applied, nil
}

func (u *Updater) installSchema(ctx context.Context) error {
	si, ok := u.store.(store.SchemaInstaller)
	if !ok {
		return nil
	}
	if err := si.InstallSchema(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to install schema", err)
	}
	return nil
}

func (u *Updater) recordVersion(ctx context.Context) error {
	if err := u.store.Set(ctx, store.KeyVersion, u.current.String()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to record installed version", err)
	}
	return nil
}
