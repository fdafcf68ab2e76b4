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

package selfcheck

import (
	"context"
	"log/slog"

	"github.com/inpsyde/multilingual-press-sub005/pkg/requirements"
	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

const (
	// DefaultCheckPage is the admin page on which plugins get activated.
	DefaultCheckPage = "plugins.php"

	// DefaultPluginName is the human-readable plugin name.
	DefaultPluginName = "MultilingualPress"

	// DefaultBaseName is the plugin's base name relative to the plugins directory.
	DefaultBaseName = "multilingual-press/multilingual-press.php"
)

// Environment describes the request the gate is evaluated for.
type Environment struct {
	// Page is the current admin page identifier (e.g., "plugins.php").
	Page string `json:"page" yaml:"page"`

	requirements.Environment `json:",inline" yaml:",inline"`
}

// Deactivation describes a scheduled plugin deactivation.
type Deactivation struct {
	PluginName string   `json:"pluginName" yaml:"pluginName"`
	BaseName   string   `json:"baseName" yaml:"baseName"`
	PluginFile string   `json:"pluginFile,omitempty" yaml:"pluginFile,omitempty"`
	Messages   []string `json:"messages" yaml:"messages"`
}

// Deactivator performs the deactivation side effect on behalf of the gate.
type Deactivator interface {
	Deactivate(ctx context.Context, d Deactivation) error
}

// DeactivatorFunc adapts a function to the Deactivator interface.
type DeactivatorFunc func(ctx context.Context, d Deactivation) error

// Deactivate calls f(ctx, d).
func (f DeactivatorFunc) Deactivate(ctx context.Context, d Deactivation) error {
	return f(ctx, d)
}

// Outcome is the result of the pre-install check.
type Outcome struct {
	State    State                      `json:"state" yaml:"state"`
	Messages []string                   `json:"messages,omitempty" yaml:"messages,omitempty"`
	Checks   []requirements.CheckResult `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// Gate decides whether the plugin may run and whether install or upgrade
// routines are due. It holds no state between evaluations and is safe for
// concurrent use as long as its Deactivator is.
type Gate struct {
	pluginName   string
	baseName     string
	pluginFile   string
	checkPage    string
	requirements requirements.Requirements
	deactivator  Deactivator
}

// Option is a functional option for configuring Gate instances.
type Option func(*Gate)

// WithPluginName sets the name used in deactivation notices.
func WithPluginName(name string) Option {
	return func(g *Gate) {
		g.pluginName = name
	}
}

// WithBaseName sets the plugin base name used for the network activation check.
func WithBaseName(baseName string) Option {
	return func(g *Gate) {
		g.baseName = baseName
	}
}

// WithPluginFile sets the plugin's main file path.
func WithPluginFile(file string) Option {
	return func(g *Gate) {
		g.pluginFile = file
	}
}

// WithCheckPage sets the page on which the pre-install check runs.
func WithCheckPage(page string) Option {
	return func(g *Gate) {
		g.checkPage = page
	}
}

// WithRequirements sets the requirements checked before installation.
func WithRequirements(r requirements.Requirements) Option {
	return func(g *Gate) {
		g.requirements = r
	}
}

// WithDeactivator sets the collaborator that performs deactivations.
func WithDeactivator(d Deactivator) Option {
	return func(g *Gate) {
		g.deactivator = d
	}
}

// New creates a Gate with the plugin defaults, modified by opts.
func New(opts ...Option) *Gate {
	g := &Gate{
		pluginName:   DefaultPluginName,
		baseName:     DefaultBaseName,
		checkPage:    DefaultCheckPage,
		requirements: requirements.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PreInstallCheck runs the requirements check when env is on the check
// page. Non-compliance schedules a deactivation and yields
// PluginDeactivated; it is never reported as an error. A failing
// deactivator is logged only.
func (g *Gate) PreInstallCheck(ctx context.Context, env Environment) Outcome {
	if env.Page != g.checkPage {
		return Outcome{State: WrongPageForCheck}
	}

	res := g.requirements.Check(g.baseName, env.Environment)
	if res.Compliant {
		return Outcome{State: InstallationContextOK, Checks: res.Checks}
	}

	msgs := res.Messages()
	if g.deactivator != nil {
		d := Deactivation{
			PluginName: g.pluginName,
			BaseName:   g.baseName,
			PluginFile: g.pluginFile,
			Messages:   msgs,
		}
		if err := g.deactivator.Deactivate(ctx, d); err != nil {
			slog.Error("failed to schedule plugin deactivation",
				"plugin", g.baseName,
				"error", err)
		}
	}

	slog.Warn("plugin requirements not met",
		"plugin", g.baseName,
		"failures", len(msgs))

	return Outcome{State: PluginDeactivated, Messages: msgs, Checks: res.Checks}
}

// IsCurrentVersion compares the running version with the last stored one.
// settingsExist reports whether a previous installation left settings behind.
func (g *Gate) IsCurrentVersion(current, last version.Number, settingsExist bool) State {
	return IsCurrentVersion(current, last, settingsExist)
}

// IsCurrentVersion is the stateless form of Gate.IsCurrentVersion.
func IsCurrentVersion(current, last version.Number, settingsExist bool) State {
	if current.Compare(last) <= 0 {
		return NoUpgradeNeeded
	}
	if !settingsExist {
		return NeedsInstallation
	}
	return NeedsUpgrade
}

// CheckPage returns the page the pre-install check runs on.
func (g *Gate) CheckPage() string {
	return g.checkPage
}

// BaseName returns the plugin base name.
func (g *Gate) BaseName() string {
	return g.baseName
}
