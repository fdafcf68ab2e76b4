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

	"github.com/inpsyde/multilingual-press-sub005/pkg/header"
	"github.com/inpsyde/multilingual-press-sub005/pkg/requirements"
	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

// LogDeactivator reports deactivations in the log and persists nothing.
var LogDeactivator Deactivator = DeactivatorFunc(func(_ context.Context, d Deactivation) error {
	slog.Info("plugin would be deactivated",
		"plugin", d.BaseName,
		"messages", d.Messages)
	return nil
})

// Installed describes what a previous run left in the option store.
type Installed struct {
	// Last is the last recorded plugin version; zero when never installed.
	Last version.Number

	// SettingsExist reports whether plugin settings are present.
	SettingsExist bool
}

// Evaluation is the answer to both gate questions for one environment.
type Evaluation struct {
	header.Header `json:",inline" yaml:",inline"`

	PreInstall State `json:"preInstall" yaml:"preInstall"`

	// Upgrade is unset when the plugin is deactivated.
	Upgrade State `json:"upgrade,omitempty" yaml:"upgrade,omitempty"`

	CurrentVersion string                     `json:"currentVersion" yaml:"currentVersion"`
	LastVersion    string                     `json:"lastVersion" yaml:"lastVersion"`
	Deactivated    bool                       `json:"deactivated" yaml:"deactivated"`
	Messages       []string                   `json:"messages,omitempty" yaml:"messages,omitempty"`
	Checks         []requirements.CheckResult `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// Evaluate runs PreInstallCheck and, unless the plugin got deactivated,
// IsCurrentVersion. Install and upgrade routines are not run.
func (g *Gate) Evaluate(ctx context.Context, env Environment, current version.Number, in Installed) *Evaluation {
	out := g.PreInstallCheck(ctx, env)

	ev := &Evaluation{
		PreInstall:     out.State,
		CurrentVersion: current.String(),
		LastVersion:    in.Last.String(),
		Deactivated:    out.State == PluginDeactivated,
		Messages:       out.Messages,
		Checks:         out.Checks,
	}
	ev.Init(header.KindSelfCheckReport, header.DefaultAPIVersion, "")

	if !ev.Deactivated {
		ev.Upgrade = g.IsCurrentVersion(current, in.Last, in.SettingsExist)
	}
	return ev
}
