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

	"github.com/inpsyde/multilingual-press-sub005/pkg/header"
	"github.com/inpsyde/multilingual-press-sub005/pkg/requirements"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
)

// Report describes a single gate run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// PreInstall is the outcome of the pre-install check.
	PreInstall selfcheck.State `json:"preInstall" yaml:"preInstall"`

	// Upgrade is the version check outcome; unset when the plugin was deactivated.
	Upgrade selfcheck.State `json:"upgrade,omitempty" yaml:"upgrade,omitempty"`

	CurrentVersion string `json:"currentVersion" yaml:"currentVersion"`
	LastVersion    string `json:"lastVersion,omitempty" yaml:"lastVersion,omitempty"`
	SettingsExist  bool   `json:"settingsExist" yaml:"settingsExist"`

	// Messages lists the failed requirements.
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`

	// Applied lists the migrations applied during an upgrade.
	Applied []string `json:"applied,omitempty" yaml:"applied,omitempty"`

	Checks []requirements.CheckResult `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// Run evaluates the gate for env and installs or upgrades as needed.
// A deactivated plugin is reported, not returned as an error; errors come
// only from the option store or failing migrations. The returned report is
// never nil and reflects how far the run got.
func (u *Updater) Run(ctx context.Context, gate *selfcheck.Gate, env selfcheck.Environment) (*Report, error) {
	r := &Report{CurrentVersion: u.current.String()}
	r.Init(header.KindSelfCheckReport, header.DefaultAPIVersion, u.toolVer)

	out := gate.PreInstallCheck(ctx, env)
	r.PreInstall = out.State
	r.Messages = out.Messages
	r.Checks = out.Checks
	if out.State == selfcheck.PluginDeactivated {
		return r, nil
	}

	last, found, err := u.LastVersion(ctx)
	if err != nil {
		return r, err
	}
	if found {
		r.LastVersion = last.String()
	}

	r.SettingsExist, err = u.SettingsExist(ctx)
	if err != nil {
		return r, err
	}

	r.Upgrade = gate.IsCurrentVersion(u.current, last, r.SettingsExist)
	switch r.Upgrade {
	case selfcheck.NeedsInstallation:
		err = u.Install(ctx)
	case selfcheck.NeedsUpgrade:
		r.Applied, err = u.Upgrade(ctx, last)
	}
	return r, err
}
