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
	"slices"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/header"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
)

// Status is a read-only view of the installation recorded in the store.
type Status struct {
	header.Header `json:",inline" yaml:",inline"`

	CurrentVersion string `json:"currentVersion" yaml:"currentVersion"`
	LastVersion    string `json:"lastVersion,omitempty" yaml:"lastVersion,omitempty"`
	SettingsExist  bool   `json:"settingsExist" yaml:"settingsExist"`

	// Upgrade is what the next run would do.
	Upgrade selfcheck.State `json:"upgrade" yaml:"upgrade"`

	// Pending names the migrations an upgrade would apply.
	Pending []string `json:"pending,omitempty" yaml:"pending,omitempty"`

	NetworkActive bool `json:"networkActive" yaml:"networkActive"`
	NoticePending bool `json:"noticePending" yaml:"noticePending"`
}

// Status reports the recorded installation without changing it. baseName
// is looked up in the network-active plugin list.
func (u *Updater) Status(ctx context.Context, baseName string) (*Status, error) {
	st := &Status{CurrentVersion: u.current.String()}
	st.Init(header.KindInstallStatus, header.DefaultAPIVersion, u.toolVer)

	last, found, err := u.LastVersion(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		st.LastVersion = last.String()
	}

	if st.SettingsExist, err = u.SettingsExist(ctx); err != nil {
		return nil, err
	}

	st.Upgrade = selfcheck.IsCurrentVersion(u.current, last, st.SettingsExist)
	if st.Upgrade == selfcheck.NeedsUpgrade {
		for _, m := range u.Pending(last) {
			st.Pending = append(st.Pending, m.Name)
		}
	}

	active, err := store.NetworkActivePlugins(ctx, u.store)
	if err != nil {
		return nil, err
	}
	st.NetworkActive = slices.Contains(active, baseName)

	_, st.NoticePending, err = u.store.Get(ctx, store.KeyDeactivationNotice)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read deactivation notice", err)
	}

	return st, nil
}
