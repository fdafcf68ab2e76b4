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

// State is the outcome of a self-check.
type State int

const (
	// WrongPageForCheck means the request is not on the page where the
	// pre-install check runs; nothing was checked.
	WrongPageForCheck State = iota + 1

	// PluginDeactivated means requirements are not met and a deactivation
	// was scheduled.
	PluginDeactivated

	// InstallationContextOK means all requirements are met.
	InstallationContextOK

	// NeedsInstallation means the running version is newer than the stored
	// one and no previous settings exist.
	NeedsInstallation

	// NeedsUpgrade means the running version is newer than the stored one
	// and previous settings exist.
	NeedsUpgrade

	// NoUpgradeNeeded means the running version is not newer than the stored one.
	NoUpgradeNeeded
)

var stateNames = map[State]string{
	WrongPageForCheck:     "wrong_page_for_check",
	PluginDeactivated:     "plugin_deactivated",
	InstallationContextOK: "installation_context_ok",
	NeedsInstallation:     "needs_installation",
	NeedsUpgrade:          "needs_upgrade",
	NoUpgradeNeeded:       "no_upgrade_needed",
}

// String returns the state name.
func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// States returns all states in declaration order.
func States() []State {
	return []State{
		WrongPageForCheck,
		PluginDeactivated,
		InstallationContextOK,
		NeedsInstallation,
		NeedsUpgrade,
		NoUpgradeNeeded,
	}
}
