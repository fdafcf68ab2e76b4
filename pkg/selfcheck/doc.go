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

// Package selfcheck decides whether the plugin may run in the current
// installation and whether its install or upgrade routines are due.
//
// The gate answers two questions, each with an explicit State:
//
//	g := selfcheck.New(
//	    selfcheck.WithBaseName("multilingual-press/multilingual-press.php"),
//	    selfcheck.WithDeactivator(recorder),
//	)
//
//	out := g.PreInstallCheck(ctx, env)
//	switch out.State {
//	case selfcheck.WrongPageForCheck:
//	    // not on plugins.php, nothing was checked
//	case selfcheck.PluginDeactivated:
//	    // requirements failed; out.Messages explains why
//	case selfcheck.InstallationContextOK:
//	    state := g.IsCurrentVersion(current, last, settingsExist)
//	    // NeedsInstallation, NeedsUpgrade or NoUpgradeNeeded
//	}
//
// The gate never returns errors. Failing requirements are a normal outcome
// and side effects are delegated to the Deactivator.
package selfcheck
