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

// Package installer runs the plugin's install and upgrade routines once the
// self-check gate has decided they are due.
//
// An Updater owns the option store, the running version and an ordered set
// of migrations. Run ties everything together:
//
//	u := installer.NewUpdater(s, version.Parse("2.4.0"),
//	    installer.WithMigrations(installer.DefaultMigrations()...),
//	)
//	report, err := u.Run(ctx, gate, env)
//
// Run performs the pre-install check, stops when the plugin was
// deactivated, reads the last installed version and the presence of
// settings from the store and then installs, upgrades or does nothing.
//
// Migrations with last < Version <= current are applied in version order.
// A failing migration aborts the upgrade and leaves the stored version
// untouched so the upgrade is retried on the next run.
package installer
