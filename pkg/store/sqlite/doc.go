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

// Package sqlite implements store.OptionStore on top of a SQLite database.
//
// Network options live in a sitemeta table keyed by network id and option
// key. The same database holds the plugin's own tables (languages, site
// relations and content relations), created by InstallSchema when the
// plugin is installed for the first time.
//
// The pure Go driver modernc.org/sqlite is used, so no cgo is required.
//
//	s, err := sqlite.Open("/var/lib/mlp/mlp.db")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
package sqlite
