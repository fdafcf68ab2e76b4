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

// Package logging configures the slog JSON logger shared by mlpd and mlpctl.
//
// Every record goes to stderr and carries the emitting binary as "module"
// and its build as "version". The level comes from the LOG_LEVEL variable
// or, in mlpctl, the --log-level flag; unknown values mean INFO.
//
//	logging.SetDefaultStructuredLogger("mlpd", version)
//	slog.Info("plugin upgraded", "from", last, "to", current)
//
// At DEBUG level records also carry their source location:
//
//	{"time":"...","level":"DEBUG","source":{"function":"...","file":"...","line":176},
//	 "msg":"migration applied","module":"mlpctl","version":"v0.3.1","migration":"settings"}
//
// Levels used across the tree:
//   - DEBUG for configuration and migration tracing
//   - INFO for install and upgrade runs and server lifecycle
//   - WARN when the gate deactivates the plugin
//   - ERROR for invalid configuration and recovered panics
//
// NewLogLogger bridges packages that still expect a *log.Logger, such as
// http.Server's ErrorLog.
package logging
