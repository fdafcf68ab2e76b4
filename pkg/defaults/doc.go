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

// Package defaults provides centralized configuration constants for the
// version gate, its HTTP service and the CLI.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Gate timeouts: self-check, installer run and option store access
//   - Handler timeouts: HTTP request processing
//   - Server timeouts: HTTP server configuration
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.InstallerRunTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Handler timeouts exceed the timeout of the work they wrap
//   - Server shutdown: 30s for graceful shutdown
package defaults
