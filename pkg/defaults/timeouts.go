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

package defaults

import "time"

// Gate timeouts for the self-check and installer run.
const (
	// SelfCheckTimeout bounds a single pre-install check including the
	// deactivation side effect.
	SelfCheckTimeout = 10 * time.Second

	// InstallerRunTimeout bounds a full install or upgrade run.
	// Should exceed SelfCheckTimeout since a run includes a check.
	InstallerRunTimeout = 2 * time.Minute

	// StoreOperationTimeout bounds a single option store read or write.
	StoreOperationTimeout = 5 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// ReadyCheckTimeout bounds the readiness probe, e.g. an option store ping.
	ReadyCheckTimeout = 2 * time.Second

	// InstallationHandlerTimeout is the timeout for installation status requests.
	InstallationHandlerTimeout = 5 * time.Second

	// SelfCheckHandlerTimeout is the timeout for self-check requests.
	// Should exceed SelfCheckTimeout to allow error handling.
	SelfCheckHandlerTimeout = 15 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Request body limits.
const (
	// MaxRequestBodyBytes caps self-check request bodies.
	MaxRequestBodyBytes = 1 << 20

	// MaxVersionsPerRequest caps the number of versions in a normalize request.
	MaxVersionsPerRequest = 100
)
