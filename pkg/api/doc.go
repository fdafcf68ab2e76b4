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

// Package api provides the HTTP API server for the version gate.
//
// The server exposes the version normalizer, the comparator and the
// self-check gate over HTTP. It opens the configured SQLite option store but
// never writes options: the self-check endpoint reports what a run would do
// and the installation endpoint reads the recorded state.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/inpsyde/multilingual-press-sub005/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/versions/normalize?v=4.1&v=4.1.12.25[&sort=true]
//   - GET /v1/versions/compare?a=4.1&b=4.1-dev[&op=>=]
//   - POST /v1/selfcheck - evaluate the gate for an environment (JSON or YAML body)
//   - GET /v1/installation - recorded versions, pending migrations, notices
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness, including an option store ping
//   - GET /metrics - Prometheus metrics
//
// Example self-check request:
//
//	curl -X POST http://localhost:8080/v1/selfcheck \
//	  -H "Content-Type: application/json" \
//	  -d '{"environment":{"page":"plugins.php","hostVersion":"4.7",
//	       "runtimeVersion":"7.0","multisite":true,
//	       "networkActivePlugins":["multilingual-press/multilingual-press.php"]},
//	       "lastVersion":"2.3.0","settingsExist":true}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - MLP_RATE_LIMIT, MLP_RATE_LIMIT_BURST: request rate limit
//   - MLP_STORE_PATH: option store database (default: mlp.db)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - MLP_CONFIG: gate configuration file (see pkg/config)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/inpsyde/multilingual-press-sub005/pkg/api.version=1.0.0'"
package api
