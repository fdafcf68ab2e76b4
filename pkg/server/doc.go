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

// Package server provides the HTTP server used by mlpd.
//
// The server wraps every API handler in the same middleware chain:
//
//   - Prometheus RED metrics (mlp_http_requests_total and friends)
//   - API version negotiation via the Accept header
//     (application/vnd.inpsyde.mlp.v1+json), echoed in X-API-Version
//   - Request ID tracking (X-Request-Id, generated when missing or not a UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// System endpoints bypass the chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 while starting, stopping or when the
//	              configured ready check fails
//	GET /metrics  Prometheus exposition
//	GET /         server name, version and routes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("mlpd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/versions/normalize": handleNormalize,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run shuts down gracefully on SIGINT or SIGTERM, waiting at most
// Config.ShutdownTimeout for in-flight requests.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, MLP_RATE_LIMIT and
// MLP_RATE_LIMIT_BURST from the environment.
//
// # Errors
//
// Error replies share one shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "unknown comparison operator",
//	  "details": {"operator": "~="},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives status and code from a pkg/errors StructuredError.
package server
