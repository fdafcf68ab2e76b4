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

package server

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/inpsyde/multilingual-press-sub005/pkg/defaults"
)

// Environment variables read by NewConfig. Unparseable or non-positive
// values keep the default.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit       = "MLP_RATE_LIMIT"
	EnvRateLimitBurst  = "MLP_RATE_LIMIT_BURST"
)

const (
	defaultPort           = 8080
	defaultRateLimit      = 100
	defaultRateLimitBurst = 200
)

// Config is the HTTP server configuration.
type Config struct {
	Name    string
	Version string

	// Handlers maps route patterns to handlers; each one runs behind the
	// middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	RateLimit      rate.Limit // tokens per second
	RateLimitBurst int

	// Request limits handed to the API handlers.
	MaxVersionsPerRequest int
	MaxBodyBytes          int64

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns the defaults with environment overrides applied.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:                  "server",
		Version:               "undefined",
		Port:                  defaultPort,
		RateLimit:             defaultRateLimit,
		RateLimitBurst:        defaultRateLimitBurst,
		MaxVersionsPerRequest: defaults.MaxVersionsPerRequest,
		MaxBodyBytes:          defaults.MaxRequestBodyBytes,
		ReadTimeout:           defaults.ServerReadTimeout,
		ReadHeaderTimeout:     defaults.ServerReadHeaderTimeout,
		WriteTimeout:          defaults.ServerWriteTimeout,
		IdleTimeout:           defaults.ServerIdleTimeout,
		ShutdownTimeout:       defaults.ServerShutdownTimeout,
	}

	if n, ok := positiveEnvInt(EnvPort); ok {
		cfg.Port = n
	}
	if n, ok := positiveEnvInt(EnvShutdownTimeout); ok {
		cfg.ShutdownTimeout = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt(EnvRateLimit); ok {
		cfg.RateLimit = rate.Limit(n)
	}
	if n, ok := positiveEnvInt(EnvRateLimitBurst); ok {
		cfg.RateLimitBurst = n
	}

	return cfg
}

func positiveEnvInt(name string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
