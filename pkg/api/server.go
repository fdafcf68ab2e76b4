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

package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/inpsyde/multilingual-press-sub005/pkg/config"
	"github.com/inpsyde/multilingual-press-sub005/pkg/logging"
	"github.com/inpsyde/multilingual-press-sub005/pkg/server"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store/sqlite"
)

const (
	name           = "mlpd"
	versionDefault = "dev"

	// EnvConfigPath names the optional configuration file.
	EnvConfigPath = "MLP_CONFIG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/inpsyde/multilingual-press-sub005/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Serve starts the API server and blocks until shutdown.
// Configuration is read from the file named by MLP_CONFIG (if set) and the
// MLP_* environment overrides.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(os.Getenv(EnvConfigPath))
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	st, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open option store", "error", err, "path", cfg.Store.Path)
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			slog.Warn("failed to close option store", "error", cerr)
		}
	}()

	s := NewServer(cfg, st)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the API handlers into a server. Request limits come from
// the server configuration so PORT and the rate limit variables apply too.
// A non-nil st enables the installation route and, when it can be pinged,
// backs the readiness probe.
func NewServer(cfg *config.Config, st store.OptionStore, opts ...server.Option) *server.Server {
	scfg := server.NewConfig()
	hopts := []HandlerOption{
		WithToolVersion(version),
		WithMaxVersions(scfg.MaxVersionsPerRequest),
		WithMaxBodyBytes(scfg.MaxBodyBytes),
	}
	if st != nil {
		hopts = append(hopts, WithStore(st))
	}
	h := NewHandler(cfg, hopts...)

	base := []server.Option{
		server.WithConfig(scfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	}
	if p, ok := st.(pinger); ok {
		base = append(base, server.WithReadyCheck(p.Ping))
	}
	return server.New(append(base, opts...)...)
}
