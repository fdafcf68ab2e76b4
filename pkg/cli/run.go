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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/inpsyde/multilingual-press-sub005/pkg/config"
	"github.com/inpsyde/multilingual-press-sub005/pkg/deactivation"
	"github.com/inpsyde/multilingual-press-sub005/pkg/defaults"
	"github.com/inpsyde/multilingual-press-sub005/pkg/installer"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store/sqlite"
)

func storeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "store",
		Aliases: []string{"s"},
		Usage:   "Option store database path (default: the configured store path)",
	}
}

// openStore opens the SQLite option store named by --store or the configuration.
func openStore(cmd *cli.Command, cfg *config.Config) (*sqlite.Store, error) {
	path := cfg.Store.Path
	if cmd.IsSet("store") {
		path = cmd.String("store")
	}

	s, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open option store %q: %w", path, err)
	}
	slog.Debug("option store opened", "path", path)
	return s, nil
}

func closeStore(s *sqlite.Store) {
	if err := s.Close(); err != nil {
		slog.Warn("failed to close option store", "error", err)
	}
}

func runCmd() *cli.Command {
	flags := append(environmentFlags(),
		storeFlag(),
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Run against an empty in-memory option store; nothing is persisted",
		},
		&cli.BoolFlag{
			Name:  "fail-on-error",
			Usage: "Exit with an error when the plugin got deactivated",
		},
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Run the gate and install or upgrade the plugin data",
		Description: `Runs the full gate against the option store:

  1. pre-install requirements check; on failure the plugin is deactivated,
     a notice is stored and the plugin is removed from the network-active list
     (without network flags the network-active list is read from the store)
  2. version check against the recorded version and settings
  3. install (schema, default settings, version) or upgrade (pending
     migrations, version) when due

The run report lists every state, failed requirement and applied migration.

Examples:
  mlpctl run --store /var/lib/mlp/options.db --host-version 4.7 --runtime-version 7.0 \
    --multisite --network-activated
  mlpctl run -c mlp.yaml -e env.yaml -t json`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			env, err := buildEnvironment(cmd, cfg)
			if err != nil {
				return err
			}

			var opts store.OptionStore
			if cmd.Bool("dry-run") {
				opts = store.NewMemory()
			} else {
				s, err := openStore(cmd, cfg)
				if err != nil {
					return err
				}
				defer closeStore(s)
				opts = s
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.InstallerRunTimeout)
			defer cancel()

			if !networkListGiven(cmd, env) {
				if env.NetworkActivePlugins, err = store.NetworkActivePlugins(ctx, opts); err != nil {
					return err
				}
			}

			gate := selfcheck.New(append(cfg.GateOptions(),
				selfcheck.WithDeactivator(deactivation.NewRecorder(opts)))...)
			u := newUpdater(opts, cfg)

			report, runErr := u.Run(ctx, gate, env)
			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}
			if runErr != nil {
				return fmt.Errorf("gate run failed: %w", runErr)
			}

			if report.PreInstall == selfcheck.PluginDeactivated && cmd.Bool("fail-on-error") {
				return fmt.Errorf("plugin deactivated: %d requirement(s) not met", len(report.Messages))
			}
			return nil
		},
	}
}

func newUpdater(s store.OptionStore, cfg *config.Config) *installer.Updater {
	return installer.NewUpdater(s, cfg.CurrentVersion(),
		installer.WithMigrations(installer.DefaultMigrations()...),
		installer.WithToolVersion(version))
}

// networkListGiven reports whether flags or the environment file supplied
// the network-active plugin list.
func networkListGiven(cmd *cli.Command, env selfcheck.Environment) bool {
	return env.NetworkActivePlugins != nil || cmd.IsSet("network-active") || cmd.Bool("network-activated")
}

func activateCmd() *cli.Command {
	return &cli.Command{
		Name:  "activate",
		Usage: "Activate the plugin network-wide in the option store",
		Description: `Adds the configured plugin base name (or --base-name) to the network-active
plugin list, so that "mlpctl run" without network flags passes the
network activation requirement.`,
		Flags: []cli.Flag{
			storeFlag(),
			&cli.StringFlag{
				Name:  "base-name",
				Usage: "Plugin base name (default: the configured base name)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			baseName := cfg.Plugin.BaseName
			if cmd.IsSet("base-name") {
				baseName = cmd.String("base-name")
			}

			s, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeStore(s)

			ctx, cancel := context.WithTimeout(ctx, defaults.StoreOperationTimeout)
			defer cancel()

			changed, err := store.ActivateNetwork(ctx, s, baseName)
			if err != nil {
				return err
			}
			slog.Info("plugin network-activated", "plugin", baseName, "changed", changed)
			return nil
		},
	}
}

func noticeCmd() *cli.Command {
	return &cli.Command{
		Name:  "notice",
		Usage: "Show and clear the pending deactivation notice",
		Description: `Prints the notice stored by the last deactivation and removes it, so each
notice is shown once. Prints nothing when no notice is pending.`,
		Flags: []cli.Flag{
			storeFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeStore(s)

			ctx, cancel := context.WithTimeout(ctx, defaults.StoreOperationTimeout)
			defer cancel()

			n, err := deactivation.Pending(ctx, s)
			if err != nil {
				return err
			}
			if n == nil {
				slog.Info("no pending deactivation notice")
				return nil
			}
			return writeOutput(ctx, cmd, n)
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the installation recorded in the option store",
		Description: `Reports the recorded and running versions, what the next "mlpctl run"
would do (including pending migrations), whether the plugin is network-active
and whether a deactivation notice is waiting. Nothing is written.`,
		Flags: []cli.Flag{
			storeFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeStore(s)

			ctx, cancel := context.WithTimeout(ctx, defaults.StoreOperationTimeout)
			defer cancel()

			st, err := newUpdater(s, cfg).Status(ctx, cfg.Plugin.BaseName)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, st)
		},
	}
}
