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
	"github.com/inpsyde/multilingual-press-sub005/pkg/defaults"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/serializer"
	mlpversion "github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

// environmentFlags describe the installation the gate is evaluated for.
func environmentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "env",
			Aliases: []string{"e"},
			Usage:   "Environment file (YAML or JSON); flags below override its values",
		},
		&cli.StringFlag{
			Name:  "page",
			Usage: "Current admin page (default: the configured check page)",
		},
		&cli.StringFlag{
			Name:  "host-version",
			Usage: "Host application version (e.g., 4.7.2)",
		},
		&cli.StringFlag{
			Name:  "runtime-version",
			Usage: "Runtime version (e.g., 7.0.1)",
		},
		&cli.BoolFlag{
			Name:  "multisite",
			Usage: "The installation is a network of sites",
		},
		&cli.StringSliceFlag{
			Name:  "network-active",
			Usage: "Base name of a network-active plugin (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "network-activated",
			Usage: "Mark the configured plugin as network-active",
		},
	}
}

// buildEnvironment reads --env and applies the environment flags on top.
func buildEnvironment(cmd *cli.Command, cfg *config.Config) (selfcheck.Environment, error) {
	var env selfcheck.Environment

	if path := cmd.String("env"); path != "" {
		if err := serializer.FromFileInto(path, &env); err != nil {
			return env, fmt.Errorf("failed to load environment from %q: %w", path, err)
		}
	}

	if cmd.IsSet("page") {
		env.Page = cmd.String("page")
	}
	if env.Page == "" {
		env.Page = cfg.CheckPage
	}
	if cmd.IsSet("host-version") {
		env.HostVersion = cmd.String("host-version")
	}
	if cmd.IsSet("runtime-version") {
		env.RuntimeVersion = cmd.String("runtime-version")
	}
	if cmd.IsSet("multisite") {
		env.Multisite = cmd.Bool("multisite")
	}
	if cmd.IsSet("network-active") {
		env.NetworkActivePlugins = append(env.NetworkActivePlugins, cmd.StringSlice("network-active")...)
	}
	if cmd.Bool("network-activated") {
		env.NetworkActivePlugins = append(env.NetworkActivePlugins, cfg.Plugin.BaseName)
	}

	slog.Debug("environment",
		"page", env.Page,
		"hostVersion", env.HostVersion,
		"runtimeVersion", env.RuntimeVersion,
		"multisite", env.Multisite,
		"networkActivePlugins", env.NetworkActivePlugins)

	return env, nil
}

func checkCmd() *cli.Command {
	flags := append(environmentFlags(),
		&cli.StringFlag{
			Name:  "last-version",
			Usage: "Last installed plugin version (empty: never installed)",
		},
		&cli.BoolFlag{
			Name:  "settings-exist",
			Usage: "Plugin settings are present",
		},
		&cli.BoolFlag{
			Name:  "fail-on-error",
			Usage: "Exit with an error when the plugin would be deactivated",
		},
		outputFlag(),
		formatFlag(),
	)

	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Evaluate the self-check gate without changing anything",
		Description: `Runs the pre-install requirements check and the version check for an
environment described by flags or an environment file. Nothing is written;
a failing requirement is reported as a deactivation.

Example environment file:

  page: plugins.php
  hostVersion: "4.7"
  runtimeVersion: "7.0"
  multisite: true
  networkActivePlugins:
    - multilingual-press/multilingual-press.php

Examples:
  mlpctl check --host-version 4.7 --runtime-version 7.0 --multisite --network-activated
  mlpctl check -e env.yaml --last-version 2.3.0 --settings-exist --fail-on-error`,
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

			ctx, cancel := context.WithTimeout(ctx, defaults.SelfCheckTimeout)
			defer cancel()

			gate := selfcheck.New(append(cfg.GateOptions(), selfcheck.WithDeactivator(selfcheck.LogDeactivator))...)
			ev := gate.Evaluate(ctx, env, cfg.CurrentVersion(), selfcheck.Installed{
				Last:          mlpversion.Parse(cmd.String("last-version")),
				SettingsExist: cmd.Bool("settings-exist"),
			})
			ev.Init(ev.Kind, ev.APIVersion, version)

			if err := writeOutput(ctx, cmd, ev); err != nil {
				return err
			}

			if ev.Deactivated && cmd.Bool("fail-on-error") {
				return fmt.Errorf("requirements not met: %d check(s) failed", len(ev.Messages))
			}
			return nil
		},
	}
}
