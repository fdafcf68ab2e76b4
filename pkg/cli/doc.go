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

// Package cli implements the mlpctl command-line interface.
//
// # Commands
//
// normalize - Normalize version tokens:
//
//	mlpctl normalize 4 4.1.12.25 4.2-dev.2+meta.23
//
// sort - Order version tokens by precedence:
//
//	mlpctl sort --reverse 4.1 4.1-dev 4.0.9
//
// compare - Compare two versions, optionally evaluating an operator:
//
//	mlpctl compare --op ge --fail-on-false 2.4.0 2.3.9
//
// check - Evaluate the self-check gate for an environment without side effects:
//
//	mlpctl check --host-version 4.7 --runtime-version 7.0 --multisite --network-activated
//
// run - Run the gate against a SQLite option store and install or upgrade:
//
//	mlpctl run --store options.db -e env.yaml
//
// activate - Mark the plugin network-active in the option store:
//
//	mlpctl activate --store options.db
//
// notice - Show and clear the pending deactivation notice:
//
//	mlpctl notice --store options.db
//
// status - Show the recorded installation without changing it:
//
//	mlpctl status --store options.db -t table
//
// # Global Flags
//
//	--config, -c   Gate configuration file (env: MLP_CONFIG)
//	--log-level    Logging level (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Commands producing documents also accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, --fail-on-* checks)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/inpsyde/multilingual-press-sub005/pkg/cli.version=1.0.0'"
package cli
