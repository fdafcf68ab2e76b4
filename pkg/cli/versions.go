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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	mlpversion "github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Normalize version tokens into MAJOR.MINOR.PATCH[-PRE][+META]",
		ArgsUsage: "VERSION [VERSION...]",
		Description: `Normalizes free-form version tokens. Parsing never fails: tokens without a
leading number become 0.0.0. Use "-" to read tokens from stdin, one per line.

Examples:
  mlpctl normalize 4 4.1.12.25 4.2-dev.2+meta.23
  git tag | mlpctl normalize -t table -`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, err := versionArgs(cmd, os.Stdin)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, mlpversion.NewList(inputs, false, version))
		},
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Normalize and order version tokens by precedence",
		ArgsUsage: "VERSION [VERSION...]",
		Description: `Orders versions ascending; a release sorts after its prereleases and
build metadata is ignored. Equal versions keep their input order.

Examples:
  mlpctl sort 4.1 4.1-dev 4.0.9
  mlpctl sort --reverse 1.0.0-alpha 1.0.0 1.0.0-beta.11`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort descending",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, err := versionArgs(cmd, os.Stdin)
			if err != nil {
				return err
			}

			list := mlpversion.NewList(inputs, true, version)
			if cmd.Bool("reverse") {
				reverseStable(list.Versions)
			}
			return writeOutput(ctx, cmd, list)
		},
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions",
		ArgsUsage: "A B",
		Description: `Compares two normalized versions and prints -1, 0 or 1. With --op the
expression "A op B" is evaluated as well; --fail-on-false turns a false
result into a non-zero exit status for scripts.

Supported operators: <, <=, >, >=, ==, != (aliases lt, le, gt, ge, eq, ne, =, <>)

Examples:
  mlpctl compare 4.1 4.1-dev
  mlpctl compare --op ge --fail-on-false 2.4.0 2.3.9`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "op",
				Usage: "Comparison operator to evaluate",
			},
			&cli.BoolFlag{
				Name:  "fail-on-false",
				Usage: "Exit with an error when the comparison does not hold",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("compare requires exactly two versions, got %d", cmd.Args().Len())
			}

			op := cmd.String("op")
			if op == "" && cmd.Bool("fail-on-false") {
				return fmt.Errorf("--fail-on-false requires --op")
			}

			c, err := mlpversion.NewComparison(cmd.Args().Get(0), cmd.Args().Get(1), op, version)
			if err != nil {
				return err
			}

			if err := writeOutput(ctx, cmd, c); err != nil {
				return err
			}

			if cmd.Bool("fail-on-false") && !c.Holds() {
				return fmt.Errorf("%s %s %s does not hold", c.A, c.Op, c.B)
			}
			return nil
		},
	}
}

// versionArgs returns the positional version tokens. A single "-" reads
// tokens from stdin.
func versionArgs(cmd *cli.Command, stdin io.Reader) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 1 && args[0] == "-" {
		var err error
		if args, err = readTokens(stdin); err != nil {
			return nil, err
		}
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("at least one version is required")
	}
	return args, nil
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			tokens = append(tokens, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read versions: %w", err)
	}
	return tokens, nil
}

// reverseStable reverses a stably sorted slice while keeping equal
// neighbours in input order.
func reverseStable(vs []mlpversion.Normalized) {
	out := make([]mlpversion.Normalized, 0, len(vs))
	for end := len(vs); end > 0; {
		start := end - 1
		for start > 0 && mlpversion.Compare(vs[start-1].Version, vs[end-1].Version) == 0 {
			start--
		}
		out = append(out, vs[start:end]...)
		end = start
	}
	copy(vs, out)
}
