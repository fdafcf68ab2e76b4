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
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	want := []string{"normalize", "compare", "sort", "check", "run", "activate", "notice", "status"}
	if len(root.Commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(root.Commands))
	}
	for i, c := range root.Commands {
		if c.Name != want[i] {
			t.Errorf("command %d = %q, want %q", i, c.Name, want[i])
		}
		if c.Action == nil {
			t.Errorf("command %q has no action", c.Name)
		}
	}
}

func TestCommandLister(t *testing.T) {
	commandLister(context.Background(), nil)

	var buf bytes.Buffer
	root := &cli.Command{
		Name:   "root",
		Writer: &buf,
		Commands: []*cli.Command{
			{Name: "visible1", Usage: "first"},
			{Name: "hidden", Hidden: true},
			{Name: "visible2", Usage: "second"},
		},
	}
	commandLister(context.Background(), root)

	out := buf.String()
	if !strings.Contains(out, "visible1") || !strings.Contains(out, "visible2") {
		t.Errorf("expected visible commands in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("hidden command listed: %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	if err := runCLI(t, "frobnicate"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New("boom"), exitError},
		{context.Canceled, exitCanceled},
		{fmt.Errorf("run: %w", context.DeadlineExceeded), exitCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
