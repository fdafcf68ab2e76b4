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

package requirements

import (
	"fmt"
	"slices"

	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

const (
	// DefaultMinRuntimeVersion is the oldest runtime the plugin supports.
	DefaultMinRuntimeVersion = "5.2.4"

	// DefaultMinHostVersion is the oldest host application release the plugin supports.
	DefaultMinHostVersion = "4.0"
)

// Requirements declares what an installation needs before the plugin may run.
type Requirements struct {
	// MinRuntimeVersion is the minimum runtime version (free-form, normalized on use).
	MinRuntimeVersion string `json:"minRuntimeVersion" yaml:"minRuntimeVersion"`

	// MinHostVersion is the minimum host application version.
	MinHostVersion string `json:"minHostVersion" yaml:"minHostVersion"`

	// RequireMultisite requires the host to run as a network of sites.
	RequireMultisite bool `json:"requireMultisite" yaml:"requireMultisite"`

	// RequireNetworkActivation requires the plugin to be active network-wide.
	RequireNetworkActivation bool `json:"requireNetworkActivation" yaml:"requireNetworkActivation"`
}

// Default returns the requirements of the plugin.
func Default() Requirements {
	return Requirements{
		MinRuntimeVersion:        DefaultMinRuntimeVersion,
		MinHostVersion:           DefaultMinHostVersion,
		RequireMultisite:         true,
		RequireNetworkActivation: true,
	}
}

// Environment holds the facts about the running installation that the
// requirements are checked against.
type Environment struct {
	HostVersion          string   `json:"hostVersion" yaml:"hostVersion"`
	RuntimeVersion       string   `json:"runtimeVersion" yaml:"runtimeVersion"`
	Multisite            bool     `json:"multisite" yaml:"multisite"`
	NetworkActivePlugins []string `json:"networkActivePlugins,omitempty" yaml:"networkActivePlugins,omitempty"`
}

// Check names.
const (
	CheckRuntimeVersion    = "runtimeVersion"
	CheckHostVersion       = "hostVersion"
	CheckMultisite         = "multisite"
	CheckNetworkActivation = "networkActivation"
)

// CheckResult is the outcome of a single requirement.
type CheckResult struct {
	// Name identifies the requirement (e.g., "runtimeVersion").
	Name string `json:"name" yaml:"name"`

	// Expected is the requirement, e.g. ">= 5.2.4" or "true".
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the value found in the environment.
	Actual string `json:"actual" yaml:"actual"`

	// Passed reports whether the requirement is met.
	Passed bool `json:"passed" yaml:"passed"`

	// Message explains a failed requirement; empty when passed.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result aggregates all requirement checks.
type Result struct {
	Compliant bool          `json:"compliant" yaml:"compliant"`
	Checks    []CheckResult `json:"checks" yaml:"checks"`
}

// Messages returns the messages of every failed check, in check order.
func (r Result) Messages() []string {
	var msgs []string
	for _, c := range r.Checks {
		if !c.Passed {
			msgs = append(msgs, c.Message)
		}
	}
	return msgs
}

// Check evaluates every requirement against env. All checks run; failures
// are collected as messages rather than returned as errors. baseName is the
// plugin's base name as it appears in env.NetworkActivePlugins.
func (r Requirements) Check(baseName string, env Environment) Result {
	checks := []CheckResult{
		checkMinimum(CheckRuntimeVersion, "runtime", r.MinRuntimeVersion, env.RuntimeVersion),
		checkMinimum(CheckHostVersion, "host application", r.MinHostVersion, env.HostVersion),
	}

	if r.RequireMultisite {
		c := CheckResult{
			Name:     CheckMultisite,
			Expected: "true",
			Actual:   fmt.Sprintf("%t", env.Multisite),
			Passed:   env.Multisite,
		}
		if !c.Passed {
			c.Message = "This plugin requires a multisite installation."
		}
		checks = append(checks, c)
	}

	if r.RequireNetworkActivation {
		active := slices.Contains(env.NetworkActivePlugins, baseName)
		c := CheckResult{
			Name:     CheckNetworkActivation,
			Expected: "true",
			Actual:   fmt.Sprintf("%t", active),
			Passed:   active,
		}
		if !c.Passed {
			c.Message = fmt.Sprintf("This plugin must be activated network-wide, %q is not network-active.", baseName)
		}
		checks = append(checks, c)
	}

	res := Result{Compliant: true, Checks: checks}
	for _, c := range checks {
		if !c.Passed {
			res.Compliant = false
		}
	}
	return res
}

// checkMinimum compares actual against a minimum version. An empty minimum
// always passes.
func checkMinimum(name, label, minimum, actual string) CheckResult {
	c := CheckResult{
		Name:   name,
		Actual: version.Parse(actual).String(),
		Passed: true,
	}
	if minimum == "" {
		return c
	}

	req := version.Constraint{Operator: version.OperatorGTE, Version: version.Parse(minimum)}
	c.Expected = req.String()
	c.Passed = req.Satisfied(version.Parse(actual))
	if !c.Passed {
		c.Message = fmt.Sprintf("This plugin requires %s version %s or newer, found %s.", label, req.Version, c.Actual)
	}
	return c
}
