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

// Package version normalizes free-form version strings into semantic version
// numbers and orders them by semantic-versioning precedence.
//
// # Overview
//
// Version strings reach the plugin from several places: its own header, the
// host application, the runtime and the value stored by a previous
// installation. None of them is guaranteed to be valid semver, so Parse
// never fails. It always produces a canonical Number:
//
//	MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]
//
// # Normalization
//
//   - Characters outside [0-9A-Za-z.+-] are removed ("1!x!y!z!" -> "1.0.0-xyz")
//   - Missing minor/patch components default to 0 ("4.1" -> "4.1.0")
//   - Components beyond patch move to the front of the prerelease
//     ("4.1.12.25" -> "4.1.12-25", "1.2.3.4.5-a.b" -> "1.2.3-4.5.a.b")
//   - Hyphens inside a prerelease identifier are kept ("4-alpha-40306")
//   - Everything after the first "+" is build metadata ("4+meta.23")
//   - No numeric major means "0.0.0" ("meh", "-meh", "-1")
//
// # Precedence
//
// Compare orders major, minor and patch numerically. A prerelease is lower
// than the release it precedes. Prerelease identifiers are compared one by
// one: numeric identifiers numerically, alphanumeric ones in ASCII order,
// numeric before alphanumeric, and a shorter list that is a prefix of a
// longer one is lower. Build metadata is ignored.
//
//	version.Compare("1.0.0-2", "1.0.0-10")       // -1
//	version.Compare("1.0.0", "1.0.0-dev")        // 1
//	ok, _ := version.CompareWith("4.1", "<=", "4.1.0+build") // true
//
// # Constraints
//
// ParseConstraint reads minimum-version style requirements:
//
//	c, _ := version.ParseConstraint(">= 5.2.4")
//	c.Satisfied(version.Parse("7.4.3-1+ubuntu20.04.1")) // true
package version
