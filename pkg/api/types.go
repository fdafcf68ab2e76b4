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
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
)

// SelfCheckRequest is the body of POST /v1/selfcheck.
type SelfCheckRequest struct {
	Environment selfcheck.Environment `json:"environment" yaml:"environment"`

	// CurrentVersion defaults to the configured plugin version.
	CurrentVersion string `json:"currentVersion,omitempty" yaml:"currentVersion,omitempty"`

	// LastVersion is the version recorded by the previous run; empty means never installed.
	LastVersion   string `json:"lastVersion,omitempty" yaml:"lastVersion,omitempty"`
	SettingsExist bool   `json:"settingsExist" yaml:"settingsExist"`
}
