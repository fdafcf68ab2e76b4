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

// Package header provides the common header of every document the gate
// emits (self-check reports, version lists, comparisons, configuration).
//
// The Header follows the Kind/APIVersion/Metadata convention:
//
//	kind: SelfCheckReport
//	apiVersion: mlp.inpsyde.com/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.2.0
//
// Usage:
//
//	var h header.Header
//	h.Init(header.KindSelfCheckReport, "mlp.inpsyde.com/v1", "v1.2.0")
//
// or with options:
//
//	h := header.New(
//	    header.WithKind(header.KindVersionList),
//	    header.WithMetadata("source", "cli"),
//	)
package header
