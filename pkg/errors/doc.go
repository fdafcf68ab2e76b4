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

// Package errors provides structured error types shared by the version gate,
// the option stores and the HTTP service.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "failed to record plugin version",
//	    cause,
//	    map[string]any{
//	        "option":  "mlp_version",
//	        "version": current.String(),
//	    },
//	)
//
// The version normalizer, comparator and self-check gate never return
// errors; structured errors surface from I/O (stores, config) and from
// invalid caller input such as an unknown comparison operator.
package errors
