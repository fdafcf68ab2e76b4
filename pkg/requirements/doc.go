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

// Package requirements checks an installation against the minimum runtime
// and host versions the plugin declares, plus the multisite and
// network-activation prerequisites.
//
// Failures never surface as errors. Every requirement is evaluated and the
// failed ones are reported as human-readable messages so the caller can
// show all of them at once:
//
//	res := requirements.Default().Check("multilingual-press/multilingual-press.php", env)
//	if !res.Compliant {
//	    for _, msg := range res.Messages() {
//	        slog.Warn("requirement not met", "message", msg)
//	    }
//	}
package requirements
