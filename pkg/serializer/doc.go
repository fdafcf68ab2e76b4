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

// Package serializer reads and writes the module's documents in JSON, YAML
// and a flattened table format.
//
// Writing:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Reading, with the format taken from the file extension:
//
//	cfg, err := serializer.FromFile[config.Config]("mlp.yaml")
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// The table format is write-only. It flattens nested structures into
// dotted keys, using JSON field names where present:
//
//	FIELD            VALUE
//	-----            -----
//	preInstall       installation_context_ok
//	upgrade          needs_upgrade
package serializer
