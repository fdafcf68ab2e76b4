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

// Package store defines the network-wide option storage the version gate
// reads its last installed version and settings from.
//
// Options are plain string values addressed by key, mirroring the host
// application's site option table. Two implementations exist: Memory, for
// tests and dry runs, and the SQLite-backed store in package store/sqlite.
//
// Usage:
//
//	s := store.NewMemory()
//	if err := s.Set(ctx, store.KeyVersion, "2.4.0"); err != nil {
//	    return err
//	}
//	v, ok, err := s.Get(ctx, store.KeyVersion)
package store
