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

// Package deactivation records plugin deactivations scheduled by the
// self-check gate.
//
// A Recorder removes the plugin from the network-active plugin list and
// leaves a Notice behind so the next admin request can explain why the
// plugin was switched off. Pending reads the notice and clears it, so each
// notice is shown once.
package deactivation
