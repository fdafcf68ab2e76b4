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

// Package config loads the gate configuration.
//
// A configuration names the plugin (display name, base name, main file and
// current version), the admin page the self-check runs on, the installation
// requirements and the option store location. Values come from three
// layers, later layers win:
//
//  1. Default()
//  2. a YAML or JSON file (Load)
//  3. environment variables (ApplyEnv)
//
// Environment variables:
//
//	MLP_STORE_PATH           option store database path
//	MLP_CHECK_PAGE           page the self-check runs on
//	MLP_MIN_RUNTIME_VERSION  minimum runtime version
//	MLP_MIN_HOST_VERSION     minimum host application version
//	MLP_PLUGIN_VERSION       current plugin version
//
// Example file:
//
//	kind: GateConfig
//	apiVersion: mlp.inpsyde.com/v1
//	plugin:
//	  name: MultilingualPress
//	  baseName: multilingual-press/multilingual-press.php
//	  version: 2.4.0
//	checkPage: plugins.php
//	requirements:
//	  minRuntimeVersion: 5.2.4
//	  minHostVersion: "4.0"
//	  requireMultisite: true
//	  requireNetworkActivation: true
//	store:
//	  path: mlp.db
package config
