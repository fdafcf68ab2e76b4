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

package store

import (
	"context"
	"encoding/json"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
)

// Well-known option keys.
const (
	// KeyVersion holds the last installed plugin version.
	KeyVersion = "mlp_version"

	// KeySettings holds the plugin settings; its presence marks a previous installation.
	KeySettings = "inpsyde_multilingual"

	// KeyDeactivationNotice holds a pending deactivation notice.
	KeyDeactivationNotice = "mlp_deactivation_notice"

	// KeyNetworkActivePlugins holds the list of network-active plugin base names.
	KeyNetworkActivePlugins = "active_sitewide_plugins"
)

// OptionStore reads and writes network options.
// Implementations must be safe for concurrent use.
type OptionStore interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SchemaInstaller is implemented by stores that own the plugin's tables.
type SchemaInstaller interface {
	InstallSchema(ctx context.Context) error
}

// GetJSON decodes the JSON value stored under key into v.
// It reports false when the key does not exist.
func GetJSON(ctx context.Context, s OptionStore, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInternal, "failed to decode option", err,
			map[string]any{"key": key})
	}
	return true, nil
}

// SetJSON stores v as JSON under key.
func SetJSON(ctx context.Context, s OptionStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to encode option", err,
			map[string]any{"key": key})
	}
	return s.Set(ctx, key, string(data))
}
