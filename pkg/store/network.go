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
	"slices"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
)

// NetworkActivePlugins returns the base names of the network-active plugins.
// A missing option yields an empty list.
func NetworkActivePlugins(ctx context.Context, s OptionStore) ([]string, error) {
	var active []string
	if _, err := GetJSON(ctx, s, KeyNetworkActivePlugins, &active); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read network-active plugins", err)
	}
	if active == nil {
		active = []string{}
	}
	return active, nil
}

// ActivateNetwork adds baseName to the network-active plugins. It reports
// whether the list changed.
func ActivateNetwork(ctx context.Context, s OptionStore, baseName string) (bool, error) {
	active, err := NetworkActivePlugins(ctx, s)
	if err != nil {
		return false, err
	}
	if slices.Contains(active, baseName) {
		return false, nil
	}
	return true, setNetworkActive(ctx, s, append(active, baseName))
}

// DeactivateNetwork removes baseName from the network-active plugins. It
// reports whether the list changed.
func DeactivateNetwork(ctx context.Context, s OptionStore, baseName string) (bool, error) {
	active, err := NetworkActivePlugins(ctx, s)
	if err != nil {
		return false, err
	}
	if !slices.Contains(active, baseName) {
		return false, nil
	}
	active = slices.DeleteFunc(active, func(p string) bool { return p == baseName })
	return true, setNetworkActive(ctx, s, active)
}

func setNetworkActive(ctx context.Context, s OptionStore, active []string) error {
	if err := SetJSON(ctx, s, KeyNetworkActivePlugins, active); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to update network-active plugins", err)
	}
	return nil
}
