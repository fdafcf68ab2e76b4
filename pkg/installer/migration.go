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

package installer

import (
	"context"
	"slices"

	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

// Migration is a single upgrade step introduced by a plugin release.
type Migration struct {
	// Name identifies the step in logs and reports.
	Name string

	// Version is the release that introduced the step.
	Version version.Number

	// Apply performs the step. It should be idempotent.
	Apply func(ctx context.Context, s store.OptionStore) error
}

// Legacy option keys touched by DefaultMigrations.
const (
	legacyCacheVersionKey  = "mlp_cache_version"
	legacyRedirectKey      = "inpsyde_multilingual_redirect"
	redirectKey            = "mlp_redirect"
	legacyBlogRelationsKey = "inpsyde_multilingual_blog_relationship"
	legacySiteRelationsKey = "mlp_site_relations_legacy"
)

// DefaultMigrations returns the upgrade steps shipped with the plugin.
func DefaultMigrations() []Migration {
	return []Migration{
		{
			Name:    "drop-legacy-cache-version",
			Version: version.New(2, 0, 0),
			Apply:   deleteOption(legacyCacheVersionKey),
		},
		{
			Name:    "archive-blog-relationships",
			Version: version.New(2, 0, 0),
			Apply:   renameOption(legacyBlogRelationsKey, legacySiteRelationsKey),
		},
		{
			Name:    "rename-redirect-setting",
			Version: version.New(2, 2, 0),
			Apply:   renameOption(legacyRedirectKey, redirectKey),
		},
	}
}

// sortMigrations orders migrations by version, keeping declaration order
// for steps of the same release.
func sortMigrations(ms []Migration) []Migration {
	out := slices.Clone(ms)
	slices.SortStableFunc(out, func(a, b Migration) int {
		return a.Version.Compare(b.Version)
	})
	return out
}

func deleteOption(key string) func(context.Context, store.OptionStore) error {
	return func(ctx context.Context, s store.OptionStore) error {
		return s.Delete(ctx, key)
	}
}

// renameOption moves from to to unless to already exists.
func renameOption(from, to string) func(context.Context, store.OptionStore) error {
	return func(ctx context.Context, s store.OptionStore) error {
		v, ok, err := s.Get(ctx, from)
		if err != nil || !ok {
			return err
		}
		if _, exists, err := s.Get(ctx, to); err != nil {
			return err
		} else if !exists {
			if err := s.Set(ctx, to, v); err != nil {
				return err
			}
		}
		return s.Delete(ctx, from)
	}
}
