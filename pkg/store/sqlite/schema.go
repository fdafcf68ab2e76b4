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

package sqlite

import (
	"context"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
)

// Plugin table names.
const (
	TableLanguages        = "mlp_languages"
	TableSiteRelations    = "mlp_site_relations"
	TableContentRelations = "mlp_content_relations"
)

// PluginTables returns the names of the tables created by InstallSchema.
func PluginTables() []string {
	return []string{TableLanguages, TableSiteRelations, TableContentRelations}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS mlp_languages (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	english_name TEXT NOT NULL DEFAULT '',
	native_name TEXT NOT NULL DEFAULT '',
	custom_name TEXT NOT NULL DEFAULT '',
	is_rtl INTEGER NOT NULL DEFAULT 0,
	iso_639_1 TEXT NOT NULL DEFAULT '',
	iso_639_2 TEXT NOT NULL DEFAULT '',
	locale TEXT NOT NULL DEFAULT '',
	http_name TEXT NOT NULL DEFAULT '',
	priority INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_mlp_languages_http_name ON mlp_languages(http_name);
CREATE TABLE IF NOT EXISTS mlp_site_relations (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	site_1 INTEGER NOT NULL,
	site_2 INTEGER NOT NULL,
	UNIQUE (site_1, site_2)
);
CREATE TABLE IF NOT EXISTS mlp_content_relations (
	ml_id INTEGER PRIMARY KEY AUTOINCREMENT,
	ml_source_blogid INTEGER NOT NULL,
	ml_source_elementid INTEGER NOT NULL,
	ml_blogid INTEGER NOT NULL,
	ml_elementid INTEGER NOT NULL,
	ml_type TEXT NOT NULL DEFAULT 'post'
);
CREATE INDEX IF NOT EXISTS idx_mlp_content_relations_source
	ON mlp_content_relations(ml_source_blogid, ml_source_elementid, ml_type);
CREATE INDEX IF NOT EXISTS idx_mlp_content_relations_target
	ON mlp_content_relations(ml_blogid, ml_elementid, ml_type);
`

// InstallSchema creates the plugin tables. It is idempotent.
func (s *Store) InstallSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to install plugin schema", err)
	}
	return nil
}

// Tables returns the plugin tables that currently exist, in PluginTables order.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE 'mlp_%'`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to list tables", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to scan table name", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to list tables", err)
	}

	var out []string
	for _, t := range PluginTables() {
		if existing[t] {
			out = append(out, t)
		}
	}
	return out, nil
}
