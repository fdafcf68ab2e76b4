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
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
)

const (
	defaultMaxOpenConns = 4
	defaultMaxIdleConns = 4
	defaultNetworkID    = 1
)

// Store is a SQLite-backed option store.
type Store struct {
	db        *sql.DB
	networkID int64
}

var (
	_ store.OptionStore     = (*Store)(nil)
	_ store.SchemaInstaller = (*Store)(nil)
)

// OpenOptions controls connection pool sizing and the network the options belong to.
type OpenOptions struct {
	MaxOpenConns int
	MaxIdleConns int

	// NetworkID scopes all options; defaults to 1.
	NetworkID int64
}

// Open creates or opens the database at path and ensures the option table exists.
func Open(path string) (*Store, error) {
	return OpenWithOptions(path, OpenOptions{})
}

// OpenWithOptions is Open with tunable settings.
func OpenWithOptions(path string, opts OpenOptions) (*Store, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to create database directory", err,
			map[string]any{"path": path})
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to open database", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := opts.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	maxIdle = min(maxIdle, maxOpen)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)

	// journal_mode is database-wide, set it once.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "sqlite setup failed", err)
	}

	networkID := opts.NetworkID
	if networkID <= 0 {
		networkID = defaultNetworkID
	}

	s := &Store{db: db, networkID: networkID}
	if err := s.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, "database unreachable", err)
	}
	return nil
}

// Migrate creates the option table if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sitemeta (
	meta_id INTEGER PRIMARY KEY AUTOINCREMENT,
	site_id INTEGER NOT NULL DEFAULT 1,
	meta_key TEXT NOT NULL,
	meta_value TEXT NOT NULL,
	UNIQUE (site_id, meta_key)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to migrate option table", err)
	}
	return nil
}

// Get implements store.OptionStore.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT meta_value FROM sitemeta WHERE site_id = ? AND meta_key = ?`,
		s.networkID, key).Scan(&value)
	if err == nil {
		return value, true, nil
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	return "", false, errors.WrapWithContext(errors.ErrCodeInternal, "failed to read option", err,
		map[string]any{"key": key})
}

// Set implements store.OptionStore.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sitemeta(site_id, meta_key, meta_value) VALUES(?, ?, ?)
ON CONFLICT(site_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value`,
		s.networkID, key, value)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write option", err,
			map[string]any{"key": key})
	}
	return nil
}

// Delete implements store.OptionStore.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM sitemeta WHERE site_id = ? AND meta_key = ?`,
		s.networkID, key)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to delete option", err,
			map[string]any{"key": key})
	}
	return nil
}

func ensureParentDir(path string) error {
	path = strings.TrimSpace(path)
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
