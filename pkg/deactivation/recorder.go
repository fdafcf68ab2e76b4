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

package deactivation

import (
	"context"
	"log/slog"
	"time"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
)

// Notice is the persisted record of a deactivation.
type Notice struct {
	PluginName    string    `json:"pluginName" yaml:"pluginName"`
	BaseName      string    `json:"baseName" yaml:"baseName"`
	Messages      []string  `json:"messages" yaml:"messages"`
	DeactivatedAt time.Time `json:"deactivatedAt" yaml:"deactivatedAt"`
}

// Recorder implements selfcheck.Deactivator on top of an option store.
type Recorder struct {
	store store.OptionStore
	now   func() time.Time
}

var _ selfcheck.Deactivator = (*Recorder)(nil)

// NewRecorder returns a Recorder writing to s.
func NewRecorder(s store.OptionStore) *Recorder {
	return &Recorder{store: s, now: time.Now}
}

// Deactivate stores the notice and removes the plugin from the
// network-active plugin list.
func (r *Recorder) Deactivate(ctx context.Context, d selfcheck.Deactivation) error {
	n := Notice{
		PluginName:    d.PluginName,
		BaseName:      d.BaseName,
		Messages:      d.Messages,
		DeactivatedAt: r.now().UTC(),
	}
	if err := store.SetJSON(ctx, r.store, store.KeyDeactivationNotice, n); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to store deactivation notice", err)
	}

	removed, err := store.DeactivateNetwork(ctx, r.store, d.BaseName)
	if err != nil {
		return err
	}

	slog.Warn("plugin deactivated",
		"plugin", d.BaseName,
		"removed_from_network", removed,
		"reasons", len(d.Messages))

	return nil
}

// Pending returns the stored notice, if any, and deletes it.
func Pending(ctx context.Context, s store.OptionStore) (*Notice, error) {
	var n Notice
	ok, err := store.GetJSON(ctx, s, store.KeyDeactivationNotice, &n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if err := s.Delete(ctx, store.KeyDeactivationNotice); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to clear deactivation notice", err)
	}
	return &n, nil
}
