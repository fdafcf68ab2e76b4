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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inpsyde/multilingual-press-sub005/pkg/requirements"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
)

const baseName = "multilingual-press/multilingual-press.php"

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newRecorder(s store.OptionStore) *Recorder {
	r := NewRecorder(s)
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestRecorder_Deactivate(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, store.SetJSON(ctx, s, store.KeyNetworkActivePlugins,
		[]string{"akismet/akismet.php", baseName}))

	err := newRecorder(s).Deactivate(ctx, selfcheck.Deactivation{
		PluginName: "MultilingualPress",
		BaseName:   baseName,
		Messages:   []string{"This plugin requires a multisite installation."},
	})
	require.NoError(t, err)

	var active []string
	_, err = store.GetJSON(ctx, s, store.KeyNetworkActivePlugins, &active)
	require.NoError(t, err)
	assert.Equal(t, []string{"akismet/akismet.php"}, active)

	n, err := Pending(ctx, s)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, &Notice{
		PluginName:    "MultilingualPress",
		BaseName:      baseName,
		Messages:      []string{"This plugin requires a multisite installation."},
		DeactivatedAt: fixedNow,
	}, n)
}

func TestRecorder_NotNetworkActive(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	require.NoError(t, newRecorder(s).Deactivate(ctx, selfcheck.Deactivation{BaseName: baseName}))

	_, ok, err := s.Get(ctx, store.KeyNetworkActivePlugins)
	require.NoError(t, err)
	assert.False(t, ok, "list must not be created")

	_, ok, err = s.Get(ctx, store.KeyDeactivationNotice)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecorder_CorruptPluginList(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryFrom(map[string]string{store.KeyNetworkActivePlugins: "a:1:{}"})

	err := newRecorder(s).Deactivate(ctx, selfcheck.Deactivation{BaseName: baseName})
	assert.Error(t, err)
}

func TestPending_ShownOnce(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	n, err := Pending(ctx, s)
	require.NoError(t, err)
	assert.Nil(t, n)

	require.NoError(t, newRecorder(s).Deactivate(ctx, selfcheck.Deactivation{BaseName: baseName}))

	n, err = Pending(ctx, s)
	require.NoError(t, err)
	assert.NotNil(t, n)

	n, err = Pending(ctx, s)
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestRecorder_WithGate(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	g := selfcheck.New(selfcheck.WithDeactivator(newRecorder(s)))

	env := selfcheck.Environment{
		Page: selfcheck.DefaultCheckPage,
		Environment: requirements.Environment{
			HostVersion:    "3.9",
			RuntimeVersion: "7.4",
			Multisite:      true,
		},
	}

	out := g.PreInstallCheck(ctx, env)
	require.Equal(t, selfcheck.PluginDeactivated, out.State)

	n, err := Pending(ctx, s)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, out.Messages, n.Messages)
	assert.Equal(t, selfcheck.DefaultBaseName, n.BaseName)
}
