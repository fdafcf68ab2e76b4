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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"mlp.yaml", FormatYAML},
		{"/etc/mlp/mlp.yml", FormatYAML},
		{"report.table", FormatTable},
		{"report.txt", FormatTable},
		{"noext", FormatJSON},
		{"archive.yaml.bak", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader_Formats(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader("xml", strings.NewReader(""))
	assert.Error(t, err)

	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"a","value":1}`))
	require.NoError(t, err)

	var c testConfig
	require.NoError(t, r.Deserialize(&c))
	assert.Equal(t, testConfig{Name: "a", Value: 1}, c)
}

func TestReader_DeserializeYAML(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: b\nvalue: 2\n"))
	require.NoError(t, err)

	var c testConfig
	require.NoError(t, r.Deserialize(&c))
	assert.Equal(t, testConfig{Name: "b", Value: 2}, c)
}

func TestReader_DeserializeYAML_UnknownField(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: b\nbogus: 2\n"))
	require.NoError(t, err)

	var c testConfig
	assert.Error(t, r.Deserialize(&c))
}

func TestReader_DeserializeInvalid(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":`))
	require.NoError(t, err)

	var c testConfig
	assert.Error(t, r.Deserialize(&c))
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())

	r, err := NewReader(FormatJSON, nil)
	require.NoError(t, err)
	assert.Error(t, r.Deserialize(&testConfig{}))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\nvalue: 3\n"), 0o600))

	c, err := FromFile[testConfig](path)
	require.NoError(t, err)
	assert.Equal(t, &testConfig{Name: "file", Value: 3}, c)
}

func TestFromFileInto_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x"}`), 0o600))

	c := testConfig{Name: "default", Value: 42}
	require.NoError(t, FromFileInto(path, &c))
	assert.Equal(t, testConfig{Name: "x", Value: 42}, c)
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FromFile[testConfig](filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	table := filepath.Join(dir, "c.table")
	require.NoError(t, os.WriteFile(table, []byte("x"), 0o600))
	_, err = FromFile[testConfig](table)
	assert.Error(t, err)
}

func TestReader_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}
