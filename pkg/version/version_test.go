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

package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "major only", input: "4", expected: "4.0.0"},
		{name: "major.minor", input: "4.1", expected: "4.1.0"},
		{name: "full version", input: "4.1.12", expected: "4.1.12"},
		{name: "fourth numeric component becomes prerelease", input: "4.1.12.25", expected: "4.1.12-25"},
		{name: "prerelease on two components", input: "4.1-dev", expected: "4.1.0-dev"},
		{name: "prerelease on major", input: "4-dev", expected: "4.0.0-dev"},
		{name: "metadata", input: "4+meta.23", expected: "4.0.0+meta.23"},
		{name: "prerelease and metadata", input: "4.2-dev.2+meta.23", expected: "4.2.0-dev.2+meta.23"},
		{name: "word", input: "meh", expected: "0.0.0"},
		{name: "leading hyphen word", input: "-meh", expected: "0.0.0"},
		{name: "negative number", input: "-1", expected: "0.0.0"},
		{name: "numeric prerelease", input: "1-1", expected: "1.0.0-1"},
		{name: "excess components prefix prerelease", input: "1.2.3.4.5-a.b", expected: "1.2.3-4.5.a.b"},
		{name: "hyphen kept inside identifier", input: "4-alpha-40306", expected: "4.0.0-alpha-40306"},
		{name: "host nightly", input: "4.7-alpha-40306", expected: "4.7.0-alpha-40306"},
		{name: "invalid characters stripped", input: "1!x!y!z!", expected: "1.0.0-xyz"},
		{name: "empty string", input: "", expected: "0.0.0"},
		{name: "whitespace", input: "  2.3.4  ", expected: "2.3.4"},
		{name: "v prefix", input: "v1.2.3", expected: "1.2.3"},
		{name: "upper V prefix", input: "V2", expected: "2.0.0"},
		{name: "lone v", input: "v", expected: "0.0.0"},
		{name: "non numeric minor demoted", input: "4.x.1", expected: "4.0.0-x.1"},
		{name: "numeric head with tail", input: "4.1rc2", expected: "4.1.0-rc2"},
		{name: "empty component demotes rest", input: "1..2", expected: "1.0.0-2"},
		{name: "leading zeros in core", input: "01.02.03", expected: "1.2.3"},
		{name: "leading zeros in numeric prerelease", input: "1.0.0-007", expected: "1.0.0-7"},
		{name: "zero prerelease identifier", input: "1.0.0-000", expected: "1.0.0-0"},
		{name: "punctuation only identifiers dropped", input: "1.0.0-..--.a", expected: "1.0.0-a"},
		{name: "extra plus signs dropped from metadata", input: "1+a+b.c", expected: "1.0.0+ab.c"},
		{name: "metadata keeps leading zeros", input: "1+001", expected: "1.0.0+001"},
		{name: "unparseable core drops metadata", input: "meh+build.1", expected: "0.0.0"},
		{name: "trailing hyphen", input: "1.2.3-", expected: "1.2.3"},
		{name: "overflowing major", input: "99999999999999999999", expected: "0.0.0"},
		{name: "overflowing minor demoted", input: "1.99999999999999999999", expected: "1.0.0-99999999999999999999"},
		{name: "runtime style", input: "7.4.3-1+ubuntu20.04.1", expected: "7.4.3-1+ubuntu20.04.1"},
		{name: "doubled hyphen before prerelease", input: "1--x", expected: "1.0.0-x"},
		{name: "leading hyphen in prerelease", input: "1.0.0--alpha", expected: "1.0.0-alpha"},
		{name: "leading punctuation tokens dropped", input: "1.0.0-.-rc", expected: "1.0.0-rc"},
		{name: "leading hyphens then zero padded number", input: "1.0.0---007", expected: "1.0.0-7"},
		{name: "hyphen kept after first identifier", input: "1.0.0-a.-b", expected: "1.0.0-a.-b"},
		{name: "stripped punctuation joins letters", input: "1.0.0-me_meh?", expected: "1.0.0-memeh"},
		{name: "v prefix behind stripped characters", input: " !v1.2", expected: "1.2.0"},
		{name: "v prefix behind whitespace", input: "\tv3.1", expected: "3.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestParseComponents(t *testing.T) {
	v := Parse("4.2-dev.2+meta.23")

	assert.Equal(t, uint64(4), v.Major)
	assert.Equal(t, uint64(2), v.Minor)
	assert.Equal(t, uint64(0), v.Patch)
	assert.Equal(t, []string{"dev", "2"}, v.Prerelease())
	assert.Equal(t, []string{"meta", "23"}, v.Metadata())
	assert.True(t, v.IsPrerelease())
	assert.False(t, v.IsZero())
	assert.Equal(t, "4.2.0", v.Core().String())
}

func TestPrereleaseIsCopied(t *testing.T) {
	v := Parse("1.0.0-alpha.1")

	pre := v.Prerelease()
	pre[0] = "omega"

	assert.Equal(t, "1.0.0-alpha.1", v.String())
}

func TestParseIsIdempotent(t *testing.T) {
	inputs := []string{"4", "4.1.12.25", "4.2-dev.2+meta.23", "1.2.3.4.5-a.b", "4-alpha-40306", "1--x", "1.0.0-.-rc", " !v1.2", "meh"}

	for _, in := range inputs {
		once := Parse(in).String()
		twice := Parse(once).String()
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNew(t *testing.T) {
	v := New(1, 2, 3)

	assert.Equal(t, "1.2.3", v.String())
	assert.False(t, v.IsPrerelease())
	assert.True(t, Number{}.IsZero())
	assert.Equal(t, "0.0.0", Number{}.String())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.1.0", "2.0.9", 1},
		{"1.2.3", "1.2.4", -1},
		{"1.0.0-dev", "1.0.0", -1},
		{"1.0.0", "1.0.0-dev", 1},
		{"1.0.0-2", "1.0.0-10", -1},
		{"1.0.0-alpha", "1.0.0-1", 1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"1.0.0-alpha.beta", "1.0.0-beta", -1},
		{"1.0.0-beta.2", "1.0.0-beta.11", -1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0+build.1", "1.0.0+build.2", 0},
		{"1.0.0-rc+a", "1.0.0-rc+b", 0},
		{"4", "4.0.0", 0},
		{"meh", "0.0.0", 0},
		{"4.1.12.25", "4.1.12", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestSemverPrecedenceChain(t *testing.T) {
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}

	for i := 0; i < len(chain)-1; i++ {
		a, b := Parse(chain[i]), Parse(chain[i+1])
		assert.True(t, a.Less(b), "%s < %s", a, b)
		assert.False(t, b.Less(a), "%s < %s", b, a)
	}
}

func TestEqualIgnoresMetadata(t *testing.T) {
	assert.True(t, Parse("1.2.3+a").Equal(Parse("1.2.3+b")))
	assert.False(t, Parse("1.2.3-a").Equal(Parse("1.2.3")))
}

func TestSort(t *testing.T) {
	versions := []Number{
		Parse("1.0.0"),
		Parse("1.0.0-rc.1"),
		Parse("0.9"),
		Parse("1.0.0-beta.11"),
		Parse("1.0.0-beta.2"),
		Parse("2"),
	}

	Sort(versions)

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"0.9.0", "1.0.0-beta.2", "1.0.0-beta.11", "1.0.0-rc.1", "1.0.0", "2.0.0"}, got)
}

func TestTextMarshaling(t *testing.T) {
	type doc struct {
		Current Number `json:"current" yaml:"current"`
		Last    Number `json:"last" yaml:"last"`
	}

	t.Run("json", func(t *testing.T) {
		b, err := json.Marshal(doc{Current: Parse("4.2-dev"), Last: Parse("4.1")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"current":"4.2.0-dev","last":"4.1.0"}`, string(b))

		var d doc
		require.NoError(t, json.Unmarshal([]byte(`{"current":"4.1.12.25","last":"meh"}`), &d))
		assert.Equal(t, "4.1.12-25", d.Current.String())
		assert.True(t, d.Last.IsZero())
	})

	t.Run("yaml", func(t *testing.T) {
		var d doc
		require.NoError(t, yaml.Unmarshal([]byte("current: 4+meta.23\nlast: \"2\"\n"), &d))
		assert.Equal(t, "4.0.0+meta.23", d.Current.String())
		assert.Equal(t, "2.0.0", d.Last.String())
	})
}
