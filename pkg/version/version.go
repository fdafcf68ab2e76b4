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
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Number represents a normalized semantic version number.
// A Number only ever holds canonical data: it is produced by Parse (or New)
// and never keeps raw input around. The zero value is "0.0.0".
type Number struct {
	Major uint64
	Minor uint64
	Patch uint64

	prerelease []string
	metadata   []string
}

// New creates a Number without prerelease or build metadata.
func New(major, minor, patch uint64) Number {
	return Number{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// Parse normalizes an arbitrary version string into a Number.
//
// Parsing never fails. Input without a leading numeric major component
// (e.g. "meh", "-1" or "") degrades to "0.0.0". Examples:
//
//	"4"                 -> "4.0.0"
//	"4.1.12.25"         -> "4.1.12-25"
//	"4.2-dev.2+meta.23" -> "4.2.0-dev.2+meta.23"
//	"1.2.3.4.5-a.b"     -> "1.2.3-4.5.a.b"
func Parse(s string) Number {
	s = sanitize(s)

	// Tag style "v1.2.3"
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') && isDigit(s[1]) {
		s = s[1:]
	}

	var metadata []string
	if i := strings.IndexByte(s, '+'); i >= 0 {
		metadata = identifiers(strings.Split(strings.ReplaceAll(s[i+1:], "+", ""), "."), false)
		s = s[:i]
	}

	core, rawPrerelease := s, ""
	if i := strings.IndexByte(s, '-'); i >= 0 {
		core, rawPrerelease = s[:i], s[i+1:]
	}

	var (
		nums    [3]uint64
		n       int
		demoted []string
	)

	parts := strings.Split(core, ".")
	for i, part := range parts {
		if n == len(nums) {
			demoted = append(demoted, parts[i:]...)
			break
		}

		head, tail := splitNumericHead(part)
		num, ok := parseNumeric(head)
		if !ok {
			demoted = append(demoted, parts[i:]...)
			break
		}

		nums[n] = num
		n++

		if tail != "" {
			demoted = append(demoted, tail)
			demoted = append(demoted, parts[i+1:]...)
			break
		}
	}

	if n == 0 {
		return Number{}
	}

	if rawPrerelease != "" {
		demoted = append(demoted, strings.Split(rawPrerelease, ".")...)
	}
	prerelease := identifiers(demoted, true)

	return Number{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		prerelease: nilIfEmpty(prerelease),
		metadata:   nilIfEmpty(metadata),
	}
}

// String returns the canonical form "MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]".
func (v Number) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.prerelease, "."))
	}
	if len(v.metadata) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.metadata, "."))
	}
	return b.String()
}

// Prerelease returns a copy of the prerelease identifiers.
func (v Number) Prerelease() []string {
	return slices.Clone(v.prerelease)
}

// Metadata returns a copy of the build metadata identifiers.
func (v Number) Metadata() []string {
	return slices.Clone(v.metadata)
}

// IsPrerelease reports whether v carries prerelease identifiers.
func (v Number) IsPrerelease() bool {
	return len(v.prerelease) > 0
}

// IsZero reports whether v is "0.0.0" without any identifiers, which is
// also what unparseable input normalizes to.
func (v Number) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 &&
		len(v.prerelease) == 0 && len(v.metadata) == 0
}

// Core returns v stripped of prerelease and build metadata.
func (v Number) Core() Number {
	return New(v.Major, v.Minor, v.Patch)
}

// Compare returns -1 if v < other, 0 if both have the same precedence and
// 1 if v > other. Build metadata never takes part in the comparison.
func (v Number) Compare(other Number) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Patch, other.Patch); c != 0 {
		return c
	}
	return comparePrerelease(v.prerelease, other.prerelease)
}

// Equal reports whether v and other have the same precedence.
func (v Number) Equal(other Number) bool {
	return v.Compare(other) == 0
}

// Less reports whether v orders before other.
func (v Number) Less(other Number) bool {
	return v.Compare(other) < 0
}

// Compare normalizes both strings and compares them.
func Compare(a, b string) int {
	return Parse(a).Compare(Parse(b))
}

// Sort orders versions ascending by precedence. The sort is stable so
// versions differing only in build metadata keep their input order.
func Sort(versions []Number) {
	slices.SortStableFunc(versions, Number.Compare)
}

// MarshalText implements encoding.TextMarshaler.
func (v Number) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Like Parse it never
// fails; malformed input becomes "0.0.0".
func (v *Number) UnmarshalText(text []byte) error {
	*v = Parse(string(text))
	return nil
}

func comparePrerelease(a, b []string) int {
	// A release has higher precedence than any of its prereleases.
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		// leading zeros are stripped during parsing, so length decides first
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// sanitize drops every byte outside [0-9A-Za-z.+-].
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) || c == '.' || c == '+' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// identifiers cleans a list of dot-separated identifiers: entries without an
// alphanumeric character are dropped. For a prerelease the first surviving
// entry also loses its leading hyphens ("1--x" is "1.0.0-x") and purely
// numeric entries lose their leading zeros.
func identifiers(parts []string, prerelease bool) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if !hasAlnum(p) {
			continue
		}
		if prerelease && len(out) == 0 {
			p = strings.TrimLeft(p, "-")
		}
		if prerelease && isNumeric(p) {
			p = strings.TrimLeft(p, "0")
			if p == "" {
				p = "0"
			}
		}
		out = append(out, p)
	}
	return out
}

func splitNumericHead(s string) (head, tail string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func parseNumeric(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func hasAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if isAlnum(s[i]) {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
