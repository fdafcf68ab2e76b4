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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var formatByExt = map[string]Format{
	".json":  FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".table": FormatTable,
	".txt":   FormatTable,
}

// decoders holds the readable formats. Table output cannot be read back.
var decoders = map[Format]func(io.Reader, any) error{
	FormatJSON: decodeJSON,
	FormatYAML: decodeYAML,
}

// FormatFromPath picks a format from the file extension, ignoring case.
// Unknown extensions mean JSON.
func FormatFromPath(path string) Format {
	if f, ok := formatByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	slog.Warn("unknown file extension, defaulting to JSON", "filePath", path)
	return FormatJSON
}

// Reader decodes one JSON or YAML document. YAML decoding is strict:
// unknown fields are errors.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader reads from input, closing it on Close when it is an io.Closer.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}
	r := &Reader{format: format, input: input}
	r.closer, _ = input.(io.Closer)
	return r, nil
}

// NewFileReader opens path for reading. The caller must Close the reader.
func NewFileReader(format Format, path string) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{format: format, input: f, closer: f}, nil
}

// NewFileReaderAuto is NewFileReader with FormatFromPath.
func NewFileReaderAuto(path string) (*Reader, error) {
	return NewFileReader(FormatFromPath(path), path)
}

func checkReadable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if _, ok := decoders[format]; !ok {
		return fmt.Errorf("%s format does not support deserialization", format)
	}
	return nil
}

// Deserialize decodes the next document into the pointer v.
func (r *Reader) Deserialize(v any) error {
	switch {
	case r == nil:
		return errors.New("reader is nil")
	case r.input == nil:
		return errors.New("input source is nil")
	}
	decode, ok := decoders[r.format]
	if !ok {
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
	return decode(r.input, v)
}

// Close closes the underlying source once. A nil Reader is fine.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

func decodeJSON(in io.Reader, v any) error {
	if err := json.NewDecoder(in).Decode(v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}

func decodeYAML(in io.Reader, v any) error {
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode YAML: %w", err)
	}
	return nil
}

// FromFile decodes the file at path into a new T.
func FromFile[T any](path string) (*T, error) {
	v := new(T)
	if err := FromFileInto(path, v); err != nil {
		return nil, err
	}
	return v, nil
}

// FromFileInto decodes the file at path into v. Fields the file does not
// mention keep their current value, so callers can pre-fill defaults.
func FromFileInto(path string, v any) error {
	r, err := NewFileReaderAuto(path)
	if err != nil {
		return fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			slog.Warn("failed to close reader", "error", cerr)
		}
	}()

	if err := r.Deserialize(v); err != nil {
		return fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}
	slog.Debug("loaded file", "path", path, "format", r.format)
	return nil
}
