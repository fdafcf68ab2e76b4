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
	"context"
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

const defaultValueKey = "value"

// encoders holds one encode function per supported format.
var encoders = map[Format]func(io.Writer, any) error{
	FormatJSON:  encodeJSON,
	FormatYAML:  encodeYAML,
	FormatTable: encodeTable,
}

// IsUnknown reports whether f has no encoder.
func (f Format) IsUnknown() bool {
	_, ok := encoders[f]
	return !ok
}

// SupportedFormats lists the accepted --format values in a stable order.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// Writer encodes reports to an output stream. Writers returned by
// NewFileWriterOrStdout own their file and must be closed.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer for output, or stdout when output is nil.
// Unknown formats fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, output: output}
}

// NewFileWriterOrStdout writes to the file at path, creating or truncating
// it. A blank path or a file that cannot be created selects stdout.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewWriter(format, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", path)
		return NewWriter(format, os.Stdout)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w
}

// Close closes the owned file, if any. Repeated calls are no-ops.
func (w *Writer) Close() error {
	c := w.closer
	w.closer = nil
	if c == nil {
		return nil
	}
	return c.Close()
}

// Serialize encodes v in the writer's format. Writes block; the context is
// only part of the Serializer contract.
func (w *Writer) Serialize(_ context.Context, v any) error {
	encode, ok := encoders[w.format]
	if !ok {
		return fmt.Errorf("unsupported format: %s", w.format)
	}
	return encode(w.output, v)
}

func encodeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func encodeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return enc.Close()
}

// encodeTable prints v as FIELD/VALUE rows keyed by dotted JSON paths.
func encodeTable(out io.Writer, v any) error {
	rows := make(map[string]any)
	flattenValue(rows, reflect.ValueOf(v), "")
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "<empty>")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, key := range slices.Sorted(maps.Keys(rows)) {
		fmt.Fprintf(tw, "%s\t%v\n", key, rows[key])
	}
	return tw.Flush()
}

// flattenValue stores every leaf of v in rows under its dotted path.
// Slice elements use "[i]" segments; embedded structs add no segment.
func flattenValue(rows map[string]any, v reflect.Value, path string) {
	leaf := func(x any) {
		if path == "" {
			path = defaultValueKey
		}
		rows[path] = x
	}

	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			if path != "" {
				rows[path] = nil
			}
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	// versions and gate states print as their text form
	if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
		if text, err := tm.MarshalText(); err == nil {
			leaf(string(text))
			return
		}
	}

	//nolint:exhaustive // scalars fall through to default
	switch v.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if !f.IsExported() || len(f.Index) != 1 {
				continue
			}
			name, skip := fieldName(f)
			if skip {
				continue
			}
			sub := path
			if !f.Anonymous {
				sub = joinKey(path, name)
			}
			flattenValue(rows, v.FieldByIndex(f.Index), sub)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			flattenValue(rows, iter.Value(), joinKey(path, fmt.Sprint(iter.Key().Interface())))
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			flattenValue(rows, v.Index(i), joinKey(path, "["+strconv.Itoa(i)+"]"))
		}
	default:
		leaf(v.Interface())
	}
}

// fieldName returns the JSON name of f, or its Go name when untagged.
// skip is set for fields tagged "-".
func fieldName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, false
}

func joinKey(path, seg string) string {
	switch {
	case path == "":
		return seg
	case seg == "":
		return path
	default:
		return path + "." + seg
	}
}
