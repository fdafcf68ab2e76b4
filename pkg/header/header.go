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

package header

import (
	"time"
)

// DefaultAPIVersion is the schema version of documents emitted by this module.
const DefaultAPIVersion = "mlp.inpsyde.com/v1"

// Metadata keys written by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// Kind names a document type.
type Kind string

const (
	KindSelfCheckReport   Kind = "SelfCheckReport"
	KindVersionList       Kind = "VersionList"
	KindVersionComparison Kind = "VersionComparison"
	KindConfig            Kind = "GateConfig"
	KindInstallStatus     Kind = "InstallationStatus"
)

var knownKinds = map[Kind]struct{}{
	KindSelfCheckReport:   {},
	KindVersionList:       {},
	KindVersionComparison: {},
	KindConfig:            {},
	KindInstallStatus:     {},
}

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a document type this module emits or reads.
func (k Kind) IsValid() bool {
	_, ok := knownKinds[k]
	return ok
}

// Header is embedded inline in every document:
//
//	kind: VersionComparison
//	apiVersion: mlp.inpsyde.com/v1
//	metadata: {timestamp: "...", version: v0.3.1}
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option customizes a Header built by New.
type Option func(*Header)

// WithKind sets the document type.
func WithKind(kind Kind) Option {
	return func(h *Header) { h.Kind = kind }
}

// WithAPIVersion sets the schema version.
func WithAPIVersion(v string) Option {
	return func(h *Header) { h.APIVersion = v }
}

// WithMetadata adds one metadata entry.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = map[string]string{}
		}
		h.Metadata[key] = value
	}
}

// New builds a Header with an empty, non-nil Metadata map.
func New(opts ...Option) *Header {
	h := &Header{Metadata: map[string]string{}}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Init stamps h as a freshly generated document. Existing metadata is
// discarded; toolVersion is recorded only when non-empty.
func (h *Header) Init(kind Kind, apiVersion, toolVersion string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if toolVersion != "" {
		h.Metadata[MetadataVersion] = toolVersion
	}
}
