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

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inpsyde/multilingual-press-sub005/pkg/config"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "mlpd" {
		t.Errorf("name = %q, want %q", name, "mlpd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

// TestRouteConfiguration verifies that the correct routes are set up
func TestRouteConfiguration(t *testing.T) {
	routes := NewHandler(nil).Routes()

	for _, route := range []string{"/v1/versions/normalize", "/v1/versions/compare", "/v1/selfcheck"} {
		if handler, exists := routes[route]; !exists {
			t.Errorf("expected %s route to exist", route)
		} else if handler == nil {
			t.Errorf("expected %s handler to be non-nil", route)
		}
	}

	if len(routes) != 3 {
		t.Errorf("expected exactly 3 routes, got %d", len(routes))
	}
}

// TestNewServer exercises the wired server through its handler
func TestNewServer(t *testing.T) {
	srv := httptest.NewServer(NewServer(config.Default(), nil).Handler())
	defer srv.Close()

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/v1/versions/normalize?v=4.1", http.StatusOK},
		{"/v1/versions/compare?a=1&b=2", http.StatusOK},
		{"/v1/selfcheck", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, resp.StatusCode, tt.want)
			}
			if resp.Header.Get("X-Request-Id") == "" && tt.path != "/health" && tt.path != "/metrics" {
				t.Error("expected X-Request-Id header on API routes")
			}
		})
	}
}
