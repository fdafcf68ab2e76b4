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

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/inpsyde/multilingual-press-sub005/pkg/defaults"
	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/serializer"
)

// Probe states reported by /health and /ready.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func respondProbe(w http.ResponseWriter, code int, status, reason string) {
	serializer.RespondJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}

// probeMethodOK rejects anything but GET.
func probeMethodOK(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if probeMethodOK(w, r) {
		respondProbe(w, http.StatusOK, StatusHealthy, "")
	}
}

// handleReady reports 503 until Run has started serving, and while the
// configured readiness check (e.g. an option store ping) fails.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !probeMethodOK(w, r) {
		return
	}

	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()
	if !ready {
		respondProbe(w, http.StatusServiceUnavailable, StatusNotReady, "service is initializing")
		return
	}

	if s.readyCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), defaults.ReadyCheckTimeout)
		defer cancel()
		if err := s.readyCheck(ctx); err != nil {
			readyCheckFailures.Inc()
			respondProbe(w, http.StatusServiceUnavailable, StatusNotReady, err.Error())
			return
		}
	}

	respondProbe(w, http.StatusOK, StatusReady, "")
}
