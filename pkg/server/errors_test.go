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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mlperrors "github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

func TestCodeMapping(t *testing.T) {
	tests := []struct {
		code      mlperrors.ErrorCode
		status    int
		retryable bool
	}{
		{mlperrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{mlperrors.ErrCodeNotFound, http.StatusNotFound, false},
		{mlperrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{mlperrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{mlperrors.ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{mlperrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{mlperrors.ErrCodeInternal, http.StatusInternalServerError, true},
		{mlperrors.ErrorCode("BOGUS"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromCode(tt.code))
			assert.Equal(t, tt.retryable, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, nil))

	got := mergeDetails(
		map[string]any{"version": "4.1", "op": "<"},
		map[string]any{"op": ">="},
	)
	assert.Equal(t, map[string]any{"version": "4.1", "op": ">="}, got)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/versions/compare", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, mlperrors.ErrCodeInvalidRequest,
		"Both a and b are required", false, map[string]any{"parameter": "b"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "Both a and b are required", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.Equal(t, "b", resp.Details["parameter"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound,
		mlperrors.ErrCodeNotFound, "not found", false, nil)

	resp := decodeError(t, w)
	assert.NotEmpty(t, resp.RequestID)
	assert.Nil(t, resp.Details)
}

func TestWriteErrorFromErr(t *testing.T) {
	_, opErr := version.ParseOperator("~>")
	require.Error(t, opErr)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]any
	}{
		{
			name:        "unknown operator",
			err:         opErr,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_REQUEST",
			wantMessage: "unknown comparison operator",
			wantDetails: map[string]any{"operator": "~>", "extra": "yes"},
		},
		{
			name: "store unavailable with cause",
			err: mlperrors.WrapWithContext(mlperrors.ErrCodeUnavailable, "option store unavailable",
				errors.New("database is locked"), map[string]any{"key": "mlp_version"}),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    "SERVICE_UNAVAILABLE",
			wantMessage: "option store unavailable",
			wantDetails: map[string]any{"key": "mlp_version", "extra": "yes", "error": "database is locked"},
		},
		{
			name:        "wrapped structured error",
			err:         fmt.Errorf("run: %w", mlperrors.New(mlperrors.ErrCodeTimeout, "run timed out")),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    "TIMEOUT",
			wantMessage: "run timed out",
			wantDetails: map[string]any{"extra": "yes"},
		},
		{
			name:        "plain error falls back to internal",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL",
			wantMessage: "fallback",
			wantDetails: map[string]any{"extra": "yes", "error": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "fallback",
				map[string]any{"extra": "yes"})

			require.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			for k, v := range tt.wantDetails {
				assert.Equal(t, v, resp.Details[k], "details[%s]", k)
			}
		})
	}
}
