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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/inpsyde/multilingual-press-sub005/pkg/config"
	"github.com/inpsyde/multilingual-press-sub005/pkg/defaults"
	mlperrors "github.com/inpsyde/multilingual-press-sub005/pkg/errors"
	"github.com/inpsyde/multilingual-press-sub005/pkg/installer"
	"github.com/inpsyde/multilingual-press-sub005/pkg/selfcheck"
	"github.com/inpsyde/multilingual-press-sub005/pkg/serializer"
	"github.com/inpsyde/multilingual-press-sub005/pkg/server"
	"github.com/inpsyde/multilingual-press-sub005/pkg/store"
	mlpversion "github.com/inpsyde/multilingual-press-sub005/pkg/version"
)

// Handler serves the version, self-check and installation endpoints.
type Handler struct {
	cfg          *config.Config
	store        store.OptionStore
	toolVersion  string
	maxVersions  int
	maxBodyBytes int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithToolVersion sets the version recorded in response headers.
func WithToolVersion(v string) HandlerOption {
	return func(h *Handler) {
		h.toolVersion = v
	}
}

// WithMaxVersions caps the number of tokens accepted by the normalize endpoint.
func WithMaxVersions(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxVersions = n
		}
	}
}

// WithMaxBodyBytes caps the self-check request body.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithStore enables the installation status endpoint backed by s.
func WithStore(s store.OptionStore) HandlerOption {
	return func(h *Handler) {
		h.store = s
	}
}

// NewHandler creates a Handler for cfg. A nil cfg uses config.Default().
func NewHandler(cfg *config.Config, opts ...HandlerOption) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	h := &Handler{
		cfg:          cfg,
		maxVersions:  defaults.MaxVersionsPerRequest,
		maxBodyBytes: defaults.MaxRequestBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API routes for server.WithHandler. The installation
// route exists only when a store is configured.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	routes := map[string]http.HandlerFunc{
		"/v1/versions/normalize": h.HandleNormalize,
		"/v1/versions/compare":   h.HandleCompare,
		"/v1/selfcheck":          h.HandleSelfCheck,
	}
	if h.store != nil {
		routes["/v1/installation"] = h.HandleInstallation
	}
	return routes
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	server.WriteError(w, r, http.StatusMethodNotAllowed, mlperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{allowed},
		})
}

// HandleNormalize normalizes every "v" query parameter.
// With sort=true the result is ordered by precedence.
func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query()
	inputs := q["v"]
	if len(inputs) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, mlperrors.ErrCodeInvalidRequest,
			"At least one version parameter is required", false, map[string]any{"parameter": "v"})
		return
	}
	if len(inputs) > h.maxVersions {
		server.WriteError(w, r, http.StatusBadRequest, mlperrors.ErrCodeInvalidRequest,
			"Too many versions", false, map[string]any{
				"count": len(inputs),
				"max":   h.maxVersions,
			})
		return
	}

	sorted, err := parseBoolParam(q.Get("sort"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, mlperrors.ErrCodeInvalidRequest,
			"Invalid sort parameter", false, map[string]any{"error": err.Error()})
		return
	}

	resp := mlpversion.NewList(inputs, sorted, h.toolVersion)
	versionsNormalized.Add(float64(len(inputs)))

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleCompare compares a and b. With op it also evaluates "a op b".
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query()
	if !q.Has("a") || !q.Has("b") {
		server.WriteError(w, r, http.StatusBadRequest, mlperrors.ErrCodeInvalidRequest,
			"Both a and b are required", false, map[string]any{"parameters": []string{"a", "b"}})
		return
	}

	resp, err := mlpversion.NewComparison(q.Get("a"), q.Get("b"), q.Get("op"), h.toolVersion)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid operator", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleSelfCheck runs the gate against the posted environment. Nothing is
// persisted: a non-compliant environment is reported as deactivated.
func (h *Handler) HandleSelfCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SelfCheckHandlerTimeout)
	defer cancel()

	req, err := h.parseSelfCheckRequest(w, r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, mlperrors.ErrCodeInvalidRequest,
			"Invalid self-check request", false, map[string]any{"error": err.Error()})
		return
	}

	current := h.cfg.CurrentVersion()
	if req.CurrentVersion != "" {
		current = mlpversion.Parse(req.CurrentVersion)
	}

	gate := selfcheck.New(append(h.cfg.GateOptions(), selfcheck.WithDeactivator(selfcheck.LogDeactivator))...)

	resp := gate.Evaluate(ctx, req.Environment, current, selfcheck.Installed{
		Last:          mlpversion.Parse(req.LastVersion),
		SettingsExist: req.SettingsExist,
	})
	resp.Init(resp.Kind, resp.APIVersion, h.toolVersion)

	selfCheckOutcomes.WithLabelValues("preInstall", resp.PreInstall.String()).Inc()
	if !resp.Deactivated {
		selfCheckOutcomes.WithLabelValues("upgrade", resp.Upgrade.String()).Inc()
	}
	slog.Debug("self-check evaluated",
		"requestID", server.RequestID(ctx),
		"preInstall", resp.PreInstall.String(),
		"upgrade", resp.Upgrade.String())

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleInstallation reports the installation recorded in the option
// store. It never installs, upgrades or clears notices.
func (h *Handler) HandleInstallation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.InstallationHandlerTimeout)
	defer cancel()

	u := installer.NewUpdater(h.store, h.cfg.CurrentVersion(),
		installer.WithMigrations(installer.DefaultMigrations()...),
		installer.WithToolVersion(h.toolVersion))

	st, err := u.Status(ctx, h.cfg.Plugin.BaseName)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read installation status", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, st)
}

func (h *Handler) parseSelfCheckRequest(w http.ResponseWriter, r *http.Request) (*SelfCheckRequest, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, fmt.Errorf("request body is empty")
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	reader, err := serializer.NewReader(formatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Debug("failed to close request body", "error", closeErr)
		}
	}()

	var req SelfCheckRequest
	if err := reader.Deserialize(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// formatFromContentType selects YAML for yaml media types and JSON otherwise.
func formatFromContentType(contentType string) serializer.Format {
	mediaType, _, _ := strings.Cut(contentType, ";")
	if strings.Contains(strings.ToLower(mediaType), "yaml") {
		return serializer.FormatYAML
	}
	return serializer.FormatJSON
}

func parseBoolParam(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
