// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zeebo/blake3"
)

// resourceConfig tunes per-resource behavior beyond plain CRUD.
type resourceConfig struct {
	// uniqueField, when set, makes creates and updates reject records
	// whose field value collides with an existing record.
	uniqueField string
	// filterFields are query parameters applied server-side on list.
	filterFields []string
}

// resources maps URL path segments to their configs. Paths match the
// real API's, including the irregular /blood-donation and
// /urgent-request segments.
var resources = map[string]resourceConfig{
	"services":           {filterFields: []string{"category"}},
	"events":             {filterFields: []string{"status"}},
	"news":               {},
	"research":           {},
	"notices":            {filterFields: []string{"category"}},
	"feedback":           {filterFields: []string{"status"}},
	"users":              {uniqueField: "email", filterFields: []string{"role"}},
	"blood-donation":     {uniqueField: "phone", filterFields: []string{"status", "bloodGroup"}},
	"urgent-request":     {filterFields: []string{"status", "bloodGroup"}},
	"appointments":       {filterFields: []string{"status", "department"}},
	"careers":            {filterFields: []string{"department"}},
	"ambulance-bookings": {filterFields: []string{"status"}},
	"gallery":            {},
}

// server is the mock Carewell API: the real API's paths, envelope,
// and error conventions over an in-memory store.
type server struct {
	store  *store
	token  string // Blank disables auth checks.
	logger *slog.Logger
}

func newServer(store *store, token string, logger *slog.Logger) *server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &server{store: store, token: token, logger: logger}
}

// router builds the chi route tree.
func (s *server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.requireToken)

	// Non-CRUD endpoints first so literal segments win over {id}.
	r.Get("/blood-donation/stats", s.handleDonationStats)
	r.Get("/profile", s.handleProfile)
	r.Put("/profile", s.handleUpdateProfile)

	for resource, config := range resources {
		r.Route("/"+resource, func(r chi.Router) {
			r.Get("/", s.handleList(resource, config))
			if resource == "gallery" {
				r.Post("/", s.handleGalleryUpload)
			} else {
				r.Post("/", s.handleCreate(resource, config))
			}
			r.Get("/{id}", s.handleGet(resource))
			r.Put("/{id}", s.handleUpdate(resource, config))
			r.Patch("/{id}", s.handlePatch(resource))
			r.Delete("/{id}", s.handleDelete(resource))
		})
	}
	return r
}

// logRequests logs one line per request at DEBUG.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// requireToken enforces the bearer token when one is configured.
func (s *server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" {
			header := r.Header.Get("Authorization")
			if header != "Bearer "+s.token {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleList(resource string, config resourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := s.store.list(resource)

		// Server-side equality filters from the query string.
		for _, field := range config.filterFields {
			value := r.URL.Query().Get(field)
			if value == "" || strings.EqualFold(value, "all") {
				continue
			}
			var matched []record
			for _, rec := range records {
				if fieldValue, ok := rec[field].(string); ok && strings.EqualFold(fieldValue, value) {
					matched = append(matched, rec)
				}
			}
			records = matched
		}

		if records == nil {
			records = []record{}
		}
		// Collections use the {"data": ...} envelope; entities below
		// are bare objects. The client normalizes both.
		writeJSON(w, http.StatusOK, map[string]any{"data": records})
	}
}

func (s *server) handleGet(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := s.store.get(resource, chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *server) handleCreate(resource string, config resourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		if config.uniqueField != "" &&
			s.store.hasDuplicate(resource, config.uniqueField, body[config.uniqueField], "") {
			writeError(w, http.StatusConflict, "Duplicate entry")
			return
		}
		created := s.store.insert(resource, body)
		writeJSON(w, http.StatusCreated, created)
	}
}

func (s *server) handleUpdate(resource string, config resourceConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		if config.uniqueField != "" &&
			s.store.hasDuplicate(resource, config.uniqueField, body[config.uniqueField], id) {
			writeError(w, http.StatusConflict, "Duplicate entry")
			return
		}
		updated, found := s.store.replace(resource, id, body)
		if !found {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func (s *server) handlePatch(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		patched, found := s.store.patch(resource, chi.URLParam(r, "id"), body)
		if !found {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		writeJSON(w, http.StatusOK, patched)
	}
}

func (s *server) handleDelete(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.store.remove(resource, chi.URLParam(r, "id")) {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleDonationStats aggregates the donor and urgent-request
// collections on every call; the mock has no materialized views.
func (s *server) handleDonationStats(w http.ResponseWriter, r *http.Request) {
	byStatus := s.store.countBy("blood-donation", "status")
	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"totalDonors":        s.store.size("blood-donation"),
		"byStatus":           byStatus,
		"byBloodGroup":       s.store.countBy("blood-donation", "bloodGroup"),
		"openRequests":       s.store.countBy("urgent-request", "status")["open"],
		"donationsThisMonth": byStatus["completed"],
	}})
}

func (s *server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, record{
		"id":       "admin-1",
		"fullName": "Mock Administrator",
		"email":    "admin@carewell.test",
		"role":     "admin",
	})
}

func (s *server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	body["id"] = "admin-1"
	writeJSON(w, http.StatusOK, body)
}

// handleGalleryUpload accepts the multipart form the client sends:
// title, optional caption, the blake3 digest, and the image bytes.
func (s *server) handleGalleryUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	title := r.FormValue("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	content, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading image")
		return
	}

	// The client sends the image's blake3 digest alongside the bytes;
	// reject uploads that arrived corrupted.
	digest := blake3.Sum256(content)
	digestHex := hex.EncodeToString(digest[:])
	if claimed := r.FormValue("digest"); claimed != "" && claimed != digestHex {
		writeError(w, http.StatusBadRequest, "digest mismatch")
		return
	}

	created := s.store.insert("gallery", record{
		"title":    title,
		"caption":  r.FormValue("caption"),
		"digest":   digestHex,
		"imageUrl": "/static/gallery/" + header.Filename,
	})
	writeJSON(w, http.StatusCreated, created)
}

// decodeBody parses the JSON request body, writing a 400 with the
// standard {message} shape on failure.
func decodeBody(w http.ResponseWriter, r *http.Request) (record, bool) {
	var body record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the API's error convention: a JSON object whose
// message field clients surface verbatim.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
