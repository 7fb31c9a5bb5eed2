// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/pdiddy/idea-generator/internal/generator"
	"github.com/pdiddy/idea-generator/pkg/types"
)

// Response is the JSON envelope for every API reply.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response for the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// StateRequest changes the session selection. Omitted fields are left as they are.
type StateRequest struct {
	Mode       *string `json:"mode,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
}

// GenerateResponse is the session state after a generation plus the idea itself.
type GenerateResponse struct {
	generator.Session
	Idea types.Idea `json:"idea"`
}

const maxBodyBytes = 1 << 16

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{Status: "ok"})
}

// handleGetState handles GET /api/state
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	s.sendSuccess(w, &snap)
}

// handlePutState handles PUT /api/state
func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON object with mode and/or difficulty")
		return
	}

	var (
		mode       types.Mode
		difficulty types.Difficulty
		err        error
	)
	if req.Mode != nil {
		if mode, err = types.ParseMode(*req.Mode); err != nil {
			s.sendError(w, http.StatusBadRequest, "INVALID_MODE", err.Error())
			return
		}
	}
	if req.Difficulty != nil {
		if difficulty, err = types.ParseDifficulty(*req.Difficulty); err != nil {
			s.sendError(w, http.StatusBadRequest, "INVALID_DIFFICULTY", err.Error())
			return
		}
	}

	s.mu.Lock()
	if mode != "" {
		s.session.Mode = mode
	}
	if difficulty != "" {
		s.session.Difficulty = difficulty
	}
	snap := s.session.Snapshot()
	s.mu.Unlock()

	s.sendSuccess(w, &snap)
}

// handleGenerate handles POST /api/generate
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	idea, err := s.session.Generate(s.gen)
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("generation failed", "error", err)
		s.sendError(w, http.StatusInternalServerError, "GENERATION_FAILED", "Failed to generate idea")
		return
	}

	if s.recorder != nil {
		rec, err := s.recorder.Record(r.Context(), idea)
		if err != nil {
			s.logger.Warn("recording idea failed", "error", err)
		} else {
			idea = rec
		}
	}

	s.sendSuccess(w, &GenerateResponse{Session: snap, Idea: idea})
}

// handleLists handles GET /api/lists
func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	summary := s.catalog.Summary()
	s.sendSuccess(w, &summary)
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&Response{Success: true, Data: data}); err != nil {
		s.logger.Warn("writing response failed", "error", err)
	}
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
	}); err != nil {
		s.logger.Warn("writing response failed", "error", err)
	}
}
