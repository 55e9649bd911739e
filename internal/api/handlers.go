package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bbarker/listnr-tools/internal/leaf"
	"github.com/bbarker/listnr-tools/internal/pipeline"
	"github.com/bbarker/listnr-tools/internal/subst"
)

// maxBodyBytes caps request bodies; documents are bounded inputs, not streams.
const maxBodyBytes = 16 << 20 // 16MB

type chunkRequest struct {
	Content       string       `json:"content"`
	Limit         int          `json:"limit,omitempty"`
	Separator     *string      `json:"separator,omitempty"`
	Substitutions []subst.Rule `json:"substitutions,omitempty"`
}

type chunkResponse struct {
	Chunks []leaf.Chunk `json:"chunks"`
	Count  int          `json:"count"`
}

// handleChunk runs one document through the pipeline. The body is either a
// JSON chunkRequest, or raw markdown when Content-Type is text/markdown or
// text/plain.
func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req chunkRequest
	contentType := r.Header.Get("Content-Type")
	raw := strings.HasPrefix(contentType, "text/markdown") || strings.HasPrefix(contentType, "text/plain")

	var content []byte
	if raw {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			jsonError(w, "failed to read body", http.StatusBadRequest)
			return
		}
		content = body
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
			return
		}
		content = []byte(req.Content)
	}

	cfg := s.cfg
	if req.Limit != 0 {
		if req.Limit < 1 {
			jsonError(w, "limit must be at least 1", http.StatusBadRequest)
			return
		}
		cfg.Limit = req.Limit
	}
	if req.Separator != nil {
		cfg.Separator = *req.Separator
	}

	var table *subst.Table
	if len(req.Substitutions) > 0 {
		var err error
		table, err = subst.NewTable(req.Substitutions)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	chunks, err := pipeline.New(table, cfg).RunBytes(content)
	if err != nil {
		if errors.Is(err, pipeline.ErrInvalidUTF8) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "chunking failed", http.StatusInternalServerError)
		return
	}

	resp := chunkResponse{Chunks: chunks, Count: len(chunks)}
	if resp.Chunks == nil {
		resp.Chunks = []leaf.Chunk{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
