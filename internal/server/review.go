package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/internal/vision"
)

type commitRequest struct {
	Token string                `json:"token,omitempty"`
	Data  *vision.ExtractedData `json:"data,omitempty"`
}

type commitResponse struct {
	Committed  bool                 `json:"committed"`
	ScreenType string               `json:"screenType"`
	Data       vision.ExtractedData `json:"data"`
}

// handleCommit is the second phase: route previously analyzed data into the
// stores. The client either replays a review token from /v1/analyze or posts
// the (possibly edited) extracted data inline. Committing the same data
// twice inserts twice; the review UI is expected to drop the token after a
// successful commit.
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}

	var (
		data  vision.ExtractedData
		token uuid.UUID
	)
	switch {
	case req.Data != nil:
		data = *req.Data
	case req.Token != "":
		var err error
		token, err = uuid.Parse(req.Token)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid token")
			return
		}
		s.mu.Lock()
		result, ok := s.pending[token]
		s.mu.Unlock()
		if !ok {
			s.writeError(w, http.StatusNotFound, "unknown review token")
			return
		}
		data = result.Data
	default:
		s.writeError(w, http.StatusBadRequest, "token or data is required")
		return
	}

	if err := s.orch.RouteExtractedData(r.Context(), data); err != nil {
		// keep the token so a failed commit can be retried
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if token != uuid.Nil {
		s.mu.Lock()
		delete(s.pending, token)
		s.mu.Unlock()
	}
	s.writeJSON(w, http.StatusOK, commitResponse{
		Committed:  true,
		ScreenType: string(data.ScreenType),
		Data:       data,
	})
}

// handleDiscard drops a pending analysis without touching any store.
func (s *Server) handleDiscard(w http.ResponseWriter, r *http.Request) {
	token, err := uuid.Parse(r.PathValue("token"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid token")
		return
	}
	s.mu.Lock()
	_, ok := s.pending[token]
	delete(s.pending, token)
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown review token")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
