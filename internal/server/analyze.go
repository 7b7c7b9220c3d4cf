package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/vision"
)

type analyzeRequest struct {
	// Image is a data URL; the multipart form field "screenshot" is the
	// alternative for raw uploads.
	Image       string `json:"image"`
	SkipRouting *bool  `json:"skipRouting,omitempty"`
}

type analyzeResponse struct {
	Token  string                   `json:"token,omitempty"`
	Result *pipeline.AnalysisResult `json:"result"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	img, skipRouting, ok := s.readAnalyzeInput(w, r)
	if !ok {
		return
	}

	result, err := s.orch.ProcessScreenshot(r.Context(), img, skipRouting)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := analyzeResponse{Result: result}
	if skipRouting {
		token := uuid.New()
		s.mu.Lock()
		s.pending[token] = result
		s.mu.Unlock()
		resp.Token = token.String()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) readAnalyzeInput(w http.ResponseWriter, r *http.Request) (vision.Image, bool, bool) {
	skipRouting := true

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			s.writeError(w, http.StatusBadRequest, "parse multipart form: "+err.Error())
			return vision.Image{}, false, false
		}
		if v := r.FormValue("skipRouting"); v == "false" {
			skipRouting = false
		}
		file, header, err := r.FormFile("screenshot")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "screenshot file is required")
			return vision.Image{}, false, false
		}
		defer file.Close()
		raw, err := io.ReadAll(file)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "read screenshot: "+err.Error())
			return vision.Image{}, false, false
		}
		return vision.ImageFromBytes(raw, header.Header.Get("Content-Type")), skipRouting, true
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return vision.Image{}, false, false
	}
	if req.Image == "" {
		s.writeError(w, http.StatusBadRequest, "image is required")
		return vision.Image{}, false, false
	}
	if req.SkipRouting != nil {
		skipRouting = *req.SkipRouting
	}
	return vision.ImageFromDataURL(req.Image), skipRouting, true
}
