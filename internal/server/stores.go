package server

import (
	"net/http"
)

type storeResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Items any    `json:"items"`
}

// handleStores lists the contents of one domain store for the dashboard
// views. Kinds mirror the router's targets.
func (s *Server) handleStores(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	ctx := r.Context()

	var (
		items any
		n     int
		err   error
	)
	switch kind {
	case "seasons":
		v, e := s.stores.Seasons.List(ctx)
		items, n, err = v, len(v), e
	case "games":
		v, e := s.stores.Games.List(ctx)
		items, n, err = v, len(v), e
	case "players":
		v, e := s.stores.Players.List(ctx)
		items, n, err = v, len(v), e
	case "recruits":
		v, e := s.stores.Recruits.List(ctx)
		items, n, err = v, len(v), e
	case "coaches":
		v, e := s.stores.Coaches.List(ctx)
		items, n, err = v, len(v), e
	case "teams":
		v, e := s.stores.Teams.List(ctx)
		items, n, err = v, len(v), e
	default:
		s.writeError(w, http.StatusNotFound, "unknown store kind: "+kind)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, storeResponse{Kind: kind, Count: n, Items: items})
}

// handleExport streams the full dynasty workbook.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	raw, err := s.export.ExportDynastyXLSX(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="dynasty.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		s.logger.Warn("export write failed", "error", err)
	}
}
