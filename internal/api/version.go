package api

import (
	"net/http"

	"github.com/shaharia-lab/contactmail/internal/build"
)

// handleVersion reports build metadata.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version":    build.Version,
		"commit":     build.CommitSHA,
		"build_date": build.BuildDate,
	})
}
