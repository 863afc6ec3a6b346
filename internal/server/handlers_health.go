package server

import (
	"net/http"
)

// handleHealth godoc
// @Title Health check
// @Description Returns service health status.
// @Resource System
// @Produce json
// @Success 200 {object} HealthResponse
// @Route /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
