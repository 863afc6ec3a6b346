package server

import (
	"net/http"
	"time"
)

// serviceVersion is the fixed version string reported by /info.
const serviceVersion = "1.0.0"

// handleInfo godoc
// @Title Service info
// @Description Returns service metadata including name, version, git SHA and uptime.
// @Resource System
// @Produce json
// @Success 200 {object} InfoResponse
// @Route /info [get]
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, InfoResponse{
		ServiceName:   s.cfg.ServiceName,
		Version:       serviceVersion,
		GitSHA:        s.cfg.GitSHA,
		UptimeSeconds: round2(time.Since(s.startedAt).Seconds()),
	})
}
