package server

import (
	"net/http"
	"time"
)

// handleEcho godoc
// @Title Echo message
// @Description Echoes the submitted message back with a server-side timestamp.
// @Resource Echo
// @Accept json
// @Produce json
// @Param request body EchoRequest true "Message payload"
// @Success 200 {object} EchoResponse
// @Failure 422 {object} APIError
// @Route /echo [post]
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	var req EchoRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, errInvalidPayload, validationDetails(err))
		return
	}

	s.writeJSON(w, http.StatusOK, EchoResponse{
		Message:   string(*req.Message),
		Timestamp: time.Now().UTC(),
	})
}
