package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"guildwar-tracker/internal/repository"
	"guildwar-tracker/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps service and repository errors onto HTTP status codes.
// Precondition violations surface verbatim so the client can show them.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrRosterFull),
		errors.Is(err, service.ErrAlreadyRostered),
		errors.Is(err, service.ErrPositionOccupied),
		errors.Is(err, service.ErrConcurrentModification),
		errors.Is(err, service.ErrGameIDTaken),
		errors.Is(err, repository.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrPlayerNotRostered),
		errors.Is(err, service.ErrInvalidPosition),
		errors.Is(err, service.ErrPlayerInactive),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrGameIDTooLong),
		errors.Is(err, service.ErrInvalidParticipant),
		errors.Is(err, service.ErrDuplicateParticipant):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
		s.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// urlID parses a numeric path parameter; 0 with false when it is not an id.
func (s *Server) urlID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt64(r *http.Request, name string) int64 {
	v, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return v
}
