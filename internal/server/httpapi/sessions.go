package httpapi

import (
	"net/http"

	"github.com/beatforge/backbeat/internal/model"
)

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var in model.CreateSession
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.sessions.Start(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		writeError(w, err)
		return
	}
	var p model.SessionPatch
	if err := decode(r, &p); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.sessions.Update(r.Context(), id, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSubmitPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		writeError(w, err)
		return
	}
	var in model.CreatePerformance
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	m, err := s.sessions.SubmitPerformance(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleGetPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		writeError(w, err)
		return
	}
	m, err := s.sessions.GetPerformance(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
