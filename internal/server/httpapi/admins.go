package httpapi

import (
	"net/http"

	"github.com/beatforge/backbeat/internal/model"
)

func (s *Server) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := s.admins.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admins)
}

func (s *Server) handleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	var in model.CreateAdmin
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	a, err := s.admins.Grant(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "adminID")
	if err != nil {
		writeError(w, err)
		return
	}
	a, err := s.admins.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleUpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "adminID")
	if err != nil {
		writeError(w, err)
		return
	}
	var p model.AdminPatch
	if err := decode(r, &p); err != nil {
		writeError(w, err)
		return
	}
	a, err := s.admins.Update(r.Context(), id, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "adminID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.admins.Revoke(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
