package httpapi

import (
	"net/http"

	"github.com/beatforge/backbeat/internal/model"
)

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.songs.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var in model.CreateSong
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	song, err := s.songs.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, song)
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "songID")
	if err != nil {
		writeError(w, err)
		return
	}
	song, err := s.songs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "songID")
	if err != nil {
		writeError(w, err)
		return
	}
	var p model.SongPatch
	if err := decode(r, &p); err != nil {
		writeError(w, err)
		return
	}
	song, err := s.songs.Update(r.Context(), id, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "songID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.songs.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
