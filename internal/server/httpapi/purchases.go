package httpapi

import (
	"net/http"

	"github.com/beatforge/backbeat/internal/model"
)

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := s.purchases.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchases)
}

func (s *Server) handleRecordPurchase(w http.ResponseWriter, r *http.Request) {
	var in model.CreatePurchase
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.purchases.Record(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "purchaseID")
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := s.purchases.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "purchaseID")
	if err != nil {
		writeError(w, err)
		return
	}
	var patch model.PurchasePatch
	if err := decode(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.purchases.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
