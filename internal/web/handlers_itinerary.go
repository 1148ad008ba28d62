package web

import (
	"net/http"

	"wedding-planner/internal/store"
)

type itineraryRequest struct {
	EventID  int64  `json:"eventId"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Location string `json:"location"`
	People   string `json:"people"`
	Notes    string `json:"notes"`
	Order    int    `json:"order"`
}

func (i itineraryRequest) params() store.ItineraryParams {
	return store.ItineraryParams{
		EventID:  i.EventID,
		Time:     i.Time,
		Title:    i.Title,
		Location: i.Location,
		People:   i.People,
		Notes:    i.Notes,
		Order:    i.Order,
	}
}

func (s *Server) handleListItinerary(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItinerary(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

func (s *Server) handleCreateItineraryItem(w http.ResponseWriter, r *http.Request) {
	var req itineraryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EventID <= 0 || req.Time == "" || req.Title == "" {
		writeError(w, r, http.StatusBadRequest, "eventId, time and title are required")
		return
	}

	item, err := s.store.CreateItineraryItem(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, item)
}

func (s *Server) handleUpdateItineraryItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req itineraryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EventID <= 0 || req.Time == "" || req.Title == "" {
		writeError(w, r, http.StatusBadRequest, "eventId, time and title are required")
		return
	}

	if err := s.store.UpdateItineraryItem(r.Context(), id, req.params()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := s.store.DeleteItineraryItem(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
