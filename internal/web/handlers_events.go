package web

import (
	"net/http"

	"wedding-planner/internal/store"
)

type eventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (e eventRequest) params() store.EventParams {
	return store.EventParams{
		Name:        e.Name,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Venue:       e.Venue,
		Description: e.Description,
		Order:       e.Order,
	}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListEvents(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, events)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Date == "" {
		writeError(w, r, http.StatusBadRequest, "name and date are required")
		return
	}

	event, err := s.store.CreateEvent(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "eventID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Date == "" {
		writeError(w, r, http.StatusBadRequest, "name and date are required")
		return
	}

	event, err := s.store.UpdateEvent(r.Context(), id, req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "eventID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := s.store.DeleteEvent(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
