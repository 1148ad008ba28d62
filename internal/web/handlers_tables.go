package web

import (
	"net/http"

	"wedding-planner/internal/store"
)

type tableRequest struct {
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
}

func (t tableRequest) params() store.TableParams {
	capacity := t.Capacity
	if capacity <= 0 {
		capacity = 10
	}
	return store.TableParams{
		Name:      t.Name,
		Capacity:  capacity,
		PositionX: t.PositionX,
		PositionY: t.PositionY,
	}
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := s.store.ListTables(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tables)
}

func (s *Server) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	table, err := s.store.CreateTable(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, table)
}

func (s *Server) handleUpdateTable(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tableID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid table ID")
		return
	}

	var req tableRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	if err := s.store.UpdateTable(r.Context(), id, req.params()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tableID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid table ID")
		return
	}

	if err := s.store.DeleteTable(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// handleAssignGuest seats a guest at a table. A null tableId unseats
// the guest.
func (s *Server) handleAssignGuest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GuestID int64  `json:"guestId"`
		TableID *int64 `json:"tableId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GuestID <= 0 {
		writeError(w, r, http.StatusBadRequest, "guestId is required")
		return
	}

	if err := s.store.AssignGuestToTable(r.Context(), req.GuestID, req.TableID); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
