package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"wedding-planner/internal/guestlist"
	"wedding-planner/internal/store"
)

type guestRequest struct {
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Group               string  `json:"group"`
	MealPreference      string  `json:"mealPreference"`
	DietaryRestrictions string  `json:"dietaryRestrictions"`
	PlusOne             bool    `json:"plusOne"`
	PlusOneName         string  `json:"plusOneName"`
	TableID             *int64  `json:"tableId"`
	Notes               string  `json:"notes"`
	EventIDs            []int64 `json:"eventIds"`
}

func (g guestRequest) params() store.GuestParams {
	return store.GuestParams{
		FirstName:           g.FirstName,
		LastName:            g.LastName,
		Email:               g.Email,
		Phone:               g.Phone,
		Group:               g.Group,
		MealPreference:      g.MealPreference,
		DietaryRestrictions: g.DietaryRestrictions,
		PlusOne:             g.PlusOne,
		PlusOneName:         g.PlusOneName,
		TableID:             g.TableID,
		Notes:               g.Notes,
		EventIDs:            g.EventIDs,
	}
}

func (s *Server) handleListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.store.ListGuests(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, guests)
}

func (s *Server) handleListGuestEvents(w http.ResponseWriter, r *http.Request) {
	links, err := s.store.ListGuestEvents(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, links)
}

func (s *Server) handleCreateGuest(w http.ResponseWriter, r *http.Request) {
	var req guestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" {
		writeError(w, r, http.StatusBadRequest, "firstName is required")
		return
	}

	guest, err := s.store.CreateGuest(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, guest)
}

func (s *Server) handleUpdateGuest(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "guestID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid guest ID")
		return
	}

	var req guestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" {
		writeError(w, r, http.StatusBadRequest, "firstName is required")
		return
	}

	guest, err := s.store.UpdateGuest(r.Context(), id, req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, guest)
}

func (s *Server) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "guestID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid guest ID")
		return
	}

	if err := s.store.DeleteGuest(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleUpdateRSVP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GuestID    int64  `json:"guestId"`
		EventID    int64  `json:"eventId"`
		Status     string `json:"status"`
		MealChoice string `json:"mealChoice"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GuestID <= 0 || req.EventID <= 0 {
		writeError(w, r, http.StatusBadRequest, "guestId and eventId are required")
		return
	}
	switch req.Status {
	case "pending", "confirmed", "declined":
	default:
		writeError(w, r, http.StatusBadRequest, "status must be pending, confirmed or declined")
		return
	}

	if err := s.store.UpdateRSVP(r.Context(), req.GuestID, req.EventID, req.Status, req.MealChoice); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// handleImportGuests accepts a CSV file in the "file" multipart field
// and runs it through the import pipeline. A response with success=true
// is returned even when individual rows fail; per-row problems are
// reported in the result body.
func (s *Server) handleImportGuests(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxImportSize)

	if err := r.ParseMultipartForm(s.cfg.Upload.MaxImportSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "No file provided")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Failed to read file")
		return
	}

	result, err := s.importer.Import(r.Context(), string(data))
	if errors.Is(err, guestlist.ErrNoData) {
		writeError(w, r, http.StatusBadRequest, "No data found in file")
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// handleExportGuests serializes the full guest list, with one RSVP
// column per event, as a CSV download.
func (s *Server) handleExportGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.csv.ListGuestsForExport(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	attendance, err := s.csv.ListAttendanceForExport(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	csvText := guestlist.ExportCSV(guests, attendance)
	filename := guestlist.ExportFilename(time.Now())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(csvText))
}
