package web

import (
	"net/http"

	"wedding-planner/internal/store"
)

type vendorRequest struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	ContactName string  `json:"contactName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Website     string  `json:"website"`
	ContractURL string  `json:"contractUrl"`
	TotalCost   float64 `json:"totalCost"`
	Paid        float64 `json:"paid"`
	Notes       string  `json:"notes"`
}

func (v vendorRequest) params() store.VendorParams {
	return store.VendorParams{
		Category:    v.Category,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		Website:     v.Website,
		ContractURL: v.ContractURL,
		TotalCost:   v.TotalCost,
		Paid:        v.Paid,
		Notes:       v.Notes,
	}
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.store.ListVendors(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, vendors)
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Category == "" {
		writeError(w, r, http.StatusBadRequest, "name and category are required")
		return
	}

	vendor, err := s.store.CreateVendor(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, vendor)
}

func (s *Server) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "vendorID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	var req vendorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Category == "" {
		writeError(w, r, http.StatusBadRequest, "name and category are required")
		return
	}

	if err := s.store.UpdateVendor(r.Context(), id, req.params()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "vendorID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	if err := s.store.DeleteVendor(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
