package web

import (
	"net/http"

	"wedding-planner/internal/store"
)

type budgetCategoryRequest struct {
	EventID       *int64  `json:"eventId"`
	Name          string  `json:"name"`
	PlannedAmount float64 `json:"plannedAmount"`
	Order         int     `json:"order"`
}

type budgetItemRequest struct {
	CategoryID int64   `json:"categoryId"`
	Name       string  `json:"name"`
	Vendor     string  `json:"vendor"`
	Planned    float64 `json:"planned"`
	Actual     float64 `json:"actual"`
	Paid       float64 `json:"paid"`
	DueDate    string  `json:"dueDate"`
	Notes      string  `json:"notes"`
}

func (b budgetItemRequest) params() store.BudgetItemParams {
	return store.BudgetItemParams{
		CategoryID: b.CategoryID,
		Name:       b.Name,
		Vendor:     b.Vendor,
		Planned:    b.Planned,
		Actual:     b.Actual,
		Paid:       b.Paid,
		DueDate:    b.DueDate,
		Notes:      b.Notes,
	}
}

// handleGetBudget returns categories with aggregated totals plus all
// line items in one payload.
func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListBudgetCategories(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	items, err := s.store.ListBudgetItems(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"categories": categories,
		"items":      items,
	})
}

func (s *Server) handleCreateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	var req budgetCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	category, err := s.store.CreateBudgetCategory(r.Context(), store.BudgetCategoryParams{
		EventID:       req.EventID,
		Name:          req.Name,
		PlannedAmount: req.PlannedAmount,
		Order:         req.Order,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, category)
}

func (s *Server) handleUpdateBudgetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "categoryID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req budgetCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	err = s.store.UpdateBudgetCategory(r.Context(), id, store.BudgetCategoryParams{
		EventID:       req.EventID,
		Name:          req.Name,
		PlannedAmount: req.PlannedAmount,
		Order:         req.Order,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteBudgetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "categoryID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := s.store.DeleteBudgetCategory(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleCreateBudgetItem(w http.ResponseWriter, r *http.Request) {
	var req budgetItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.CategoryID <= 0 {
		writeError(w, r, http.StatusBadRequest, "name and categoryId are required")
		return
	}

	item, err := s.store.CreateBudgetItem(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, item)
}

func (s *Server) handleUpdateBudgetItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req budgetItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	if err := s.store.UpdateBudgetItem(r.Context(), id, req.params()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteBudgetItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := s.store.DeleteBudgetItem(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
