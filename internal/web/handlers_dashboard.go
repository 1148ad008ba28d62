package web

import (
	"net/http"
	"time"
)

// handleDashboardStats returns the aggregate numbers for the landing
// page. The total budget comes from configuration, everything else from
// the database.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetDashboardStats(r.Context(), time.Now())
	if err != nil {
		serverError(w, r, err)
		return
	}
	stats.TotalBudget = s.cfg.Budget.Total

	writeJSON(w, r, http.StatusOK, stats)
}
