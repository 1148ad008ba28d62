package web

import (
	"net/http"

	"wedding-planner/internal/store"
)

type partyMemberRequest struct {
	Name             string `json:"name"`
	Role             string `json:"role"`
	Side             string `json:"side"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Responsibilities string `json:"responsibilities"`
	AttireDetails    string `json:"attireDetails"`
	Notes            string `json:"notes"`
}

func (p partyMemberRequest) params() store.PartyMemberParams {
	return store.PartyMemberParams{
		Name:             p.Name,
		Role:             p.Role,
		Side:             p.Side,
		Email:            p.Email,
		Phone:            p.Phone,
		Responsibilities: p.Responsibilities,
		AttireDetails:    p.AttireDetails,
		Notes:            p.Notes,
	}
}

func (s *Server) handleListPartyMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.store.ListPartyMembers(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, members)
}

func (s *Server) handleCreatePartyMember(w http.ResponseWriter, r *http.Request) {
	var req partyMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Role == "" {
		writeError(w, r, http.StatusBadRequest, "name and role are required")
		return
	}

	member, err := s.store.CreatePartyMember(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, member)
}

func (s *Server) handleUpdatePartyMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "memberID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var req partyMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Role == "" {
		writeError(w, r, http.StatusBadRequest, "name and role are required")
		return
	}

	if err := s.store.UpdatePartyMember(r.Context(), id, req.params()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeletePartyMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "memberID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := s.store.DeletePartyMember(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
