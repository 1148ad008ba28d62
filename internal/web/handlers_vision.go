package web

import (
	"errors"
	"net/http"
	"strings"

	"wedding-planner/internal/imagesearch"
	"wedding-planner/internal/store"
)

type visionItemRequest struct {
	Section  string `json:"section"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	Order    int    `json:"order"`
}

func (v visionItemRequest) params() store.VisionItemParams {
	return store.VisionItemParams{
		Section:  v.Section,
		ImageURL: v.ImageURL,
		Title:    v.Title,
		Notes:    v.Notes,
		Order:    v.Order,
	}
}

func (s *Server) handleListVisionItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListVisionItems(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

func (s *Server) handleCreateVisionItem(w http.ResponseWriter, r *http.Request) {
	var req visionItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Section == "" {
		writeError(w, r, http.StatusBadRequest, "section is required")
		return
	}

	item, err := s.store.CreateVisionItem(r.Context(), req.params())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, item)
}

func (s *Server) handleUpdateVisionItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req visionItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Section == "" {
		writeError(w, r, http.StatusBadRequest, "section is required")
		return
	}

	if err := s.store.UpdateVisionItem(r.Context(), id, req.params()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleDeleteVisionItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := s.store.DeleteVisionItem(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// handleSearchImages queries the configured stock-photo providers.
func (s *Server) handleSearchImages(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	images, err := s.images.Search(r.Context(), query)
	if errors.Is(err, imagesearch.ErrNoProviders) {
		writeError(w, r, http.StatusServiceUnavailable, "No image search providers configured")
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"images": images})
}

// handleUploadImage stores an uploaded vision-board image in S3 and
// returns its public URL.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if s.blobs == nil {
		writeError(w, r, http.StatusServiceUnavailable, "Image uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxImageSize)

	if err := r.ParseMultipartForm(s.cfg.Upload.MaxImageSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, r, http.StatusBadRequest, "File must be an image")
		return
	}

	url, err := s.blobs.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"url": url})
}
