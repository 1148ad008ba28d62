package web

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"wedding-planner/internal/auth"
	"wedding-planner/internal/config"
	"wedding-planner/internal/guestlist"
	"wedding-planner/internal/store"
)

// fakeCSVStore is an in-memory csvStore for handler tests.
type fakeCSVStore struct {
	events     []guestlist.Event
	guests     []guestlist.ExportGuest
	attendance []guestlist.Attendance
	nextID     int64
}

func (f *fakeCSVStore) ListEvents(ctx context.Context) ([]guestlist.Event, error) {
	return f.events, nil
}

func (f *fakeCSVStore) ListGuestsForDedup(ctx context.Context) ([]guestlist.DedupKey, error) {
	keys := []guestlist.DedupKey{}
	for _, g := range f.guests {
		keys = append(keys, guestlist.DedupKey{
			FirstName: g.FirstName,
			LastName:  g.LastName,
			Email:     g.Email,
		})
	}
	return keys, nil
}

func (f *fakeCSVStore) CreateGuest(ctx context.Context, g guestlist.Guest) (int64, error) {
	f.nextID++
	f.guests = append(f.guests, guestlist.ExportGuest{ID: f.nextID, Guest: g})
	return f.nextID, nil
}

func (f *fakeCSVStore) CreateAttendance(ctx context.Context, guestID, eventID int64) error {
	for _, e := range f.events {
		if e.ID == eventID {
			f.attendance = append(f.attendance, guestlist.Attendance{
				GuestID:   guestID,
				EventName: e.Name,
				Status:    "pending",
			})
		}
	}
	return nil
}

func (f *fakeCSVStore) ListGuestsForExport(ctx context.Context) ([]guestlist.ExportGuest, error) {
	return f.guests, nil
}

func (f *fakeCSVStore) ListAttendanceForExport(ctx context.Context) ([]guestlist.Attendance, error) {
	return f.attendance, nil
}

// fakeUserStore holds a single account.
type fakeUserStore struct {
	user store.User
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (store.User, error) {
	if username != f.user.Username {
		return store.User{}, store.ErrNotFound
	}
	return f.user, nil
}

func newTestServer(t *testing.T, csv csvStore, users userStore) *Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 60 * time.Second
	cfg.Upload.MaxImportSize = 10 * 1024 * 1024
	cfg.Upload.MaxImageSize = 5 * 1024 * 1024
	cfg.Budget.Total = 80000

	s := &Server{
		cfg:      cfg,
		users:    users,
		csv:      csv,
		importer: guestlist.NewImporter(csv),
		auth:     auth.New("test-secret", time.Hour),
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func authHeader(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.auth.IssueToken(auth.Claims{UserID: 1, Username: "planner"}, time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	return "Bearer " + token
}

func multipartFile(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	fw.Write([]byte(content))
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestImportEndpoint(t *testing.T) {
	fake := &fakeCSVStore{events: []guestlist.Event{{ID: 1, Name: "Wedding Day"}}}
	s := newTestServer(t, fake, &fakeUserStore{})

	csv := "first_name,last_name,email\nJane,Doe,jane@example.com\nJohn,Smith,\n"
	body, contentType := multipartFile(t, "file", "guests.csv", csv)

	req := httptest.NewRequest(http.MethodPost, "/api/guests/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result guestlist.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !result.Success || result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("result = %+v, want 2 imported", result)
	}
	if len(fake.attendance) != 2 {
		t.Errorf("attendance rows = %d, want 2", len(fake.attendance))
	}
}

func TestImportEndpointNoFile(t *testing.T) {
	s := newTestServer(t, &fakeCSVStore{}, &fakeUserStore{})

	body, contentType := multipartFile(t, "attachment", "guests.csv", "first_name\nJane\n")

	req := httptest.NewRequest(http.MethodPost, "/api/guests/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No file provided") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestImportEndpointEmptyFile(t *testing.T) {
	s := newTestServer(t, &fakeCSVStore{}, &fakeUserStore{})

	body, contentType := multipartFile(t, "file", "guests.csv", "first_name,last_name\n")

	req := httptest.NewRequest(http.MethodPost, "/api/guests/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No data found in file") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestImportEndpointUnauthorized(t *testing.T) {
	s := newTestServer(t, &fakeCSVStore{}, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/guests/import", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	fake := &fakeCSVStore{
		guests: []guestlist.ExportGuest{
			{ID: 1, Guest: guestlist.Guest{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}},
		},
		attendance: []guestlist.Attendance{
			{GuestID: 1, EventName: "Wedding Day", Status: "confirmed"},
		},
	}
	s := newTestServer(t, fake, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/guests/export", nil)
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "wedding-guests-") {
		t.Errorf("Content-Disposition = %q", got)
	}

	lines := strings.Split(rec.Body.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, body = %q", len(lines), rec.Body.String())
	}
	if !strings.HasSuffix(lines[0], ",rsvp_wedding_day") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",confirmed") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("let-me-in")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	users := &fakeUserStore{user: store.User{
		ID: 7, Username: "planner", PasswordHash: hash, Name: "Priya", Role: "planner",
	}}
	s := newTestServer(t, &fakeCSVStore{}, users)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid credentials", `{"username":"planner","password":"let-me-in"}`, http.StatusOK},
		{"wrong password", `{"username":"planner","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"ghost","password":"let-me-in"}`, http.StatusUnauthorized},
		{"missing fields", `{"username":"planner"}`, http.StatusBadRequest},
		{"malformed body", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			s.Router().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp loginResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			claims, err := s.auth.VerifyToken(resp.Token)
			if err != nil {
				t.Fatalf("VerifyToken() error = %v", err)
			}
			if claims.UserID != 7 || claims.Username != "planner" {
				t.Errorf("claims = %+v", claims)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t, &fakeCSVStore{}, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/guests", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}
