// Package web provides the HTTP server and JSON API handlers for the
// wedding planner.
package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"wedding-planner/internal/auth"
	"wedding-planner/internal/blob"
	"wedding-planner/internal/config"
	"wedding-planner/internal/guestlist"
	"wedding-planner/internal/imagesearch"
	"wedding-planner/internal/logging"
	"wedding-planner/internal/store"
	"wedding-planner/internal/web/middleware"
)

// csvStore is what the guest import/export handlers need from
// persistence. Satisfied by store.CSVStore and by in-memory fakes in
// tests.
type csvStore interface {
	guestlist.Store
	ListGuestsForExport(ctx context.Context) ([]guestlist.ExportGuest, error)
	ListAttendanceForExport(ctx context.Context) ([]guestlist.Attendance, error)
}

// userStore is what the login handler needs from persistence.
type userStore interface {
	GetUserByUsername(ctx context.Context, username string) (store.User, error)
}

// Server is the HTTP server for the wedding planner API.
type Server struct {
	cfg      *config.Config
	store    *store.Store
	users    userStore
	csv      csvStore
	importer *guestlist.Importer
	auth     *auth.Manager
	images   *imagesearch.Client
	blobs    *blob.Uploader

	router *chi.Mux
	server *http.Server
}

// NewServer creates a new Server instance. blobs may be nil when no
// bucket is configured; the upload endpoint then reports 503.
func NewServer(cfg *config.Config, st *store.Store, authMgr *auth.Manager,
	images *imagesearch.Client, blobs *blob.Uploader) *Server {

	csv := st.CSV()
	s := &Server{
		cfg:      cfg,
		store:    st,
		users:    st,
		csv:      csv,
		importer: guestlist.NewImporter(csv),
		auth:     authMgr,
		images:   images,
		blobs:    blobs,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))

	// Security hardening
	s.router.Use(securityHeaders)

	// Rate limiting: 100 requests per minute per IP
	limiter := newRateLimiter(100, time.Minute)
	s.router.Use(limiter.middleware)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Post("/api/auth/login", s.handleLogin)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.auth))

		// Guest list
		r.Get("/guests", s.handleListGuests)
		r.Post("/guests", s.handleCreateGuest)
		r.Put("/guests/{guestID}", s.handleUpdateGuest)
		r.Delete("/guests/{guestID}", s.handleDeleteGuest)
		r.Get("/guests/events", s.handleListGuestEvents)
		r.Post("/guests/rsvp", s.handleUpdateRSVP)
		r.Post("/guests/import", s.handleImportGuests)
		r.Get("/guests/export", s.handleExportGuests)

		// Wedding events
		r.Get("/events", s.handleListEvents)
		r.Post("/events", s.handleCreateEvent)
		r.Put("/events/{eventID}", s.handleUpdateEvent)
		r.Delete("/events/{eventID}", s.handleDeleteEvent)

		// Budget
		r.Get("/budget", s.handleGetBudget)
		r.Post("/budget/categories", s.handleCreateBudgetCategory)
		r.Put("/budget/categories/{categoryID}", s.handleUpdateBudgetCategory)
		r.Delete("/budget/categories/{categoryID}", s.handleDeleteBudgetCategory)
		r.Post("/budget/items", s.handleCreateBudgetItem)
		r.Put("/budget/items/{itemID}", s.handleUpdateBudgetItem)
		r.Delete("/budget/items/{itemID}", s.handleDeleteBudgetItem)

		// Seating
		r.Get("/tables", s.handleListTables)
		r.Post("/tables", s.handleCreateTable)
		r.Put("/tables/{tableID}", s.handleUpdateTable)
		r.Delete("/tables/{tableID}", s.handleDeleteTable)
		r.Post("/tables/assign", s.handleAssignGuest)

		// Tasks
		r.Get("/tasks", s.handleListTasks)
		r.Post("/tasks", s.handleCreateTask)
		r.Put("/tasks/{taskID}", s.handleUpdateTask)
		r.Delete("/tasks/{taskID}", s.handleDeleteTask)

		// Itinerary
		r.Get("/itinerary", s.handleListItinerary)
		r.Post("/itinerary", s.handleCreateItineraryItem)
		r.Put("/itinerary/{itemID}", s.handleUpdateItineraryItem)
		r.Delete("/itinerary/{itemID}", s.handleDeleteItineraryItem)

		// Vendors
		r.Get("/vendors", s.handleListVendors)
		r.Post("/vendors", s.handleCreateVendor)
		r.Put("/vendors/{vendorID}", s.handleUpdateVendor)
		r.Delete("/vendors/{vendorID}", s.handleDeleteVendor)

		// Wedding party
		r.Get("/wedding-party", s.handleListPartyMembers)
		r.Post("/wedding-party", s.handleCreatePartyMember)
		r.Put("/wedding-party/{memberID}", s.handleUpdatePartyMember)
		r.Delete("/wedding-party/{memberID}", s.handleDeletePartyMember)

		// Vision board
		r.Get("/vision", s.handleListVisionItems)
		r.Post("/vision", s.handleCreateVisionItem)
		r.Put("/vision/{itemID}", s.handleUpdateVisionItem)
		r.Delete("/vision/{itemID}", s.handleDeleteVisionItem)
		r.Get("/vision/search", s.handleSearchImages)
		r.Post("/upload", s.handleUploadImage)

		// Dashboard
		r.Get("/dashboard/stats", s.handleDashboardStats)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	logging.FromContext(context.Background()).Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// JSON API only, no embedded resources
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// rateLimiter implements a simple token bucket rate limiter per IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

// newRateLimiter creates a rate limiter with the specified rate per window.
func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// cleanup removes stale visitor entries every minute.
func (rl *rateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow checks if the request should be allowed and consumes a token if so.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{
			tokens:    rl.rate - 1,
			lastReset: time.Now(),
		}
		return true
	}

	if time.Since(v.lastReset) > rl.window {
		v.tokens = rl.rate - 1
		v.lastReset = time.Now()
		return true
	}

	if v.tokens <= 0 {
		return false
	}

	v.tokens--
	return true
}

// middleware returns an HTTP middleware that rate limits by IP.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
			ip = realIP
		}

		if !rl.allow(ip) {
			w.Header().Set("Retry-After", "60")
			writeError(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
