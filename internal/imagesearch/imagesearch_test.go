package imagesearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wedding-planner/internal/config"
)

func newTestClient(providers ...provider) *Client {
	return &Client{
		providers:   providers,
		perProvider: 12,
		timeout:     time.Second,
	}
}

func TestSearchNoProviders(t *testing.T) {
	c := New(config.ImageSearchConfig{PerProvider: 12, Timeout: time.Second})

	if _, err := c.Search(context.Background(), "mandap"); err != ErrNoProviders {
		t.Errorf("Search() error = %v, want ErrNoProviders", err)
	}
}

func TestSearchUnsplash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Client-ID test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("query"); got != "mandap decor" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"results": [{
			"urls": {"regular": "https://img.example/1.jpg", "thumb": "https://img.example/1-t.jpg"},
			"alt_description": "floral mandap",
			"user": {"name": "Asha", "links": {"html": "https://unsplash.example/asha"}}
		}]}`))
	}))
	defer srv.Close()

	c := newTestClient(&unsplashProvider{key: "test-key", baseURL: srv.URL, client: srv.Client()})

	images, err := c.Search(context.Background(), "mandap decor")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}

	want := Image{
		URL:          "https://img.example/1.jpg",
		ThumbnailURL: "https://img.example/1-t.jpg",
		Description:  "floral mandap",
		Credit:       "Asha",
		CreditURL:    "https://unsplash.example/asha",
		Source:       "unsplash",
	}
	if images[0] != want {
		t.Errorf("images[0] = %+v, want %+v", images[0], want)
	}
}

func TestSearchPexels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "px-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"photos": [{
			"src": {"large": "https://px.example/2.jpg", "medium": "https://px.example/2-m.jpg"},
			"alt": "table setting",
			"photographer": "Ben",
			"photographer_url": "https://pexels.example/ben"
		}]}`))
	}))
	defer srv.Close()

	c := newTestClient(&pexelsProvider{key: "px-key", baseURL: srv.URL, client: srv.Client()})

	images, err := c.Search(context.Background(), "table setting")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(images) != 1 || images[0].Source != "pexels" {
		t.Fatalf("images = %+v", images)
	}
}

func TestSearchPixabay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "pb-key" || q.Get("image_type") != "photo" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"hits": [{
			"largeImageURL": "https://pb.example/3.jpg",
			"previewURL": "https://pb.example/3-p.jpg",
			"tags": "flowers, wedding",
			"user": "Carla",
			"pageURL": "https://pixabay.example/3"
		}]}`))
	}))
	defer srv.Close()

	c := newTestClient(&pixabayProvider{key: "pb-key", baseURL: srv.URL, client: srv.Client()})

	images, err := c.Search(context.Background(), "flowers")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(images) != 1 || images[0].Source != "pixabay" {
		t.Fatalf("images = %+v", images)
	}
}

func TestSearchMergesAndTolerateFailure(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"urls": {"regular": "https://img.example/a.jpg"}}]}`))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer bad.Close()

	c := newTestClient(
		&unsplashProvider{key: "k", baseURL: good.URL, client: good.Client()},
		&pexelsProvider{key: "k", baseURL: bad.URL, client: bad.Client()},
	)

	images, err := c.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(images) != 1 || images[0].URL != "https://img.example/a.jpg" {
		t.Errorf("images = %+v", images)
	}
}

func TestSearchDeduplicatesByURL(t *testing.T) {
	payload := `{"results": [
		{"urls": {"regular": "https://img.example/same.jpg"}},
		{"urls": {"regular": "https://img.example/same.jpg"}},
		{"urls": {"regular": ""}}
	]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := newTestClient(&unsplashProvider{key: "k", baseURL: srv.URL, client: srv.Client()})

	images, err := c.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(images) != 1 {
		t.Errorf("len(images) = %d, want 1", len(images))
	}
}

func TestNewEnablesConfiguredProviders(t *testing.T) {
	c := New(config.ImageSearchConfig{
		UnsplashKey: "a",
		PixabayKey:  "c",
		PerProvider: 12,
		Timeout:     time.Second,
	})

	if len(c.providers) != 2 {
		t.Fatalf("len(providers) = %d, want 2", len(c.providers))
	}
	if c.providers[0].name() != "unsplash" || c.providers[1].name() != "pixabay" {
		t.Errorf("providers = %s, %s", c.providers[0].name(), c.providers[1].name())
	}
}
