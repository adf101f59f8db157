package photos

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// Mock provider + store
// --------------------------------------------------

type MockProvider struct {
	data     []byte
	fetchErr error
	calls    int
}

func (m *MockProvider) Photo(ctx context.Context, ref string, maxWidth int) ([]byte, string, error) {
	m.calls++
	if m.fetchErr != nil {
		return nil, "", m.fetchErr
	}
	return m.data, "image/jpeg", nil
}

type MockStore struct {
	objects map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{objects: make(map[string][]byte)}
}

func (m *MockStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[key] = data
	return m.PublicURL(key), nil
}

func (m *MockStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func (m *MockStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

// --------------------------------------------------
// Resolve
// --------------------------------------------------

func TestResolve_FetchesAndCachesOnMiss(t *testing.T) {
	provider := &MockProvider{data: []byte("jpeg-bytes")}
	store := NewMockStore()
	service := NewService(provider, store)

	url1, err := service.Resolve(context.Background(), "ref123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider fetch, got %d", provider.calls)
	}
	if len(store.objects) != 1 {
		t.Fatalf("expected one cached object, got %d", len(store.objects))
	}

	// Second resolve is a cache hit: same URL, no new fetch.
	url2, err := service.Resolve(context.Background(), "ref123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url2 != url1 {
		t.Errorf("expected stable URL, got %q then %q", url1, url2)
	}
	if provider.calls != 1 {
		t.Errorf("expected no second provider fetch, got %d calls", provider.calls)
	}
}

func TestResolve_DistinctRefsGetDistinctKeys(t *testing.T) {
	provider := &MockProvider{data: []byte("jpeg-bytes")}
	store := NewMockStore()
	service := NewService(provider, store)

	url1, _ := service.Resolve(context.Background(), "ref-a")
	url2, _ := service.Resolve(context.Background(), "ref-b")
	if url1 == url2 {
		t.Errorf("expected distinct cache keys, both resolved to %q", url1)
	}
}

func TestResolve_EmptyRef(t *testing.T) {
	service := NewService(&MockProvider{}, NewMockStore())

	if _, err := service.Resolve(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty reference")
	}
}

func TestResolve_ProviderFailure(t *testing.T) {
	provider := &MockProvider{fetchErr: errors.New("quota exceeded")}
	service := NewService(provider, NewMockStore())

	if _, err := service.Resolve(context.Background(), "ref123"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

// --------------------------------------------------
// Handler
// --------------------------------------------------

func TestPhotoHandler_RedirectsToPublicURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService(&MockProvider{data: []byte("jpeg-bytes")}, NewMockStore())

	r := gin.New()
	r.GET("/photos/:ref", NewHandler(service).Get)

	req := httptest.NewRequest(http.MethodGet, "/photos/ref123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc == "" {
		t.Error("expected a Location header")
	}
}

func TestPhotoHandler_ProviderFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService(&MockProvider{fetchErr: errors.New("down")}, NewMockStore())

	r := gin.New()
	r.GET("/photos/:ref", NewHandler(service).Get)

	req := httptest.NewRequest(http.MethodGet, "/photos/ref123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected status %d, got %d", http.StatusBadGateway, w.Code)
	}
}
