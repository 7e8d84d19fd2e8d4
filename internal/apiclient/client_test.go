package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/candidatrack/candidatrack-go/internal/model"
	"github.com/candidatrack/candidatrack-go/internal/session"
)

func newTestStore() *session.Store {
	return session.New(session.NewMemoryStorage())
}

func loggedInStore(t *testing.T, tok string) *session.Store {
	t.Helper()
	store := newTestStore()
	store.Login(model.UserProfile{ID: "1", Username: "ana"}, tok)
	return store
}

func TestAuthorizationHeaderWithToken(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := loggedInStore(t, "abc")
	c, err := New(srv.URL, store, Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if _, err := Get[struct{}](context.Background(), c, "/candidaturas", nil); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if gotHeader != "Bearer abc" {
		t.Errorf("Authorization = %q, want %q", gotHeader, "Bearer abc")
	}
}

func TestNoAuthorizationHeaderWhenLoggedOut(t *testing.T) {
	var gotHeader string
	var headerPresent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		_, headerPresent = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, newTestStore(), Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if _, err := Get[struct{}](context.Background(), c, "/candidaturas", nil); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if headerPresent {
		t.Errorf("Authorization header present without a session: %q", gotHeader)
	}
}

func TestBaseURLPathPreserved(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/api", newTestStore(), Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if _, err := Get[struct{}](context.Background(), c, "/empresas/7", nil); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if gotPath != "/api/empresas/7" {
		t.Errorf("path = %q, want %q", gotPath, "/api/empresas/7")
	}
}

func TestEmptyQueryValuesOmitted(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, newTestStore(), Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = Get[struct{}](context.Background(), c, "/candidaturas", Query{
		"page":   "0",
		"estado": "",
		"q":      "",
	})
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if gotQuery != "page=0" {
		t.Errorf("query = %q, want %q", gotQuery, "page=0")
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/candidaturas", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid or expired token"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	storage := session.NewMemoryStorage()
	store := session.New(storage)
	store.Login(model.UserProfile{ID: "1", Username: "ana"}, "stale")

	var signals atomic.Int32
	c, err := New(srv.URL, store, Options{
		OnSessionInvalidated: func() { signals.Add(1) },
	})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		_, err := Get[struct{}](context.Background(), c, "/candidaturas", nil)
		if !IsStatus(err, http.StatusUnauthorized) {
			t.Fatalf("expected 401 ServerError, got %v", err)
		}
	}

	if got := signals.Load(); got != 1 {
		t.Errorf("invalidation signal fired %d times, want 1", got)
	}
	if store.IsAuthenticated() {
		t.Error("store still authenticated after 401")
	}
	if _, ok, _ := storage.Get("token"); ok {
		t.Error("token key still persisted after 401")
	}
	if _, ok, _ := storage.Get("user"); ok {
		t.Error("user key still persisted after 401")
	}
}

func TestUnauthorizedConcurrentSingleSignal(t *testing.T) {
	release := make(chan struct{})
	r := chi.NewRouter()
	r.Get("/candidaturas", func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid or expired token"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	store := loggedInStore(t, "stale")

	var signals atomic.Int32
	c, err := New(srv.URL, store, Options{
		OnSessionInvalidated: func() { signals.Add(1) },
	})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	const inflight = 8
	var wg sync.WaitGroup
	for i := 0; i < inflight; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = Get[struct{}](context.Background(), c, "/candidaturas", nil)
		}()
	}
	close(release)
	wg.Wait()

	if got := signals.Load(); got != 1 {
		t.Errorf("invalidation signal fired %d times, want 1", got)
	}
	if store.IsAuthenticated() {
		t.Error("store still authenticated after concurrent 401s")
	}
}

func TestServerErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"candidatura not found"}`))
	}))
	defer srv.Close()

	store := loggedInStore(t, "abc")
	c, err := New(srv.URL, store, Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = Get[struct{}](context.Background(), c, "/candidaturas/99", nil)

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", se.Status)
	}
	if se.Message != "candidatura not found" {
		t.Errorf("Message = %q, want %q", se.Message, "candidatura not found")
	}
	if !store.IsAuthenticated() {
		t.Error("404 must not clear the session")
	}
}

func TestTimeoutIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, newTestStore(), Options{Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = Get[struct{}](context.Background(), c, "/candidaturas", nil)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestUnreachableHostIsNetworkError(t *testing.T) {
	c, err := New("http://127.0.0.1:1", newTestStore(), Options{Timeout: 200 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = Get[struct{}](context.Background(), c, "/candidaturas", nil)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestUnserializableBodyIsConfigError(t *testing.T) {
	c, err := New("http://localhost:8080/api", newTestStore(), Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = Post[struct{}](context.Background(), c, "/candidaturas", func() {})

	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestMalformedSuccessPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, newTestStore(), Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	_, err = Get[model.Candidatura](context.Background(), c, "/candidaturas/1", nil)

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if se.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", se.Status)
	}
}

func TestEmptyBodyDecodesToZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := New(srv.URL, newTestStore(), Options{})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	got, err := Delete[model.Candidatura](context.Background(), c, "/candidaturas/1", nil)
	if err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if got.ID != 0 {
		t.Errorf("expected zero value, got %+v", got)
	}
}
