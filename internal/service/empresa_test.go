package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/candidatrack/candidatrack-go/internal/model"
	"github.com/candidatrack/candidatrack-go/internal/session"
	"github.com/candidatrack/candidatrack-go/internal/testutil"
)

func empresaBackend(t *testing.T, items []model.Empresa) (*httptest.Server, *session.Store) {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(testutil.RequireBearer("tok"))
		r.Get("/empresas", func(w http.ResponseWriter, req *http.Request) {
			filtered := items
			if search := req.URL.Query().Get("search"); search != "" {
				filtered = nil
				for _, e := range items {
					if strings.Contains(strings.ToLower(e.Nombre), strings.ToLower(search)) {
						filtered = append(filtered, e)
					}
				}
			}
			page, size := testutil.PageParams(req)
			testutil.WriteJSON(w, http.StatusOK, testutil.Paginate(filtered, page, size))
		})
		r.Get("/empresas/{id}/reclutadores", func(w http.ResponseWriter, req *http.Request) {
			page, size := testutil.PageParams(req)
			reclutadores := []model.Reclutador{{ID: 11, Nombre: "Eva"}}
			testutil.WriteJSON(w, http.StatusOK, testutil.Paginate(reclutadores, page, size))
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	store := session.New(session.NewMemoryStorage())
	store.Login(model.UserProfile{ID: "1", Username: "ana"}, "tok")
	return srv, store
}

func TestListEmpresasSearchFilter(t *testing.T) {
	items := []model.Empresa{
		{ID: 1, Nombre: "Acme"},
		{ID: 2, Nombre: "Tech Solutions"},
		{ID: 3, Nombre: "Globex"},
		{ID: 4, Nombre: "Initech"},
		{ID: 5, Nombre: "Umbrella"},
	}
	srv, store := empresaBackend(t, items)
	svc := NewEmpresaService(newClient(t, srv, store))

	page, err := svc.List(context.Background(), 0, 10, "Tech")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	if len(page.Content) != 1 {
		t.Fatalf("content length = %d, want 1", len(page.Content))
	}
	if page.Content[0].ID != 2 {
		t.Errorf("matched empresa id = %d, want 2", page.Content[0].ID)
	}
}

func TestListEmpresasNoFilter(t *testing.T) {
	items := []model.Empresa{{ID: 1, Nombre: "Acme"}, {ID: 2, Nombre: "Globex"}}
	srv, store := empresaBackend(t, items)
	svc := NewEmpresaService(newClient(t, srv, store))

	page, err := svc.List(context.Background(), 0, 10, "")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(page.Content) != 2 {
		t.Errorf("content length = %d, want 2", len(page.Content))
	}
}

func TestEmpresaReclutadores(t *testing.T) {
	srv, store := empresaBackend(t, nil)
	svc := NewEmpresaService(newClient(t, srv, store))

	page, err := svc.Reclutadores(context.Background(), 2, 0, 10)
	if err != nil {
		t.Fatalf("Reclutadores() unexpected error: %v", err)
	}
	if len(page.Content) != 1 || page.Content[0].Nombre != "Eva" {
		t.Errorf("reclutadores = %+v, want one named Eva", page.Content)
	}
}
