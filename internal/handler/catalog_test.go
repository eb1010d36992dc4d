package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/handler"
)

func newCatalogRouter() http.Handler {
	h := handler.NewCatalogHandler(catalog.MustDefault())
	r := chi.NewRouter()
	r.Route("/catalog", h.RegisterRoutes)
	return r
}

func TestCatalogEndpoints(t *testing.T) {
	router := newCatalogRouter()

	for _, path := range []string{"/catalog/packages", "/catalog/menu", "/catalog/equipment"} {
		rr := doRequest(t, router, "GET", path, nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: got status %d", path, rr.Code)
		}
		if list := decodeList(t, rr); len(list) == 0 {
			t.Fatalf("%s: empty list", path)
		}
	}
}

func TestCatalogKits(t *testing.T) {
	router := newCatalogRouter()
	rr := doRequest(t, router, "GET", "/catalog/kits", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d", rr.Code)
	}
	resp := decodeMap(t, rr)
	for _, key := range []string{"kitchen", "serving", "consumables"} {
		if len(resp[key].([]interface{})) == 0 {
			t.Fatalf("kit %q is empty", key)
		}
	}
}
