package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/models"
)

type catalogBackend struct {
	destinations []models.Destination
	packages     []models.Package
	fail         bool
}

func (b *catalogBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "backend down"})
			return
		}

		path := r.URL.Path
		switch {
		case path == "/api/destinations" && r.Method == "GET":
			json.NewEncoder(w).Encode(b.destinations)

		case path == "/api/packages" && r.Method == "GET":
			json.NewEncoder(w).Encode(b.packages)

		case strings.HasPrefix(path, "/api/packages/") && r.Method == "PUT":
			id := strings.TrimPrefix(path, "/api/packages/")
			var req api.UpdatePackageRequest
			json.NewDecoder(r.Body).Decode(&req)
			updated := models.Package{ID: id, Name: "old name", Price: 100}
			if req.Name != nil {
				updated.Name = *req.Name
			}
			if req.Price != nil {
				updated.Price = *req.Price
			}
			json.NewEncoder(w).Encode(updated)

		case strings.HasPrefix(path, "/api/packages/") && r.Method == "DELETE":
			json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newCatalogStore(t *testing.T, backend *catalogBackend) *CatalogStore {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, nil)
	return NewCatalogStore(api.NewDestinationService(client), api.NewPackageService(client))
}

func TestFetchCatalog(t *testing.T) {
	backend := &catalogBackend{
		destinations: []models.Destination{{ID: "d1", Name: "Bali", Country: "Indonesia"}},
		packages: []models.Package{
			{ID: "p1", DestinationID: "d1", Name: "Bali 3D2N", Price: 2500000},
			{ID: "p2", DestinationID: "d2", Name: "Lombok 4D3N", Price: 3200000},
		},
	}
	store := newCatalogStore(t, backend)

	if err := store.FetchDestinations(api.DestinationFilters{}); err != nil {
		t.Fatalf("FetchDestinations failed: %v", err)
	}
	if err := store.FetchPackages(api.PackageFilters{}); err != nil {
		t.Fatalf("FetchPackages failed: %v", err)
	}

	if len(store.Destinations()) != 1 || len(store.Packages()) != 2 {
		t.Fatalf("unexpected catalog sizes: %d destinations, %d packages",
			len(store.Destinations()), len(store.Packages()))
	}

	if got := store.PackagesByDestination("d1"); len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("expected only p1 under d1, got %+v", got)
	}
	if _, ok := store.DestinationByID("d1"); !ok {
		t.Error("d1 should resolve")
	}
	if _, ok := store.PackageByID("p-unknown"); ok {
		t.Error("unknown package must not resolve")
	}
}

func TestUpdatePackageReplacesCachedRecord(t *testing.T) {
	backend := &catalogBackend{
		packages: []models.Package{
			{ID: "p1", Name: "old name", Price: 100},
			{ID: "p2", Name: "other", Price: 200},
		},
	}
	store := newCatalogStore(t, backend)
	if err := store.FetchPackages(api.PackageFilters{}); err != nil {
		t.Fatalf("FetchPackages failed: %v", err)
	}

	name := "new name"
	price := 150.0
	if err := store.UpdatePackage("p1", api.UpdatePackageRequest{Name: &name, Price: &price}); err != nil {
		t.Fatalf("UpdatePackage failed: %v", err)
	}

	pkg, ok := store.PackageByID("p1")
	if !ok {
		t.Fatal("p1 should still exist after update")
	}
	if pkg.Name != "new name" || pkg.Price != 150 {
		t.Errorf("cache should hold the server copy, got %+v", pkg)
	}
	if other, _ := store.PackageByID("p2"); other.Name != "other" {
		t.Error("untouched package must stay as it was")
	}
}

func TestDeletePackageRemovesFromCache(t *testing.T) {
	backend := &catalogBackend{
		packages: []models.Package{{ID: "p1"}, {ID: "p2"}},
	}
	store := newCatalogStore(t, backend)
	if err := store.FetchPackages(api.PackageFilters{}); err != nil {
		t.Fatalf("FetchPackages failed: %v", err)
	}

	if err := store.DeletePackage("p1"); err != nil {
		t.Fatalf("DeletePackage failed: %v", err)
	}

	if _, ok := store.PackageByID("p1"); ok {
		t.Error("deleted package must leave the cache")
	}
	if len(store.Packages()) != 1 {
		t.Errorf("expected 1 remaining package, got %d", len(store.Packages()))
	}
}

func TestFetchCatalogFailureKeepsStaleData(t *testing.T) {
	backend := &catalogBackend{
		packages: []models.Package{{ID: "p1"}},
	}
	store := newCatalogStore(t, backend)
	if err := store.FetchPackages(api.PackageFilters{}); err != nil {
		t.Fatalf("FetchPackages failed: %v", err)
	}

	backend.fail = true
	if err := store.FetchPackages(api.PackageFilters{}); err == nil {
		t.Fatal("fetch should fail while the backend is down")
	}
	if store.Loading() {
		t.Error("loading must not stay stuck after a failure")
	}
	if len(store.Packages()) != 1 {
		t.Error("stale packages should survive a failed refresh")
	}
}
