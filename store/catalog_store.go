package store

import (
	"sync"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/models"
)

// CatalogStore caches destinations and packages for browsing. Same
// copy-on-write and server-confirmed-mutation discipline as BookingStore.
type CatalogStore struct {
	destinations *api.DestinationService
	packages     *api.PackageService

	mu                sync.RWMutex
	destinationsCache []models.Destination
	packagesCache     []models.Package
	loading           bool
	err               error
}

func NewCatalogStore(destinations *api.DestinationService, packages *api.PackageService) *CatalogStore {
	return &CatalogStore{
		destinations: destinations,
		packages:     packages,
	}
}

func (s *CatalogStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *CatalogStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *CatalogStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CatalogStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *CatalogStore) Destinations() []models.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destinationsCache
}

func (s *CatalogStore) Packages() []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.packagesCache
}

func (s *CatalogStore) FetchDestinations(filters api.DestinationFilters) error {
	s.begin()
	destinations, err := s.destinations.GetAll(filters)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.destinationsCache = destinations
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) FetchPackages(filters api.PackageFilters) error {
	s.begin()
	packages, err := s.packages.GetAll(filters)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.packagesCache = packages
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) FetchPackagesByAgent(agentID string) error {
	s.begin()
	packages, err := s.packages.GetByAgent(agentID)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.packagesCache = packages
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) CreateDestination(req api.CreateDestinationRequest) (*models.Destination, error) {
	s.begin()
	destination, err := s.destinations.Create(req)
	defer s.finish(err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	next := make([]models.Destination, 0, len(s.destinationsCache)+1)
	next = append(next, s.destinationsCache...)
	next = append(next, *destination)
	s.destinationsCache = next
	s.mu.Unlock()
	return destination, nil
}

func (s *CatalogStore) CreatePackage(req api.CreatePackageRequest) (*models.Package, error) {
	s.begin()
	pkg, err := s.packages.Create(req)
	defer s.finish(err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	next := make([]models.Package, 0, len(s.packagesCache)+1)
	next = append(next, s.packagesCache...)
	next = append(next, *pkg)
	s.packagesCache = next
	s.mu.Unlock()
	return pkg, nil
}

// UpdatePackage replaces the cached record with the server's copy.
func (s *CatalogStore) UpdatePackage(id string, req api.UpdatePackageRequest) error {
	s.begin()
	updated, err := s.packages.Update(id, req)
	defer s.finish(err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	next := make([]models.Package, len(s.packagesCache))
	for i, pkg := range s.packagesCache {
		if pkg.ID == id {
			pkg = *updated
		}
		next[i] = pkg
	}
	s.packagesCache = next
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) DeletePackage(id string) error {
	s.begin()
	err := s.packages.Delete(id)
	defer s.finish(err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	next := make([]models.Package, 0, len(s.packagesCache))
	for _, pkg := range s.packagesCache {
		if pkg.ID != id {
			next = append(next, pkg)
		}
	}
	s.packagesCache = next
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) PackagesByDestination(destinationID string) []models.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Package
	for _, pkg := range s.packagesCache {
		if pkg.DestinationID == destinationID {
			out = append(out, pkg)
		}
	}
	return out
}

func (s *CatalogStore) DestinationByID(id string) (models.Destination, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.destinationsCache {
		if d.ID == id {
			return d, true
		}
	}
	return models.Destination{}, false
}

func (s *CatalogStore) PackageByID(id string) (models.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pkg := range s.packagesCache {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return models.Package{}, false
}
