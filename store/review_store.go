package store

import (
	"math"
	"sync"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/models"
)

// ReviewStore accumulates reviews across incremental fetches. Fetching by
// package and then by tourist unions into one sequence, so merges must be
// deduplicated by id, first record seen wins.
type ReviewStore struct {
	reviews *api.ReviewService

	mu      sync.RWMutex
	items   []models.Review
	loading bool
	err     error
}

func NewReviewStore(reviews *api.ReviewService) *ReviewStore {
	return &ReviewStore{reviews: reviews}
}

// RatingSummary is the client-side aggregate shown on package cards.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// CalculateRating averages ratings to one decimal place.
func CalculateRating(reviews []models.Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	mean := float64(total) / float64(len(reviews))
	return RatingSummary{
		Average: math.Round(mean*10) / 10,
		Count:   len(reviews),
	}
}

func (s *ReviewStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

func (s *ReviewStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *ReviewStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ReviewStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ReviewStore) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// merge unions fetched reviews into the cache, skipping ids already present.
func (s *ReviewStore) merge(fetched []models.Review) {
	s.mu.Lock()
	seen := make(map[string]bool, len(s.items))
	for _, r := range s.items {
		seen[r.ID] = true
	}
	next := make([]models.Review, 0, len(s.items)+len(fetched))
	next = append(next, s.items...)
	for _, r := range fetched {
		if !seen[r.ID] {
			next = append(next, r)
			seen[r.ID] = true
		}
	}
	s.items = next
	s.mu.Unlock()
}

func (s *ReviewStore) FetchByPackage(packageID string) error {
	s.begin()
	reviews, err := s.reviews.GetByPackage(packageID)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.merge(reviews)
	return nil
}

func (s *ReviewStore) FetchByTourist(touristID string) error {
	s.begin()
	reviews, err := s.reviews.GetByTourist(touristID)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.merge(reviews)
	return nil
}

func (s *ReviewStore) Create(req api.CreateReviewRequest) (*models.Review, error) {
	s.begin()
	review, err := s.reviews.Create(req)
	defer s.finish(err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	next := make([]models.Review, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, *review)
	s.items = next
	s.mu.Unlock()
	return review, nil
}

func (s *ReviewStore) ByPackage(packageID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.items {
		if r.PackageID == packageID {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReviewStore) ByTourist(touristID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.items {
		if r.TouristID == touristID {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReviewStore) PackageRating(packageID string) RatingSummary {
	return CalculateRating(s.ByPackage(packageID))
}

// HasUserReviewedPackage is a local guard only; the backend enforces the
// one-review-per-completed-booking rule.
func (s *ReviewStore) HasUserReviewedPackage(touristID, packageID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.items {
		if r.TouristID == touristID && r.PackageID == packageID {
			return true
		}
	}
	return false
}
