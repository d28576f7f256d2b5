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

type reviewBackend struct {
	byPackage map[string][]models.Review
	byTourist map[string][]models.Review
	fail      bool
}

func (b *reviewBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "backend down"})
			return
		}

		path := r.URL.Path
		switch {
		case strings.HasPrefix(path, "/api/reviews/package/"):
			id := strings.TrimPrefix(path, "/api/reviews/package/")
			json.NewEncoder(w).Encode(b.byPackage[id])

		case strings.HasPrefix(path, "/api/reviews/tourist/"):
			id := strings.TrimPrefix(path, "/api/reviews/tourist/")
			json.NewEncoder(w).Encode(b.byTourist[id])

		case path == "/api/reviews" && r.Method == "POST":
			var req api.CreateReviewRequest
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Review{
				ID:        "r-new",
				PackageID: req.PackageID,
				TouristID: "t1",
				BookingID: req.BookingID,
				Rating:    req.Rating,
				Comment:   req.Comment,
			})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newReviewStore(t *testing.T, backend *reviewBackend) *ReviewStore {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	return NewReviewStore(api.NewReviewService(api.NewClient(server.URL, nil)))
}

func TestCalculateRating(t *testing.T) {
	if got := CalculateRating(nil); got.Average != 0 || got.Count != 0 {
		t.Errorf("empty input should yield a zero summary, got %+v", got)
	}

	got := CalculateRating([]models.Review{{Rating: 4}, {Rating: 5}})
	if got.Average != 4.5 || got.Count != 2 {
		t.Errorf("expected {4.5 2}, got %+v", got)
	}

	// 4, 4, 5 averages to 4.333..., rounded to one decimal.
	got = CalculateRating([]models.Review{{Rating: 4}, {Rating: 4}, {Rating: 5}})
	if got.Average != 4.3 {
		t.Errorf("expected 4.3, got %v", got.Average)
	}
}

func TestFetchMergeIsIdempotent(t *testing.T) {
	backend := &reviewBackend{
		byPackage: map[string][]models.Review{
			"p1": {
				{ID: "r1", PackageID: "p1", TouristID: "t1", Rating: 5},
				{ID: "r2", PackageID: "p1", TouristID: "t2", Rating: 3},
			},
		},
	}
	store := newReviewStore(t, backend)

	if err := store.FetchByPackage("p1"); err != nil {
		t.Fatalf("FetchByPackage failed: %v", err)
	}
	if err := store.FetchByPackage("p1"); err != nil {
		t.Fatalf("second FetchByPackage failed: %v", err)
	}

	if got := len(store.Reviews()); got != 2 {
		t.Errorf("refetching the same package must not duplicate reviews, got %d", got)
	}
}

func TestFetchMergesAcrossSources(t *testing.T) {
	shared := models.Review{ID: "r1", PackageID: "p1", TouristID: "t1", Rating: 5}
	backend := &reviewBackend{
		byPackage: map[string][]models.Review{
			"p1": {shared, {ID: "r2", PackageID: "p1", TouristID: "t2", Rating: 4}},
		},
		byTourist: map[string][]models.Review{
			"t1": {shared, {ID: "r3", PackageID: "p2", TouristID: "t1", Rating: 2}},
		},
	}
	store := newReviewStore(t, backend)

	if err := store.FetchByPackage("p1"); err != nil {
		t.Fatalf("FetchByPackage failed: %v", err)
	}
	if err := store.FetchByTourist("t1"); err != nil {
		t.Fatalf("FetchByTourist failed: %v", err)
	}

	if got := len(store.Reviews()); got != 3 {
		t.Fatalf("expected union of 3 distinct reviews, got %d", got)
	}
	if got := store.ByPackage("p1"); len(got) != 2 {
		t.Errorf("expected 2 reviews for p1, got %d", len(got))
	}
	if got := store.ByTourist("t1"); len(got) != 2 {
		t.Errorf("expected 2 reviews by t1, got %d", len(got))
	}
}

func TestPackageRating(t *testing.T) {
	backend := &reviewBackend{
		byPackage: map[string][]models.Review{
			"p1": {
				{ID: "r1", PackageID: "p1", Rating: 4},
				{ID: "r2", PackageID: "p1", Rating: 5},
			},
		},
	}
	store := newReviewStore(t, backend)
	if err := store.FetchByPackage("p1"); err != nil {
		t.Fatalf("FetchByPackage failed: %v", err)
	}

	if got := store.PackageRating("p1"); got.Average != 4.5 || got.Count != 2 {
		t.Errorf("expected {4.5 2}, got %+v", got)
	}
	if got := store.PackageRating("p-unknown"); got.Average != 0 || got.Count != 0 {
		t.Errorf("unknown package should rate zero, got %+v", got)
	}
}

func TestCreateReviewAndLocalGuard(t *testing.T) {
	backend := &reviewBackend{}
	store := newReviewStore(t, backend)

	if store.HasUserReviewedPackage("t1", "p1") {
		t.Fatal("empty store should not report a review")
	}

	review, err := store.Create(api.CreateReviewRequest{
		PackageID: "p1",
		BookingID: "b1",
		Rating:    5,
		Comment:   "great trip",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if review.Rating != 5 || review.PackageID != "p1" {
		t.Errorf("unexpected created review %+v", review)
	}

	if !store.HasUserReviewedPackage("t1", "p1") {
		t.Error("guard should report the freshly created review")
	}
	if store.HasUserReviewedPackage("t1", "p2") {
		t.Error("guard must not match a different package")
	}
}

func TestFetchReviewsFailureKeepsCache(t *testing.T) {
	backend := &reviewBackend{
		byPackage: map[string][]models.Review{
			"p1": {{ID: "r1", PackageID: "p1", Rating: 4}},
		},
	}
	store := newReviewStore(t, backend)
	if err := store.FetchByPackage("p1"); err != nil {
		t.Fatalf("FetchByPackage failed: %v", err)
	}

	backend.fail = true
	if err := store.FetchByPackage("p1"); err == nil {
		t.Fatal("fetch should fail while the backend is down")
	}
	if store.Loading() {
		t.Error("loading must not stay stuck after a failure")
	}
	if len(store.Reviews()) != 1 {
		t.Error("cached reviews should survive a failed refresh")
	}
}
