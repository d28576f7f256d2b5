package store

import (
	"sync"
	"time"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/models"
)

// BookingStore caches server-side bookings and the agent's pending payment
// verification queue. Slices are replaced wholesale, never mutated in place,
// so a snapshot handed out earlier stays stable. Local state only changes
// after the backend has confirmed a mutation.
type BookingStore struct {
	bookings *api.BookingService
	payments *api.PaymentService

	mu              sync.RWMutex
	items           []models.Booking
	pendingPayments []models.PendingPayment
	loading         bool
	err             error

	now func() time.Time
}

func NewBookingStore(bookings *api.BookingService, payments *api.PaymentService) *BookingStore {
	return &BookingStore{
		bookings: bookings,
		payments: payments,
		now:      time.Now,
	}
}

func (s *BookingStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
}

// finish always runs on the way out of an action so the loading flag can
// never be left stuck.
func (s *BookingStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *BookingStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *BookingStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Bookings returns the current snapshot.
func (s *BookingStore) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *BookingStore) PendingPayments() []models.PendingPayment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingPayments
}

func (s *BookingStore) replace(items []models.Booking) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Fetch actions record failures in the error slot and keep whatever data was
// already cached, so stale results stay available.

func (s *BookingStore) FetchAll() error {
	s.begin()
	items, err := s.bookings.GetAll()
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.replace(items)
	return nil
}

func (s *BookingStore) FetchByTourist(touristID string) error {
	s.begin()
	items, err := s.bookings.GetByTourist(touristID)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.replace(items)
	return nil
}

func (s *BookingStore) FetchByPackage(packageID string) error {
	s.begin()
	items, err := s.bookings.GetByPackage(packageID)
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.replace(items)
	return nil
}

func (s *BookingStore) FetchPendingPayments() error {
	s.begin()
	pending, err := s.bookings.GetPendingPayments()
	defer s.finish(err)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pendingPayments = pending
	s.mu.Unlock()
	return nil
}

// Create books a package for the tourist; the new record is appended only
// once the backend has accepted it.
func (s *BookingStore) Create(req api.CreateBookingRequest) (*models.Booking, error) {
	s.begin()
	booking, err := s.bookings.Create(req)
	defer s.finish(err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	next := make([]models.Booking, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, *booking)
	s.items = next
	s.mu.Unlock()
	return booking, nil
}

// patch replaces one booking by id with the result of apply, copying the
// whole sequence first.
func (s *BookingStore) patch(id string, apply func(b models.Booking) models.Booking) {
	s.mu.Lock()
	next := make([]models.Booking, len(s.items))
	for i, b := range s.items {
		if b.ID == id {
			b = apply(b)
		}
		next[i] = b
	}
	s.items = next
	s.mu.Unlock()
}

func (s *BookingStore) dropPendingPayment(id string) {
	s.mu.Lock()
	next := make([]models.PendingPayment, 0, len(s.pendingPayments))
	for _, p := range s.pendingPayments {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.pendingPayments = next
	s.mu.Unlock()
}

// UpdateStatus requests a transition and mirrors the server's response
// locally on success. CompletedAt comes from the backend; the local clock
// only fills in when the response omits it.
func (s *BookingStore) UpdateStatus(id string, status models.BookingStatus) error {
	s.begin()
	updated, err := s.bookings.UpdateStatus(id, status)
	defer s.finish(err)
	if err != nil {
		return err
	}

	completedAt := updated.CompletedAt
	if completedAt == nil && updated.Status == models.BookingCompleted {
		stamped := s.now()
		completedAt = &stamped
	}
	s.patch(id, func(b models.Booking) models.Booking {
		b.Status = updated.Status
		if updated.Status == models.BookingCompleted {
			b.CompletedAt = completedAt
		}
		return b
	})
	return nil
}

func (s *BookingStore) Cancel(id string) error {
	return s.UpdateStatus(id, models.BookingCancelled)
}

// UploadPaymentProof moves the payment into verification; the resulting
// status comes from the server response, not a local guess.
func (s *BookingStore) UploadPaymentProof(id string, proof api.Upload) error {
	s.begin()
	resp, err := s.payments.UploadProof(id, proof)
	defer s.finish(err)
	if err != nil {
		return err
	}

	uploadedAt := s.now()
	s.patch(id, func(b models.Booking) models.Booking {
		b.PaymentProofURL = resp.PaymentProofURL
		b.PaymentStatus = resp.PaymentStatus
		b.PaymentProofUploadedAt = &uploadedAt
		return b
	})
	return nil
}

// VerifyPayment accepts the proof. Verification confirms the booking as a
// side effect and clears any earlier rejection reason.
func (s *BookingStore) VerifyPayment(id string) error {
	s.begin()
	_, err := s.payments.Verify(id)
	defer s.finish(err)
	if err != nil {
		return err
	}

	verifiedAt := s.now()
	s.patch(id, func(b models.Booking) models.Booking {
		b.PaymentStatus = models.PaymentVerified
		b.PaymentVerifiedAt = &verifiedAt
		b.Status = models.BookingConfirmed
		b.PaymentRejectionReason = ""
		return b
	})
	s.dropPendingPayment(id)
	return nil
}

// RejectPayment refuses the proof. The booking status itself is untouched;
// the tourist may re-upload.
func (s *BookingStore) RejectPayment(id, reason string) error {
	s.begin()
	_, err := s.payments.Reject(id, reason)
	defer s.finish(err)
	if err != nil {
		return err
	}

	s.patch(id, func(b models.Booking) models.Booking {
		b.PaymentStatus = models.PaymentRejected
		b.PaymentRejectionReason = reason
		return b
	})
	s.dropPendingPayment(id)
	return nil
}

// MarkReviewed flips the local convenience flag after a review submission.
func (s *BookingStore) MarkReviewed(id string) {
	s.patch(id, func(b models.Booking) models.Booking {
		b.HasReviewed = true
		return b
	})
}

func (s *BookingStore) ByTourist(touristID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.items {
		if b.TouristID == touristID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingStore) ByPackage(packageID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.items {
		if b.PackageID == packageID {
			out = append(out, b)
		}
	}
	return out
}

// CompletedWithoutReview lists the tourist's bookings still eligible for a
// review prompt.
func (s *BookingStore) CompletedWithoutReview(touristID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.items {
		if b.TouristID == touristID && b.Status == models.BookingCompleted && !b.HasReviewed {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingStore) PendingPaymentVerifications() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.items {
		if b.PaymentStatus == models.PaymentPendingVerification {
			out = append(out, b)
		}
	}
	return out
}
