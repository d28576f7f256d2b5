package jobs

import (
	"log"

	"github.com/wiradarma21/travel_booking/store"
)

// PendingPaymentRefresher keeps the agent's verification queue warm between
// page loads. Failures just leave the previous snapshot in place.
type PendingPaymentRefresher struct {
	bookings *store.BookingStore
}

func NewPendingPaymentRefresher(bookings *store.BookingStore) *PendingPaymentRefresher {
	return &PendingPaymentRefresher{bookings: bookings}
}

func (j *PendingPaymentRefresher) Run() {
	log.Println("Running job: RefreshPendingPayments...")

	if err := j.bookings.FetchPendingPayments(); err != nil {
		log.Printf("Error refreshing pending payments: %v", err)
		return
	}

	if pending := j.bookings.PendingPayments(); len(pending) > 0 {
		log.Printf("%d payment(s) awaiting verification", len(pending))
	}
}
