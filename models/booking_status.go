package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid              PaymentStatus = "unpaid"
	PaymentPendingVerification PaymentStatus = "pending_verification"
	PaymentVerified            PaymentStatus = "verified"
	PaymentRejected            PaymentStatus = "rejected"
)

var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingCompleted,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further booking transitions are possible.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled || next == BookingCompleted
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPendingVerification, PaymentVerified, PaymentRejected:
		return true
	}
	return false
}

// CanTransitionTo covers the payment sub-lifecycle: a rejected proof may be
// re-uploaded, verified is terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentUnpaid, PaymentRejected:
		return next == PaymentPendingVerification
	case PaymentPendingVerification:
		return next == PaymentVerified || next == PaymentRejected
	}
	return false
}

// CanCancelBooking reports whether the tourist may still cancel: only
// pending or confirmed bookings, and only before the travel date.
func CanCancelBooking(status BookingStatus, travelDate, now time.Time) bool {
	if status != BookingPending && status != BookingConfirmed {
		return false
	}
	return travelDate.After(now)
}

// CanConfirmBooking gates the agent's manual confirm action.
func CanConfirmBooking(status BookingStatus) bool {
	return status == BookingPending
}

func (s BookingStatus) Label() string {
	switch s {
	case BookingPending:
		return "Pending"
	case BookingConfirmed:
		return "Confirmed"
	case BookingCancelled:
		return "Cancelled"
	case BookingCompleted:
		return "Completed"
	}
	return "Unknown"
}
