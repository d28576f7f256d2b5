package models

import (
	"testing"
	"time"
)

func TestBookingStatusTransitions(t *testing.T) {
	if !BookingPending.CanTransitionTo(BookingConfirmed) {
		t.Error("pending should allow confirmation")
	}
	if !BookingPending.CanTransitionTo(BookingCancelled) {
		t.Error("pending should allow cancellation")
	}
	if BookingPending.CanTransitionTo(BookingCompleted) {
		t.Error("pending must not jump straight to completed")
	}
	if !BookingConfirmed.CanTransitionTo(BookingCompleted) {
		t.Error("confirmed should allow completion")
	}
	if !BookingConfirmed.CanTransitionTo(BookingCancelled) {
		t.Error("confirmed should allow cancellation")
	}
	for _, terminal := range []BookingStatus{BookingCancelled, BookingCompleted} {
		for _, next := range BookingStatuses {
			if terminal.CanTransitionTo(next) {
				t.Errorf("%s is terminal but allowed transition to %s", terminal, next)
			}
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	if !PaymentUnpaid.CanTransitionTo(PaymentPendingVerification) {
		t.Error("proof upload should move unpaid to pending_verification")
	}
	if !PaymentPendingVerification.CanTransitionTo(PaymentVerified) {
		t.Error("pending_verification should allow verification")
	}
	if !PaymentPendingVerification.CanTransitionTo(PaymentRejected) {
		t.Error("pending_verification should allow rejection")
	}
	if !PaymentRejected.CanTransitionTo(PaymentPendingVerification) {
		t.Error("a rejected proof should allow re-upload")
	}
	if PaymentVerified.CanTransitionTo(PaymentPendingVerification) ||
		PaymentVerified.CanTransitionTo(PaymentRejected) {
		t.Error("verified is terminal for payment")
	}
	if PaymentUnpaid.CanTransitionTo(PaymentVerified) {
		t.Error("unpaid must not verify without a proof")
	}
}

func TestCanCancelBooking(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	if !CanCancelBooking(BookingPending, future, now) {
		t.Error("pending booking with a future travel date should be cancellable")
	}
	if !CanCancelBooking(BookingConfirmed, future, now) {
		t.Error("confirmed booking with a future travel date should be cancellable")
	}
	if CanCancelBooking(BookingPending, past, now) {
		t.Error("booking with a past travel date must not be cancellable")
	}
	if CanCancelBooking(BookingPending, now, now) {
		t.Error("travel date must be strictly in the future")
	}
	if CanCancelBooking(BookingCancelled, future, now) {
		t.Error("cancelled booking must not be cancellable regardless of date")
	}
	if CanCancelBooking(BookingCompleted, future, now) {
		t.Error("completed booking must not be cancellable regardless of date")
	}
}

func TestCanConfirmBooking(t *testing.T) {
	if !CanConfirmBooking(BookingPending) {
		t.Error("pending booking should be confirmable")
	}
	for _, status := range []BookingStatus{BookingConfirmed, BookingCancelled, BookingCompleted} {
		if CanConfirmBooking(status) {
			t.Errorf("%s booking must not be confirmable", status)
		}
	}
}
