package models

import "time"

// Booking mirrors the server record. Status fields only ever change from
// server-confirmed responses; the client never patches them optimistically.
type Booking struct {
	ID             string        `json:"id"`
	PackageID      string        `json:"packageId"`
	TouristID      string        `json:"touristId"`
	TravelDate     time.Time     `json:"travelDate"`
	TravelersCount int           `json:"travelersCount"`
	TotalPrice     float64       `json:"totalPrice"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty"`
	HasReviewed    bool          `json:"hasReviewed,omitempty"`

	PaymentStatus          PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentProofURL        string        `json:"paymentProofUrl,omitempty"`
	PaymentProofUploadedAt *time.Time    `json:"paymentProofUploadedAt,omitempty"`
	PaymentVerifiedAt      *time.Time    `json:"paymentVerifiedAt,omitempty"`
	PaymentRejectionReason string        `json:"paymentRejectionReason,omitempty"`
}

// PendingPayment is a booking awaiting proof verification, extended with the
// display fields the pending-payment listing carries.
type PendingPayment struct {
	Booking
	PackageName  string `json:"packageName,omitempty"`
	TouristName  string `json:"touristName,omitempty"`
	TouristEmail string `json:"touristEmail,omitempty"`
}
