// Package forms owns client-side input validation. Schemas block submission
// on field-level problems; everything else is the backend's call.
package forms

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wiradarma21/travel_booking/models"
)

var validate = validator.New()

type SignInForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpForm struct {
	Name     string      `json:"name" validate:"required,min=2"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=tourist agent"`
}

type UpdateProfileForm struct {
	Name  string `json:"name" validate:"omitempty,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// BookingForm requires a travel date strictly in the future; the per-package
// travelers cap is checked against the package record by the caller.
type BookingForm struct {
	PackageID      string    `json:"packageId" validate:"required"`
	TravelDate     time.Time `json:"travelDate" validate:"required,gt"`
	TravelersCount int       `json:"travelersCount" validate:"required,min=1"`
	TotalPrice     float64   `json:"totalPrice" validate:"required,gt=0"`
}

type PackageForm struct {
	Name          string  `json:"name" validate:"required"`
	DestinationID string  `json:"destinationId" validate:"required"`
	Duration      int     `json:"duration" validate:"required,min=1,max=30"`
	Price         float64 `json:"price" validate:"required,min=1"`
	Itinerary     string  `json:"itinerary" validate:"required"`
	MaxTravelers  int     `json:"maxTravelers" validate:"required,min=1,max=50"`
	ContactPhone  string  `json:"contactPhone" validate:"required"`
}

type DestinationForm struct {
	Name        string `json:"name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ReviewForm struct {
	PackageID string `json:"packageId" validate:"required"`
	BookingID string `json:"bookingId" validate:"omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

type RejectPaymentForm struct {
	Reason string `json:"reason" validate:"required"`
}

func Validate(form interface{}) error {
	return validate.Struct(form)
}
