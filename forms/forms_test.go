package forms

import (
	"testing"
	"time"

	"github.com/wiradarma21/travel_booking/models"
)

func TestSignUpFormValidation(t *testing.T) {
	form := SignUpForm{Name: "Ayu", Email: "ayu@example.com", Password: "secret1", Role: models.RoleTourist}
	if err := Validate(form); err != nil {
		t.Errorf("valid sign-up should pass, got %v", err)
	}

	form.Email = "not-an-email"
	if err := Validate(form); err == nil {
		t.Error("malformed email must fail")
	}

	form.Email = "ayu@example.com"
	form.Password = "short"
	if err := Validate(form); err == nil {
		t.Error("password under 6 characters must fail")
	}

	form.Password = "secret1"
	form.Role = "admin"
	if err := Validate(form); err == nil {
		t.Error("unknown role must fail")
	}
}

func TestBookingFormRequiresFutureDate(t *testing.T) {
	form := BookingForm{
		PackageID:      "p1",
		TravelDate:     time.Now().Add(48 * time.Hour),
		TravelersCount: 2,
		TotalPrice:     5000000,
	}
	if err := Validate(form); err != nil {
		t.Errorf("future travel date should pass, got %v", err)
	}

	form.TravelDate = time.Now().Add(-48 * time.Hour)
	if err := Validate(form); err == nil {
		t.Error("past travel date must fail")
	}
}

func TestReviewFormRatingBounds(t *testing.T) {
	form := ReviewForm{PackageID: "p1", Rating: 5, Comment: "great"}
	if err := Validate(form); err != nil {
		t.Errorf("rating 5 should pass, got %v", err)
	}

	form.Rating = 0
	if err := Validate(form); err == nil {
		t.Error("rating 0 must fail")
	}

	form.Rating = 6
	if err := Validate(form); err == nil {
		t.Error("rating 6 must fail")
	}
}

func TestPackageFormBounds(t *testing.T) {
	form := PackageForm{
		Name:          "Bali 3D2N",
		DestinationID: "d1",
		Duration:      3,
		Price:         2500000,
		Itinerary:     "Day 1: beach",
		MaxTravelers:  10,
		ContactPhone:  "+62812000111",
	}
	if err := Validate(form); err != nil {
		t.Errorf("valid package should pass, got %v", err)
	}

	form.Duration = 31
	if err := Validate(form); err == nil {
		t.Error("duration over 30 days must fail")
	}

	form.Duration = 3
	form.MaxTravelers = 51
	if err := Validate(form); err == nil {
		t.Error("more than 50 travelers must fail")
	}
}
