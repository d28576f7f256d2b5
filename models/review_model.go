package models

import "time"

type Review struct {
	ID        string    `json:"id"`
	PackageID string    `json:"packageId"`
	TouristID string    `json:"touristId"`
	BookingID string    `json:"bookingId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	Tourist *ReviewAuthor `json:"tourist,omitempty"`
	Package *ReviewTarget `json:"package,omitempty"`
}

type ReviewAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewTarget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
