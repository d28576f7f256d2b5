package api

import (
	"time"

	"github.com/wiradarma21/travel_booking/models"
)

type BookingService struct {
	client *Client
}

func NewBookingService(client *Client) *BookingService {
	return &BookingService{client: client}
}

type CreateBookingRequest struct {
	PackageID      string    `json:"packageId"`
	TravelDate     time.Time `json:"travelDate"`
	TravelersCount int       `json:"travelersCount"`
	TotalPrice     float64   `json:"totalPrice"`
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// The full listing is the one endpoint wrapped in a data envelope.
type bookingListEnvelope struct {
	Data []models.Booking `json:"data"`
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var envelope bookingListEnvelope
	if err := s.client.doJSON("GET", "/api/bookings", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (s *BookingService) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.client.doJSON("GET", "/api/bookings/"+id, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) GetByTourist(touristID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.client.doJSON("GET", "/api/bookings/tourist/"+touristID, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) GetByPackage(packageID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.client.doJSON("GET", "/api/bookings/package/"+packageID, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) Create(req CreateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.client.doJSON("POST", "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) UpdateStatus(id string, status models.BookingStatus) (*models.Booking, error) {
	var booking models.Booking
	req := UpdateBookingStatusRequest{Status: status}
	if err := s.client.doJSON("PUT", "/api/bookings/"+id+"/status", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel is a status update to cancelled; tourists may cancel their own
// bookings regardless of payment state.
func (s *BookingService) Cancel(id string) (*models.Booking, error) {
	return s.UpdateStatus(id, models.BookingCancelled)
}

func (s *BookingService) GetPendingPayments() ([]models.PendingPayment, error) {
	var pending []models.PendingPayment
	if err := s.client.doJSON("GET", "/api/bookings/payment/pending", nil, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}
