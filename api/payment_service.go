package api

import (
	"mime/multipart"
	"time"

	"github.com/wiradarma21/travel_booking/models"
)

type PaymentService struct {
	client *Client
}

func NewPaymentService(client *Client) *PaymentService {
	return &PaymentService{client: client}
}

type PaymentProofUploadResponse struct {
	Message         string               `json:"message"`
	BookingID       string               `json:"bookingId"`
	PaymentProofURL string               `json:"paymentProofUrl"`
	PaymentStatus   models.PaymentStatus `json:"paymentStatus"`
}

type PaymentVerifyResponse struct {
	Message           string               `json:"message"`
	BookingID         string               `json:"bookingId"`
	PaymentStatus     models.PaymentStatus `json:"paymentStatus"`
	PaymentVerifiedAt time.Time            `json:"paymentVerifiedAt"`
}

type PaymentRejectResponse struct {
	Message                string               `json:"message"`
	BookingID              string               `json:"bookingId"`
	PaymentStatus          models.PaymentStatus `json:"paymentStatus"`
	PaymentRejectionReason string               `json:"paymentRejectionReason"`
}

type rejectPaymentRequest struct {
	Reason string `json:"reason"`
}

// UploadProof sends the transfer evidence image as multipart field "file",
// which the backend expects verbatim.
func (s *PaymentService) UploadProof(bookingID string, proof Upload) (*PaymentProofUploadResponse, error) {
	var resp PaymentProofUploadResponse
	err := s.client.doMultipart("POST", "/api/bookings/"+bookingID+"/payment-proof", func(w *multipart.Writer) error {
		return writeFilePart(w, "file", proof)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify marks the proof as accepted; the backend confirms the booking as a
// side effect.
func (s *PaymentService) Verify(bookingID string) (*PaymentVerifyResponse, error) {
	var resp PaymentVerifyResponse
	if err := s.client.doJSON("PUT", "/api/bookings/"+bookingID+"/payment-verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *PaymentService) Reject(bookingID, reason string) (*PaymentRejectResponse, error) {
	var resp PaymentRejectResponse
	req := rejectPaymentRequest{Reason: reason}
	if err := s.client.doJSON("PUT", "/api/bookings/"+bookingID+"/payment-reject", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
