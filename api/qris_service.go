package api

import (
	"mime/multipart"
	"strconv"

	"github.com/wiradarma21/travel_booking/models"
)

type QRISService struct {
	client *Client
}

func NewQRISService(client *Client) *QRISService {
	return &QRISService{client: client}
}

type CreateQRISRequest struct {
	FotoQr   Upload
	FeeType  *models.FeeType
	FeeValue *float64
}

type QRISCreateResponse struct {
	models.QRIS
	Message string `json:"message"`
}

type QRISPreviewRequest struct {
	QrisID string  `json:"qrisId"`
	Amount float64 `json:"amount"`
}

type QRISPreviewResponse struct {
	QrisURL     string   `json:"qrisUrl"`
	QrisString  string   `json:"qrisString"`
	Amount      float64  `json:"amount"`
	FeeType     *string  `json:"feeType"`
	FeeValue    *float64 `json:"feeValue"`
	TotalAmount float64  `json:"totalAmount"`
}

type GeneratePaymentRequest struct {
	Amount float64 `json:"amount"`
}

type PaymentGenerateResponse struct {
	QrisID            string   `json:"qrisId"`
	StaticQrisString  string   `json:"staticQrisString"`
	DynamicQrisString string   `json:"dynamicQrisString"`
	Amount            float64  `json:"amount"`
	FeeType           *string  `json:"feeType"`
	FeeValue          *float64 `json:"feeValue"`
	TotalAmount       float64  `json:"totalAmount"`
	FotoQrURL         string   `json:"fotoQrUrl"`
	Message           string   `json:"message"`
}

func (s *QRISService) GetAll() ([]models.QRIS, error) {
	var records []models.QRIS
	if err := s.client.doJSON("GET", "/api/qris", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *QRISService) GetByID(id string) (*models.QRIS, error) {
	var record models.QRIS
	if err := s.client.doJSON("GET", "/api/qris/"+id, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create uploads a static QR image in multipart field "foto_qr", which the
// backend expects verbatim, plus optional fee metadata.
func (s *QRISService) Create(req CreateQRISRequest) (*QRISCreateResponse, error) {
	var resp QRISCreateResponse
	err := s.client.doMultipart("POST", "/api/qris", func(w *multipart.Writer) error {
		if req.FeeType != nil {
			if err := w.WriteField("fee_type", string(*req.FeeType)); err != nil {
				return err
			}
		}
		if req.FeeValue != nil {
			if err := w.WriteField("fee_value", strconv.FormatFloat(*req.FeeValue, 'f', -1, 64)); err != nil {
				return err
			}
		}
		return writeFilePart(w, "foto_qr", req.FotoQr)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *QRISService) Delete(id string) error {
	var resp MessageResponse
	return s.client.doJSON("DELETE", "/api/qris/"+id, nil, &resp)
}

// Preview renders the dynamic payload for an amount without auth.
func (s *QRISService) Preview(qrisID string, amount float64) (*QRISPreviewResponse, error) {
	var resp QRISPreviewResponse
	req := QRISPreviewRequest{QrisID: qrisID, Amount: amount}
	if err := s.client.doJSON("POST", "/api/qris/preview", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GeneratePayment produces a per-transaction dynamic QR for the agent's
// active QRIS record.
func (s *QRISService) GeneratePayment(amount float64) (*PaymentGenerateResponse, error) {
	var resp PaymentGenerateResponse
	req := GeneratePaymentRequest{Amount: amount}
	if err := s.client.doJSON("POST", "/api/payment/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
