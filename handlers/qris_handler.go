package handlers

import (
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/models"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/qris"
)

type QRISHandler struct {
	qris   *api.QRISService
	toasts *notifications.Feed
}

func NewQRISHandler(qrisService *api.QRISService, toasts *notifications.Feed) *QRISHandler {
	return &QRISHandler{qris: qrisService, toasts: toasts}
}

func (h *QRISHandler) List(c *fiber.Ctx) error {
	records, err := h.qris.GetAll()
	if err != nil {
		h.toasts.Error("Could not load QRIS records")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

func (h *QRISHandler) Get(c *fiber.Ctx) error {
	record, err := h.qris.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

// Create uploads the agent's static QR image with optional fee metadata.
func (h *QRISHandler) Create(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("foto_qr")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR image is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read QR image"})
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR upload must be an image"})
	}
	if _, err := file.Seek(0, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot rewind QR image"})
	}

	req := api.CreateQRISRequest{
		FotoQr: api.Upload{Filename: fileHeader.Filename, Reader: file},
	}
	if raw := c.FormValue("fee_type"); raw != "" {
		feeType := models.FeeType(raw)
		if feeType != models.FeeRupiah && feeType != models.FeePersentase {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fee_type must be rupiah or persentase"})
		}
		req.FeeType = &feeType
	}
	if raw := c.FormValue("fee_value"); raw != "" {
		feeValue, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fee_value must be a number"})
		}
		req.FeeValue = &feeValue
	}

	resp, err := h.qris.Create(req)
	if err != nil {
		h.toasts.Error("QRIS upload failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *QRISHandler) Delete(c *fiber.Ctx) error {
	if err := h.qris.Delete(c.Params("id")); err != nil {
		h.toasts.Error("QRIS deletion failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "QRIS deleted"})
}

func (h *QRISHandler) Preview(c *fiber.Ctx) error {
	var req api.QRISPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	resp, err := h.qris.Preview(req.QrisID, req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}

func (h *QRISHandler) GeneratePayment(c *fiber.Ctx) error {
	var req api.GeneratePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	resp, err := h.qris.GeneratePayment(req.Amount)
	if err != nil {
		h.toasts.Error("Payment QR generation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}

type decodePayloadRequest struct {
	Payload string `json:"payload"`
}

// DecodePayload inspects a scanned QRIS string locally: checksum validity,
// initiation mode and embedded amount.
func (h *QRISHandler) DecodePayload(c *fiber.Ctx) error {
	var req decodePayloadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	info := qris.Decode(req.Payload)
	return c.JSON(fiber.Map{
		"valid":     info.Valid,
		"isDynamic": info.IsDynamic,
		"isStatic":  info.IsStatic,
		"amount":    info.Amount,
	})
}
