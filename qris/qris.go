// Package qris builds and inspects QRIS payment payloads. A static merchant
// QR is rewritten into a per-transaction dynamic payload by injecting the
// amount (tag 54) and optional surcharge (tag 55) before the country code,
// then re-checksummed.
package qris

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wiradarma21/travel_booking/models"
)

// CRC16 computes the CCITT-FALSE checksum over payload and formats it the
// way QRIS expects: four uppercase hex digits.
func CRC16(payload string) string {
	crc := uint16(0xFFFF)
	for _, b := range []byte(payload) {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}

// GenerateDynamicString converts a static QRIS payload into a dynamic one
// carrying amount and fee. Payloads that do not follow the standard layout
// are returned unchanged, so a non-standard merchant QR still scans.
func GenerateDynamicString(staticQris string, amount float64, feeType *models.FeeType, feeValue *float64) (string, error) {
	if len(staticQris) < 4 {
		return "", fmt.Errorf("static QRIS payload is invalid")
	}

	withoutCRC := staticQris[:len(staticQris)-4]

	// Point-of-initiation: 010211 is static, 010212 dynamic.
	step1 := strings.Replace(withoutCRC, "010211", "010212", 1)

	parts := strings.SplitN(step1, "5802ID", 2)
	if len(parts) != 2 {
		return staticQris, nil
	}

	amountStr := strconv.Itoa(int(amount))
	amountTag := fmt.Sprintf("54%02d%s", len(amountStr), amountStr)

	feeTag := ""
	if feeValue != nil && *feeValue > 0 {
		if feeType != nil && *feeType == models.FeeRupiah {
			feeStr := strconv.Itoa(int(*feeValue))
			feeTag = fmt.Sprintf("55020256%02d%s", len(feeStr), feeStr)
		} else {
			feeStr := strconv.FormatFloat(*feeValue, 'f', -1, 64)
			feeTag = fmt.Sprintf("55020357%02d%s", len(feeStr), feeStr)
		}
	}

	payload := parts[0] + amountTag + feeTag + "5802ID" + parts[1]
	return payload + CRC16(payload), nil
}

// Info is the result of decoding a QRIS payload.
type Info struct {
	Valid     bool
	IsDynamic bool
	IsStatic  bool
	Amount    *float64
}

// Decode validates the checksum and extracts the initiation mode and amount.
func Decode(payload string) Info {
	var info Info
	if len(payload) < 4 {
		return info
	}

	body := payload[:len(payload)-4]
	checksum := payload[len(payload)-4:]
	if checksum != CRC16(body) {
		return info
	}
	info.Valid = true

	if strings.Contains(payload, "010212") {
		info.IsDynamic = true
	} else if strings.Contains(payload, "010211") {
		info.IsStatic = true
	}

	if idx := strings.Index(payload, "54"); idx != -1 && idx+4 <= len(payload) {
		if length, err := strconv.Atoi(payload[idx+2 : idx+4]); err == nil && idx+4+length <= len(payload) {
			if amount, err := strconv.ParseFloat(payload[idx+4:idx+4+length], 64); err == nil {
				info.Amount = &amount
			}
		}
	}

	return info
}
