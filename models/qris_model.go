package models

import "time"

type FeeType string

const (
	FeeRupiah     FeeType = "rupiah"
	FeePersentase FeeType = "persentase"
)

// QRIS is an agent's uploaded static payment QR plus fee metadata used to
// derive per-transaction dynamic QR payloads.
type QRIS struct {
	ID               string    `json:"id"`
	StaticQrisString string    `json:"staticQrisString"`
	FotoQrPath       string    `json:"fotoQrPath"`
	FeeType          *FeeType  `json:"feeType"`
	FeeValue         *float64  `json:"feeValue"`
	CreatedAt        time.Time `json:"createdAt"`
}
