package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(bookingID string) ([]byte, error)
}

// DefaultQRGenerator encodes the check-in link staff scan at the door.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(bookingID string) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/checkin?booking=%s", g.BaseURL, bookingID), qrcode.Medium, 256)
}
