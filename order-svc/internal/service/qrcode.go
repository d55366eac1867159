package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes the order tracking link as a 256px PNG.
func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	link := fmt.Sprintf("%s/orders/%d", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
