package services

import (
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"

	"banhmai_back_end/internal/models"
)

// PaymentQRCode renders the bank-transfer QR for an order as a PNG. The
// payload carries the shop's account, the amount and the order id as the
// transfer note so payments can be matched to orders.
func PaymentQRCode(order models.Order) ([]byte, error) {
	payload := fmt.Sprintf("bank=%s&account=%s&amount=%.0f&note=%s",
		os.Getenv("BANK_CODE"),
		os.Getenv("BANK_ACCOUNT"),
		order.Total,
		order.ID,
	)
	return qrcode.Encode(payload, qrcode.Medium, 256)
}
