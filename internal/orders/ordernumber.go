package orders

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderNumberSuffixLen = 5

var orderNumberCharset = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateOrderNumber builds a customer-facing reference:
//
//	ORD-<unix millis>-<5 random upper alphanumerics>
func GenerateOrderNumber(now time.Time) (string, error) {
	suffix := make([]byte, orderNumberSuffixLen)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generating order number suffix: %w", err)
	}
	for i, b := range suffix {
		suffix[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix), nil
}
