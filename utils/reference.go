package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

// BookingReferenceLength matches the human-readable references handed out to
// customers, e.g. "PrhEjxxuk1Bnp".
const BookingReferenceLength = 13

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBookingReference returns a random alphanumeric reference of the
// given length. Uses crypto/rand with big.Int to avoid modulo bias.
func GenerateBookingReference(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid reference length")
	}
	var sb strings.Builder
	charsetLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
