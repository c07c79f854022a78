package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"mediconnect-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateOTP(otpLength int) (string, error) {
	const otpDigits = "0123456789"

	otp := make([]byte, otpLength)
	for i := range otp {
		// The first digit is never zero, keeping the code at its full
		// printed length.
		digits := otpDigits
		if i == 0 {
			digits = otpDigits[1:]
		}
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		otp[i] = digits[num.Int64()]
	}

	return string(otp), nil
}

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}

func GenerateTransactionID() string {
	return fmt.Sprintf("TXN-%s", uuid.NewString())
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
