package service

import (
	"strings"

	"order-status/internal/features/orders/domain"
)

const verifyDigits = 4

// VerifyPhone compares the last four digits of the caller's phone with the order's.
// Verification is skipped when either phone is missing or has no digits.
func VerifyPhone(provided, stored string) error {
	if provided == "" || stored == "" {
		return nil
	}

	want := lastDigits(stored, verifyDigits)
	got := lastDigits(provided, verifyDigits)
	if want == "" || got == "" {
		return nil
	}

	if want != got {
		return domain.ErrVerificationMismatch
	}
	return nil
}

// lastDigits keeps the ASCII digits of phone and returns the final n of them.
func lastDigits(phone string, n int) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if len(digits) > n {
		return digits[len(digits)-n:]
	}
	return digits
}
