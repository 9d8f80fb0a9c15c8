package payment

import (
	"fmt"
	"time"
)

// Mock card gate: no real processing happens anywhere in this codebase,
// these checks are the only thing standing between a payment request and a
// successful mock payment record.

const minCardDigits = 12

func digitsOf(cardNumber string) []int {
	digits := make([]int, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

// ChecksumValid reports whether the card number passes the Luhn check.
// Non-digit characters (spaces, dashes) are ignored; fewer than 12 digits
// always fails.
func ChecksumValid(cardNumber string) bool {
	digits := digitsOf(cardNumber)
	if len(digits) < minCardDigits {
		return false
	}

	sum := 0
	parity := len(digits) % 2
	for i, d := range digits {
		if i%2 == parity {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// Mask returns a display string exposing only the last four digits.
func Mask(cardNumber string) string {
	digits := digitsOf(cardNumber)
	if len(digits) < 4 {
		return "****"
	}
	last := digits[len(digits)-4:]
	return fmt.Sprintf("**** **** **** %d%d%d%d", last[0], last[1], last[2], last[3])
}

// ExpiryValid rejects months outside 1..12 and any (year, month) strictly
// before the current one. Year is four digits.
func ExpiryValid(month, year int) bool {
	return expiryValidAt(month, year, time.Now().UTC())
}

func expiryValidAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}
