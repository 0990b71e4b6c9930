package application

import (
	"fmt"
	"strconv"
)

// Prices are carried end to end as integer minor units (cents) encoded
// as decimal-digit strings, so interactive editing never touches
// floating point. The stored value is always a valid non-negative
// integer string.

// maxPriceDigits caps the representable amount at 999,999.99.
const maxPriceDigits = 8

// AppendPriceInput concatenates the numeric characters of input onto
// current. The append is rejected (current returned unchanged) once the
// accumulated digit count would exceed maxPriceDigits. A lone "0" is
// replaced rather than extended, keypad style.
func AppendPriceInput(current, input string) string {
	digits := ""
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits += string(r)
		}
	}
	if digits == "" {
		return current
	}
	next := current
	if next == "0" {
		next = ""
	}
	next += digits
	for len(next) > 1 && next[0] == '0' {
		next = next[1:]
	}
	if len(next) > maxPriceDigits {
		return current
	}
	return next
}

// PriceBackspace removes the last digit, flooring at "0".
func PriceBackspace(current string) string {
	if len(current) <= 1 {
		return "0"
	}
	next := current[:len(current)-1]
	if next == "" {
		return "0"
	}
	return next
}

// PriceInCents parses the digit string as a base-10 integer. Empty or
// invalid input parses to 0; this never fails.
func PriceInCents(s string) int {
	return int(parseCents(s))
}

// FormatCents renders integer cents with exactly two fractional digits.
func FormatCents(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// FormatPrice renders a digit-string price for display.
func FormatPrice(s string) string {
	return FormatCents(PriceInCents(s))
}

func parseCents(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
