package validation

import (
	"strings"
	"unicode"
)

// DigitsOnly drops every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FormatCardNumber groups the card digits by four: "4111111111111" -> "4111 1111 1111 1".
func FormatCardNumber(s string) string {
	digits := DigitsOnly(s)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the slash once two digits are typed: "1225" -> "12/25".
func FormatExpiry(s string) string {
	digits := DigitsOnly(s)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatCVV keeps at most four digits.
func FormatCVV(s string) string {
	digits := DigitsOnly(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}
