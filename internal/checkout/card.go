package checkout

import "strings"

type CardType string

const (
	CardVisa       CardType = "Visa"
	CardMastercard CardType = "Mastercard"
	CardAmex       CardType = "American Express"
	CardDiscover   CardType = "Discover"
	CardMada       CardType = "Mada"
	CardUnknown    CardType = "Unknown"
)

// DetectCardType classifies a card number by its first digit.
func DetectCardType(number string) CardType {
	digits := DigitsOnly(number)
	if digits == "" {
		return CardUnknown
	}
	switch digits[0] {
	case '4':
		return CardVisa
	case '5', '2':
		return CardMastercard
	case '3':
		return CardAmex
	case '6':
		return CardDiscover
	case '9':
		return CardMada
	}
	return CardUnknown
}

// DigitsOnly strips every non-digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the digits in fours: "4111 1111 1111 1111".
// Anything past 16 digits is cut off.
func FormatCardNumber(number string) string {
	digits := DigitsOnly(number)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LastFour returns the last four digits of a card number.
func LastFour(number string) string {
	digits := DigitsOnly(number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
