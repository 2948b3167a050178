// Package cart carries a seat selection between the selection, checkout and
// payment pages as a compact query-string token.
//
// A token is a comma separated list of id:category:price entries, e.g.
//
//	seat-A-1:VIP:400,seat-A-2:Royal:500
//
// Encode replaces ':' and ',' inside ids and categories with '-' so every
// entry decodes back to the fields it was written from.
package cart

import (
	"math"
	"strconv"
	"strings"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
)

const (
	entrySep = ","
	fieldSep = ":"

	defaultRow    = "A"
	defaultNumber = 1
)

var delimiterEscaper = strings.NewReplacer(fieldSep, "-", entrySep, "-")

// Encode serialises seats into a selection token.
func Encode(seats []inventory.Seat) string {
	parts := make([]string, 0, len(seats))
	for _, s := range seats {
		id := delimiterEscaper.Replace(s.ID)
		category := delimiterEscaper.Replace(s.Category)
		parts = append(parts, id+fieldSep+category+fieldSep+FormatPrice(s.Price))
	}
	return strings.Join(parts, entrySep)
}

// Decode parses a selection token. It never fails: entries without a ':' or
// with an empty id are dropped, a missing category becomes the default one
// and a price is read from its leading number, 0 when there is none. Ids are
// kept verbatim. Row and number are derived from the id.
func Decode(token string) []inventory.Seat {
	if token == "" {
		return []inventory.Seat{}
	}

	entries := strings.Split(token, entrySep)
	seats := make([]inventory.Seat, 0, len(entries))
	for _, entry := range entries {
		if entry == "" || !strings.Contains(entry, fieldSep) {
			continue
		}

		fields := strings.Split(entry, fieldSep)
		id := fields[0]
		if id == "" {
			continue
		}

		category := ""
		if len(fields) > 1 {
			category = fields[1]
		}
		if category == "" {
			category = pricing.DefaultCategory
		}

		var price float64
		if len(fields) > 2 {
			price = parsePrice(fields[2])
		}

		row, number := SplitSeatID(id)
		seats = append(seats, inventory.Seat{
			ID:       id,
			Row:      row,
			Number:   number,
			Section:  category,
			Category: category,
			Price:    price,
			Status:   inventory.StatusSelected,
		})
	}
	return seats
}

// Total recomputes the sum of seat prices.
func Total(seats []inventory.Seat) float64 {
	var total float64
	for _, s := range seats {
		total += s.Price
	}
	return total
}

// SplitSeatID derives row and number from ids shaped like "seat-B-12".
// Missing parts fall back to row "A" and number 1.
func SplitSeatID(id string) (string, int) {
	parts := strings.Split(id, "-")

	row := defaultRow
	if len(parts) > 1 && parts[1] != "" {
		row = parts[1]
	}

	number := defaultNumber
	if len(parts) > 2 {
		if n, ok := leadingInt(parts[2]); ok && n != 0 {
			number = n
		}
	}
	return row, number
}

// FormatPrice prints a price in its shortest form: 400, 12.5.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// parsePrice reads the leading decimal number of s, so "400abc" is 400.
// Non-finite results read as 0.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	end := scanDigits(s, scanSign(s, 0))
	if end < len(s) && s[end] == '.' {
		end = scanDigits(s, end+1)
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		if exp := scanDigits(s, scanSign(s, end+1)); exp > scanSign(s, end+1) {
			end = exp
		}
	}

	p, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

func scanSign(s string, i int) int {
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		return i + 1
	}
	return i
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// leadingInt reads an optionally signed run of leading digits.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
