package seats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
)

var (
	ErrDuplicateSeat = errors.New("layout produces duplicate seat codes")
	ErrPriceRequired = errors.New("section has no price and no tier price setting")
	ErrUnknownTier   = errors.New("section category is not a pricing tier")
)

// SeatCode is the client-facing id of a seat: seat-<row>-<number>
func SeatCode(row string, number int) string {
	return fmt.Sprintf("seat-%s-%d", row, number)
}

// priceFunc resolves the price of a section without an explicit one
type priceFunc func(category string) float64

// buildLayout expands sections into seat rows. Row labels are upper-cased
// and seat numbers restart at 1 in every row.
func buildLayout(eventID uuid.UUID, date string, sections []SectionLayout, price priceFunc) ([]Seat, error) {
	var out []Seat
	seen := make(map[string]struct{})

	for _, section := range sections {
		if !pricing.IsKnown(section.Category) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTier, section.Category)
		}

		var p float64
		if section.Price != nil {
			p = *section.Price
		} else {
			p = price(section.Category)
			if p <= 0 {
				return nil, fmt.Errorf("%w: %s", ErrPriceRequired, section.Name)
			}
		}

		for _, row := range section.Rows {
			row = strings.ToUpper(strings.TrimSpace(row))
			for n := 1; n <= section.SeatsPerRow; n++ {
				code := SeatCode(row, n)
				if _, dup := seen[code]; dup {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateSeat, code)
				}
				seen[code] = struct{}{}

				out = append(out, Seat{
					EventID:  eventID,
					ShowDate: date,
					Code:     code,
					Row:      row,
					Number:   n,
					Section:  section.Name,
					Category: section.Category,
					Price:    p,
				})
			}
		}
	}
	return out, nil
}
