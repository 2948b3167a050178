package pricing

// Tally says which counter a seat contributes to.
type Tally int

const (
	TallyAvailable Tally = iota
	TallySelected
	TallyBooked
)

// Stat is one legend row.
type Stat struct {
	Info
	Available int     `json:"available"`
	Selected  int     `json:"selected"`
	Booked    int     `json:"booked"`
	Total     int     `json:"total"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
}

// Legend accumulates per-category seat statistics.
type Legend struct {
	stats map[Category]*Stat
}

func NewLegend() *Legend {
	return &Legend{stats: make(map[Category]*Stat)}
}

// Add counts a seat. Seats in unknown categories are ignored.
func (l *Legend) Add(category string, price float64, t Tally) {
	c := Category(category)
	if _, ok := catalog[c]; !ok {
		return
	}

	st, ok := l.stats[c]
	if !ok {
		st = &Stat{Info: Lookup(category), MinPrice: price, MaxPrice: price}
		l.stats[c] = st
	}

	switch t {
	case TallySelected:
		st.Selected++
	case TallyBooked:
		st.Booked++
	default:
		st.Available++
	}
	st.Total++

	if price < st.MinPrice {
		st.MinPrice = price
	}
	if price > st.MaxPrice {
		st.MaxPrice = price
	}
}

// Stats returns the rows in display priority order.
func (l *Legend) Stats() []Stat {
	out := make([]Stat, 0, len(l.stats))
	for _, c := range Order {
		if st, ok := l.stats[c]; ok {
			out = append(out, *st)
		}
	}
	return out
}
