package pricing

import "sort"

// Category is a seat pricing tier.
type Category string

const (
	CategoryVVIP     Category = "VVIP"
	CategoryVIP      Category = "VIP"
	CategoryRoyal    Category = "Royal"
	CategoryDiamond  Category = "Diamond"
	CategoryPlatinum Category = "Platinum"
	CategoryGold     Category = "Gold"
	CategorySilver   Category = "Silver"
	CategoryBronze   Category = "Bronze"
)

// DefaultCategory is used when a seat entry carries no category.
const DefaultCategory = "عام"

// NeutralColor is shown for categories outside the known tiers.
const NeutralColor = "gray-300"

// Info describes how a category is presented.
type Info struct {
	Category   Category `json:"category"`
	Name       string   `json:"name"`
	NameAr     string   `json:"name_ar"`
	Color      string   `json:"color"`
	BadgeColor string   `json:"badge_color"`
	Priority   int      `json:"priority"`
	Recognized bool     `json:"recognized"`
}

// Order is the fixed display priority, highest tier first.
var Order = []Category{
	CategoryVVIP,
	CategoryVIP,
	CategoryRoyal,
	CategoryDiamond,
	CategoryPlatinum,
	CategoryGold,
	CategorySilver,
	CategoryBronze,
}

var catalog = map[Category]Info{
	CategoryVVIP:     {Name: "VVIP", NameAr: "كراسي ارضية", Color: "purple-500", BadgeColor: "purple-500"},
	CategoryVIP:      {Name: "VIP", NameAr: "كراسي ارضية", Color: "red-500", BadgeColor: "pink-500"},
	CategoryRoyal:    {Name: "Royal", NameAr: "كراسي ارضية", Color: "green-500", BadgeColor: "green-500"},
	CategoryDiamond:  {Name: "Diamond", NameAr: "كراسي ارضية", Color: "blue-500", BadgeColor: "blue-500"},
	CategoryPlatinum: {Name: "Platinum", NameAr: "كراسي مدرجات", Color: "purple-400", BadgeColor: "purple-400"},
	CategoryGold:     {Name: "Gold", NameAr: "كراسي ارضية", Color: "yellow-500", BadgeColor: "yellow-500"},
	CategorySilver:   {Name: "Silver", NameAr: "كراسي أساسية", Color: "gray-400", BadgeColor: "gray-400"},
	CategoryBronze:   {Name: "Bronze", NameAr: "كراسي مميزات", Color: "orange-500", BadgeColor: "orange-500"},
}

// Lookup returns presentation info for a category. Unknown categories come
// back with the neutral colour, Recognized=false and a priority after every
// known tier.
func Lookup(category string) Info {
	c := Category(category)
	info, ok := catalog[c]
	if !ok {
		return Info{
			Category:   c,
			Name:       category,
			NameAr:     category,
			Color:      NeutralColor,
			BadgeColor: NeutralColor,
			Priority:   len(Order),
		}
	}
	info.Category = c
	info.Priority = priority(c)
	info.Recognized = true
	return info
}

// IsKnown reports whether category is one of the eight tiers.
func IsKnown(category string) bool {
	_, ok := catalog[Category(category)]
	return ok
}

func priority(c Category) int {
	for i, o := range Order {
		if o == c {
			return i
		}
	}
	return len(Order)
}

// SortCategories orders categories by display priority. Unknown categories
// keep their relative order at the end.
func SortCategories(categories []string) []string {
	out := append([]string(nil), categories...)
	sort.SliceStable(out, func(i, j int) bool {
		return priority(Category(out[i])) < priority(Category(out[j]))
	})
	return out
}

// SettingKey is the settings key holding the fallback ticket price of a tier,
// e.g. "goldTicketPrice". Tiers without a settings entry return "".
func SettingKey(category string) string {
	switch Category(category) {
	case CategoryVVIP:
		return "vvipTicketPrice"
	case CategoryVIP:
		return "vipTicketPrice"
	case CategoryGold:
		return "goldTicketPrice"
	case CategorySilver:
		return "silverTicketPrice"
	case CategoryBronze:
		return "bronzeTicketPrice"
	}
	return ""
}

// Subtotal sums prices.
func Subtotal(prices ...float64) float64 {
	var total float64
	for _, p := range prices {
		total += p
	}
	return total
}
