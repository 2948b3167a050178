package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownCategory(t *testing.T) {
	info := Lookup("VIP")

	assert.True(t, info.Recognized)
	assert.Equal(t, "red-500", info.Color)
	assert.Equal(t, "pink-500", info.BadgeColor)
	assert.Equal(t, 1, info.Priority)
}

func TestLookup_UnknownCategoryIsNeutral(t *testing.T) {
	info := Lookup("Balcony")

	assert.False(t, info.Recognized)
	assert.Equal(t, NeutralColor, info.Color)
	assert.Equal(t, len(Order), info.Priority)
}

func TestSortCategories(t *testing.T) {
	got := SortCategories([]string{"Bronze", "Balcony", "VVIP", "Gold", "Royal"})

	assert.Equal(t, []string{"VVIP", "Royal", "Gold", "Bronze", "Balcony"}, got)
}

func TestSettingKey(t *testing.T) {
	assert.Equal(t, "goldTicketPrice", SettingKey("Gold"))
	assert.Equal(t, "vvipTicketPrice", SettingKey("VVIP"))
	assert.Empty(t, SettingKey("Diamond"))
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal())
	assert.Equal(t, 900.0, Subtotal(400, 500))
}

func TestLegend_StatsInPriorityOrder(t *testing.T) {
	l := NewLegend()
	l.Add("Gold", 150, TallyAvailable)
	l.Add("VIP", 400, TallySelected)
	l.Add("VIP", 450, TallyBooked)
	l.Add("Gold", 120, TallyAvailable)
	l.Add("Unknown", 10, TallyAvailable)

	stats := l.Stats()
	if assert.Len(t, stats, 2) {
		assert.Equal(t, CategoryVIP, stats[0].Category)
		assert.Equal(t, 1, stats[0].Selected)
		assert.Equal(t, 1, stats[0].Booked)
		assert.Equal(t, 400.0, stats[0].MinPrice)
		assert.Equal(t, 450.0, stats[0].MaxPrice)

		assert.Equal(t, CategoryGold, stats[1].Category)
		assert.Equal(t, 2, stats[1].Available)
		assert.Equal(t, 120.0, stats[1].MinPrice)
	}
}
