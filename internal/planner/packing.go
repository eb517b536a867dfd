package planner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/eswar0113/travel/internal/models"
)

// GeneratePackingList builds a categorized checklist from the destination
// text, the trip length in days and the start date. It is a pure function:
// same inputs, same list. The caller persists the result once per trip and
// must never regenerate over an existing list.
func GeneratePackingList(destination string, durationDays int, startDate time.Time) []models.PackingItem {
	month := startDate.Month()
	isWinter := month == time.December || month <= time.March
	isSummer := month >= time.June && month <= time.September

	items := []models.PackingItem{
		{Item: "Passport", Category: "Documents"},
		{Item: "Travel Insurance", Category: "Documents"},
		{Item: "Phone Charger", Category: "Electronics"},
		{Item: "Power Bank", Category: "Electronics"},
		{Item: "Medications", Category: "Health"},
		{Item: "First Aid Kit", Category: "Health"},
		{Item: "Toiletries", Category: "Personal Care"},
		{Item: "Sunscreen", Category: "Personal Care"},
	}

	// Max one week of clothes regardless of trip length.
	daysOfClothes := durationDays
	if daysOfClothes > 7 {
		daysOfClothes = 7
	}

	switch {
	case isWinter:
		items = append(items,
			models.PackingItem{Item: fmt.Sprintf("%d Winter Outfits", daysOfClothes), Category: "Clothing"},
			models.PackingItem{Item: "Warm Jacket", Category: "Clothing"},
			models.PackingItem{Item: "Gloves & Scarf", Category: "Clothing"},
			models.PackingItem{Item: "Warm Socks", Category: "Clothing"},
		)
	case isSummer:
		items = append(items,
			models.PackingItem{Item: fmt.Sprintf("%d Summer Outfits", daysOfClothes), Category: "Clothing"},
			models.PackingItem{Item: "Swimsuit", Category: "Clothing"},
			models.PackingItem{Item: "Sunglasses", Category: "Accessories"},
			models.PackingItem{Item: "Hat", Category: "Accessories"},
		)
	default:
		items = append(items,
			models.PackingItem{Item: fmt.Sprintf("%d Casual Outfits", daysOfClothes), Category: "Clothing"},
			models.PackingItem{Item: "Light Jacket", Category: "Clothing"},
			models.PackingItem{Item: "Comfortable Shoes", Category: "Clothing"},
		)
	}

	if durationDays > 7 {
		items = append(items,
			models.PackingItem{Item: "Laundry Detergent Packets", Category: "Essentials"},
			models.PackingItem{Item: "Extra Toiletries", Category: "Personal Care"},
		)
	}

	// Keyword groups are independent: a destination can match several.
	lowerDest := strings.ToLower(destination)

	if containsAny(lowerDest, "beach", "hawaii", "miami", "thailand") {
		items = append(items,
			models.PackingItem{Item: "Beach Towel", Category: "Beach Essentials"},
			models.PackingItem{Item: "Snorkel Gear", Category: "Beach Essentials"},
			models.PackingItem{Item: "Waterproof Phone Case", Category: "Beach Essentials"},
		)
	}

	if containsAny(lowerDest, "europe", "paris", "london", "rome") {
		items = append(items,
			models.PackingItem{Item: "Power Adapter (EU)", Category: "Electronics"},
			models.PackingItem{Item: "Comfortable Walking Shoes", Category: "Clothing"},
			models.PackingItem{Item: "Day Backpack", Category: "Accessories"},
		)
	}

	if containsAny(lowerDest, "hiking", "mountain", "trek") {
		items = append(items,
			models.PackingItem{Item: "Hiking Boots", Category: "Outdoor Gear"},
			models.PackingItem{Item: "Water Bottle", Category: "Outdoor Gear"},
			models.PackingItem{Item: "Rain Jacket", Category: "Outdoor Gear"},
		)
	}

	return items
}

// TripDurationDays returns the trip length in whole days, rounding up.
func TripDurationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
