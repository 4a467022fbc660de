package model

// Icon tags understood by the UI layer.
const (
	IconCoffee       = "coffee"
	IconCar          = "car"
	IconShoppingBag  = "shopping-bag"
	IconMusic        = "music"
	IconTV           = "tv"
	IconShoppingCart = "shopping-cart"
)

var categoryIcons = map[string]string{
	"Dining":        IconCoffee,
	"Groceries":     IconShoppingCart,
	"Transport":     IconCar,
	"Shopping":      IconShoppingBag,
	"Entertainment": IconTV,
}

// IconForCategory returns the icon tag for a category, defaulting to the
// generic shopping bag. Only manually entered transactions use this; the
// CSV importer always tags rows with the generic icon.
func IconForCategory(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return IconShoppingBag
}
