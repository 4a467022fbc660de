package importer

import "strings"

// categoryRule maps a category to the merchant keywords that imply it.
// Rules are checked in order; the first keyword hit wins.
type categoryRule struct {
	Category string
	Keywords []string
}

var categoryRules = []categoryRule{
	{"Dining", []string{"swiggy", "zomato", "cafe", "restaurant"}},
	{"Transport", []string{"uber", "ola", "metro", "fuel"}},
	{"Shopping", []string{"amazon", "mall", "shop"}},
	{"Entertainment", []string{"netflix", "spotify", "prime"}},
	{"Groceries", []string{"grocery", "mart", "big bazaar"}},
}

// defaultCategory is used when no keyword matches.
const defaultCategory = "Shopping"

// InferCategory guesses a category from merchant text. Only used when the
// statement has no category column.
func InferCategory(merchant string) string {
	text := strings.ToLower(merchant)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	return defaultCategory
}
