package service

// suggestedCategories is what clients offer in their category pickers.
// Categories stay free text; this list is not enforced.
var suggestedCategories = []string{
	"Food",
	"Rent",
	"Utilities",
	"Transport",
	"Entertainment",
	"Investment",
	"Salary",
	"Other",
}

// SuggestedCategories returns a copy of the suggested category names.
func SuggestedCategories() []string {
	out := make([]string, len(suggestedCategories))
	copy(out, suggestedCategories)
	return out
}
