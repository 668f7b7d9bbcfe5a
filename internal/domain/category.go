package domain

// CategoryIncome is the reserved category for income transactions. It is
// always present in the registry and excluded from expense enumerations.
const CategoryIncome = "income"

// DefaultCategories seeds the registry and the budget mapping.
var DefaultCategories = []string{CategoryIncome, "groceries", "utilities", "entertainment", "other"}

// Validation constants
const (
	MaxCategoryNameLength = 100
)
