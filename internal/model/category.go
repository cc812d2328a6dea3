package model

// Category is a spending category assigned to a transaction.
// The set of valid categories is closed; anything a classifier produces
// outside it must be replaced with CategoryOther before it reaches callers.
type Category string

// The closed set of spending categories.
const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryTransport     Category = "Transport"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	// CategoryOther is the default and the fallback for anything unclassifiable.
	CategoryOther Category = "Other"
)

// Categories returns the closed category set in canonical order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryHealth,
		CategoryEducation,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
// Matching is exact and case-sensitive.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryShopping, CategoryTransport, CategoryHealth,
		CategoryEducation, CategoryUtilities, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}
