package bank

// Category classifies a review item.
type Category string

const (
	CategoryPhrase Category = "phrase"
	CategoryUsage  Category = "usage"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryPhrase, CategoryUsage}
}

// ParseCategory maps a raw string from an import file to a Category.
// Matching is case-insensitive on the trimmed value.
func ParseCategory(s string) (Category, bool) {
	switch Category(normalize(s)) {
	case CategoryPhrase:
		return CategoryPhrase, true
	case CategoryUsage:
		return CategoryUsage, true
	default:
		return Category(s), false
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryPhrase || c == CategoryUsage
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryPhrase:
		return "Phrase"
	case CategoryUsage:
		return "Usage"
	default:
		return string(c)
	}
}

// Item is a single drill entry: an English phrase and its Chinese gloss.
type Item struct {
	ID       int      `yaml:"id"`
	Target   string   `yaml:"english"`
	Source   string   `yaml:"chinese"`
	Category Category `yaml:"type"`
}
