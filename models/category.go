package models

// Category is the fixed set of product categories shown in the feed.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryHomeGarden  Category = "Home & Garden"
	CategoryFashion     Category = "Fashion"
	CategoryBooks       Category = "Books"
	CategorySports      Category = "Sports"
	CategoryBeauty      Category = "Beauty"
	CategoryToys        Category = "Toys"
	CategoryAutomotive  Category = "Automotive"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryHomeGarden,
		CategoryFashion,
		CategoryBooks,
		CategorySports,
		CategoryBeauty,
		CategoryToys,
		CategoryAutomotive,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
