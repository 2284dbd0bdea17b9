package models

// Category is one of a fixed set of listing categories. The empty value means "no category".
type Category string

const (
	CategoryNone        Category = ""
	CategoryBooks       Category = "books"
	CategoryElectronics Category = "electronics"
	CategoryHomeKitchen Category = "home_kitchen"
	CategoryToys        Category = "toys"
)

// Categories lists every valid category in menu order.
var Categories = []Category{
	CategoryNone,
	CategoryBooks,
	CategoryElectronics,
	CategoryHomeKitchen,
	CategoryToys,
}

var categoryLabels = map[Category]string{
	CategoryNone:        "No category",
	CategoryBooks:       "Books",
	CategoryElectronics: "Electronics",
	CategoryHomeKitchen: "Home & Kitchen",
	CategoryToys:        "Toys",
}

// IsValid reports whether c is in the enumerated set. Matching is case-sensitive.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label 菜单显示名称
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
