package category

import "fmt"

// RGB is a chart color, one byte per channel.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Category is a fixed food classification. Id is stored in persisted entries
// and must never be reassigned.
type Category struct {
	Id         int
	Title      string
	ShortTitle string
	Color      RGB
}

// FallbackColor is used for ids missing from the catalog.
var FallbackColor = RGB{123, 125, 122}

var catalog = [...]Category{
	{Id: 1, Title: "Bread and baked goods", ShortTitle: "Bread", Color: RGB{249, 221, 160}},
	{Id: 2, Title: "Vegetables", ShortTitle: "Veg", Color: RGB{240, 151, 65}},
	{Id: 3, Title: "Fruits", ShortTitle: "Fruit", Color: RGB{238, 131, 130}},
	{Id: 4, Title: "Nuts and dried fruits", ShortTitle: "Nuts", Color: RGB{136, 93, 60}},
	{Id: 5, Title: "Dairy products", ShortTitle: "Dairy", Color: RGB{254, 252, 215}},
	{Id: 6, Title: "Eggs", ShortTitle: "Eggs", Color: RGB{244, 228, 191}},
	{Id: 7, Title: "Meat", ShortTitle: "Meat", Color: RGB{241, 160, 112}},
	{Id: 8, Title: "Sauces and seasonings", ShortTitle: "Sauces", Color: RGB{170, 188, 240}},
	{Id: 9, Title: "Fish and seafood", ShortTitle: "Fish", Color: RGB{171, 223, 252}},
	{Id: 10, Title: "Ready meals/ fast food", ShortTitle: "Fast food", Color: RGB{201, 74, 68}},
	{Id: 11, Title: "Cereals and pasta", ShortTitle: "Grains", Color: RGB{251, 230, 84}},
	{Id: 12, Title: "Frozen foods", ShortTitle: "Frozen", Color: RGB{202, 54, 202}},
	{Id: 13, Title: "Canned goods", ShortTitle: "Canned", Color: RGB{199, 244, 186}},
	{Id: 14, Title: "Drinks", ShortTitle: "Drinks", Color: RGB{242, 172, 245}},
	{Id: 15, Title: "Greens", ShortTitle: "Greens", Color: RGB{137, 185, 71}},
	{Id: 16, Title: "Other", ShortTitle: "Other", Color: RGB{186, 252, 129}},
}

var byId = func() map[int]Category {
	m := make(map[int]Category, len(catalog))
	for _, c := range catalog {
		m[c.Id] = c
	}
	return m
}()

// All returns the catalog in id order. The slice is a copy.
func All() []Category {
	all := make([]Category, len(catalog))
	copy(all, catalog[:])
	return all
}

func Find(id int) (Category, bool) {
	c, ok := byId[id]
	return c, ok
}

func Exists(id int) bool {
	_, ok := byId[id]
	return ok
}

// Default is the category shown for entries whose id cannot be resolved.
func Default() Category {
	return catalog[0]
}

func FindOrDefault(id int) Category {
	if c, ok := byId[id]; ok {
		return c
	}
	return Default()
}

func ColorOf(id int) RGB {
	if c, ok := byId[id]; ok {
		return c.Color
	}
	return FallbackColor
}
