package menu

import "encoding/json"

// Variant is one sized/priced option of a menu item ("0.3l", "0.5l", ...).
type Variant struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Item is a single menu position. Exactly one pricing mode is authoritative
// per add-to-cart: either the flat Price or one entry of Variants.
type Item struct {
	Name     string    `json:"name"`
	Desc     string    `json:"desc,omitempty"`
	Price    *float64  `json:"price,omitempty"`
	Image    string    `json:"image,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

// Category carries one of two stored shapes: a plain item list, or a named
// map of subsections. The JSON document encodes a flat category as an array
// and a sectioned one as {"subsections": {...}}.
type Category struct {
	Items       []Item
	Subsections map[string][]Item
}

// Sectioned reports whether the category resolves items through subsections.
func (c Category) Sectioned() bool {
	return c.Subsections != nil
}

type sectionedCategory struct {
	Subsections map[string][]Item `json:"subsections"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		c.Items = items
		c.Subsections = nil
		return nil
	}

	var sect sectionedCategory
	if err := json.Unmarshal(data, &sect); err != nil {
		return err
	}
	c.Items = nil
	c.Subsections = sect.Subsections
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	if c.Sectioned() {
		return json.Marshal(sectionedCategory{Subsections: c.Subsections})
	}
	if c.Items == nil {
		return json.Marshal([]Item{})
	}
	return json.Marshal(c.Items)
}

// Menu maps category name to its contents.
type Menu map[string]Category

// Selection is the result of resolving a menu reference to a concrete price.
type Selection struct {
	Name         string
	VariantLabel string
	UnitPrice    float64
}
