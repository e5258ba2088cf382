package cart

// Line is one cart position. Identity/merge key is (category, subname,
// name, variant): adding an existing key increments qty instead of
// appending a second line.
type Line struct {
	Category  string  `json:"category"`
	Subname   string  `json:"subname"`
	Name      string  `json:"name"`
	Variant   string  `json:"variant"`
	UnitPrice float64 `json:"unit_price"`
	Qty       int     `json:"qty"`
}

// SameKey reports whether two lines share the composite identity key.
func (l Line) SameKey(other Line) bool {
	return l.Category == other.Category &&
		l.Subname == other.Subname &&
		l.Name == other.Name &&
		l.Variant == other.Variant
}

// State is the cart-scoped session payload: the ordered lines plus the
// currently applied promo code. The promo code lives and dies with the cart.
type State struct {
	Lines     []Line `json:"lines"`
	PromoCode string `json:"promo_code,omitempty"`
}

// Subtotal sums unit_price * qty over all lines.
func (s State) Subtotal() float64 {
	var sum float64
	for _, l := range s.Lines {
		sum += l.UnitPrice * float64(l.Qty)
	}
	return sum
}

// Count sums qty over all lines. UI badges show this, not the line count.
func (s State) Count() int {
	var n int
	for _, l := range s.Lines {
		n += l.Qty
	}
	return n
}

// Empty reports whether the cart holds no lines.
func (s State) Empty() bool {
	return len(s.Lines) == 0
}
