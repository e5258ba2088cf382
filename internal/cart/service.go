package cart

import (
	"context"

	"pubhouse-be/internal/menu"
	"pubhouse-be/internal/promo"
)

// Service defines the session-scoped cart operations. Every mutation is a
// read-modify-write of one session's state within a single request.
type Service interface {
	View(ctx context.Context, sessionID string) (*View, error)
	Count(ctx context.Context, sessionID string) (int, error)
	Add(ctx context.Context, sessionID string, p AddParams) (*View, error)
	UpdateQty(ctx context.Context, sessionID string, p UpdateParams) (*View, error)
	Remove(ctx context.Context, sessionID string, index int) (*View, error)
	Clear(ctx context.Context, sessionID string) (*View, error)
	ApplyPromo(ctx context.Context, sessionID, code string) (*View, error)
	ClearPromo(ctx context.Context, sessionID string) (*View, error)
}

// AddParams references a catalog position; Qty below 1 is treated as 1.
type AddParams struct {
	Category     string
	Subsection   string
	ItemIndex    int
	VariantIndex int
	Qty          int
}

// UpdateParams changes one line's quantity. Action "inc"/"dec" adjusts the
// current qty by one; otherwise Qty is taken as the new absolute value.
// The result is clamped at zero, and zero removes the line.
type UpdateParams struct {
	Index  int
	Qty    int
	Action string
}

// View is what every cart operation hands back for rendering: the lines,
// the badge count, the subtotal and the freshly evaluated promo state.
type View struct {
	Lines    []Line            `json:"lines"`
	Count    int               `json:"count"`
	Subtotal float64           `json:"subtotal"`
	Promo    promo.Application `json:"promo"`
}

type service struct {
	store  Store
	menu   menu.Service
	promos promo.Service
}

func NewService(store Store, menuSvc menu.Service, promoSvc promo.Service) Service {
	return &service{store: store, menu: menuSvc, promos: promoSvc}
}

// View re-evaluates the stored promo code against the current subtotal and
// evicts it when it is no longer retainable.
func (s *service) View(ctx context.Context, sessionID string) (*View, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, sessionID, st)
}

func (s *service) Count(ctx context.Context, sessionID string) (int, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return st.Count(), nil
}

func (s *service) Add(ctx context.Context, sessionID string, p AddParams) (*View, error) {
	sel, err := s.menu.Resolve(ctx, menu.Ref{
		Category:     p.Category,
		Subsection:   p.Subsection,
		ItemIndex:    p.ItemIndex,
		VariantIndex: p.VariantIndex,
	})
	if err != nil {
		return nil, err
	}

	qty := p.Qty
	if qty < 1 {
		qty = 1
	}

	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	line := Line{
		Category:  p.Category,
		Subname:   p.Subsection,
		Name:      sel.Name,
		Variant:   sel.VariantLabel,
		UnitPrice: sel.UnitPrice,
		Qty:       qty,
	}

	merged := false
	for i := range st.Lines {
		if st.Lines[i].SameKey(line) {
			st.Lines[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		st.Lines = append(st.Lines, line)
	}

	return s.finish(ctx, sessionID, st)
}

func (s *service) UpdateQty(ctx context.Context, sessionID string, p UpdateParams) (*View, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if p.Index < 0 || p.Index >= len(st.Lines) {
		return nil, ErrLineNotFound
	}

	newQty := p.Qty
	switch p.Action {
	case "inc":
		newQty = st.Lines[p.Index].Qty + 1
	case "dec":
		newQty = st.Lines[p.Index].Qty - 1
	}
	if newQty < 0 {
		newQty = 0
	}

	if newQty == 0 {
		st.Lines = append(st.Lines[:p.Index], st.Lines[p.Index+1:]...)
	} else {
		st.Lines[p.Index].Qty = newQty
	}

	return s.finish(ctx, sessionID, st)
}

func (s *service) Remove(ctx context.Context, sessionID string, index int) (*View, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(st.Lines) {
		return nil, ErrLineNotFound
	}
	st.Lines = append(st.Lines[:index], st.Lines[index+1:]...)
	return s.finish(ctx, sessionID, st)
}

// Clear empties the cart. The promo code is cart-scoped and goes with it.
func (s *service) Clear(ctx context.Context, sessionID string) (*View, error) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	return &View{Lines: []Line{}, Promo: promo.Application{Status: promo.StatusNone}}, nil
}

func (s *service) ApplyPromo(ctx context.Context, sessionID, code string) (*View, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	st.PromoCode = promo.Normalize(code)
	return s.finish(ctx, sessionID, st)
}

func (s *service) ClearPromo(ctx context.Context, sessionID string) (*View, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	st.PromoCode = ""
	return s.finish(ctx, sessionID, st)
}

// finish applies the cart-scoped promo rules to the mutated state, persists
// it and builds the view. An empty cart always drops the stored code; a
// non-retained status (invalid, inactive, expired, limit) evicts it too.
func (s *service) finish(ctx context.Context, sessionID string, st State) (*View, error) {
	if st.Empty() {
		st.PromoCode = ""
	}

	app := promo.Application{Status: promo.StatusNone}
	if st.PromoCode != "" {
		app = s.promos.Evaluate(ctx, st.PromoCode, st.Subtotal())
		if !app.Status.Retained() {
			st.PromoCode = ""
		}
	}

	if err := s.store.Put(ctx, sessionID, st); err != nil {
		return nil, err
	}

	lines := st.Lines
	if lines == nil {
		lines = []Line{}
	}
	return &View{
		Lines:    lines,
		Count:    st.Count(),
		Subtotal: st.Subtotal(),
		Promo:    app,
	}, nil
}
