package menu

import "context"

// Service defines the read side of the catalog plus the admin replace op.
type Service interface {
	Get(ctx context.Context) (Menu, error)
	Replace(ctx context.Context, m Menu) error
	Resolve(ctx context.Context, ref Ref) (*Selection, error)
}

// Ref addresses one priced position inside the catalog. VariantIndex < 0
// selects the item's flat price.
type Ref struct {
	Category     string
	Subsection   string
	ItemIndex    int
	VariantIndex int
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (Menu, error) {
	return s.repo.Load(ctx)
}

func (s *service) Replace(ctx context.Context, m Menu) error {
	return s.repo.Save(ctx, m)
}

// Resolve maps a catalog reference to display name, variant label and unit
// price. It is a pure read: no side effects on the stored menu.
func (s *service) Resolve(ctx context.Context, ref Ref) (*Selection, error) {
	m, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	cat, ok := m[ref.Category]
	if !ok {
		return nil, ErrCategoryNotFound
	}

	items := cat.Items
	if cat.Sectioned() {
		items, ok = cat.Subsections[ref.Subsection]
		if !ok {
			return nil, ErrSubsectionNotFound
		}
	}

	if ref.ItemIndex < 0 || ref.ItemIndex >= len(items) {
		return nil, ErrItemNotFound
	}
	item := items[ref.ItemIndex]

	if ref.VariantIndex < 0 {
		if item.Price == nil {
			return nil, ErrPriceUnavailable
		}
		return &Selection{Name: item.Name, UnitPrice: *item.Price}, nil
	}

	if ref.VariantIndex >= len(item.Variants) {
		return nil, ErrVariantNotFound
	}
	v := item.Variants[ref.VariantIndex]
	return &Selection{Name: item.Name, VariantLabel: v.Label, UnitPrice: v.Price}, nil
}
