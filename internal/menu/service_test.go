package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) (Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Menu), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, mn Menu) error {
	args := m.Called(ctx, mn)
	return args.Error(0)
}

func testMenu() Menu {
	flat := 18.0
	return Menu{
		"Beer": {Items: []Item{
			{Name: "Pale Ale", Price: &flat},
			{Name: "Lager", Variants: []Variant{
				{Label: "0.3l", Price: 12},
				{Label: "0.5l", Price: 16},
			}},
			{Name: "Mystery"},
		}},
		"Kitchen": {Subsections: map[string][]Item{
			"Snacks": {{Name: "Fries", Price: &flat}},
		}},
	}
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		ref     Ref
		want    *Selection
		wantErr error
	}{
		{
			name: "flat priced item",
			ref:  Ref{Category: "Beer", ItemIndex: 0, VariantIndex: -1},
			want: &Selection{Name: "Pale Ale", UnitPrice: 18},
		},
		{
			name: "variant priced item",
			ref:  Ref{Category: "Beer", ItemIndex: 1, VariantIndex: 1},
			want: &Selection{Name: "Lager", VariantLabel: "0.5l", UnitPrice: 16},
		},
		{
			name: "item inside a subsection",
			ref:  Ref{Category: "Kitchen", Subsection: "Snacks", ItemIndex: 0, VariantIndex: -1},
			want: &Selection{Name: "Fries", UnitPrice: 18},
		},
		{
			name:    "unknown category",
			ref:     Ref{Category: "Wine", ItemIndex: 0, VariantIndex: -1},
			wantErr: ErrCategoryNotFound,
		},
		{
			name:    "unknown subsection",
			ref:     Ref{Category: "Kitchen", Subsection: "Grill", ItemIndex: 0, VariantIndex: -1},
			wantErr: ErrSubsectionNotFound,
		},
		{
			name:    "item index out of range",
			ref:     Ref{Category: "Beer", ItemIndex: 9, VariantIndex: -1},
			wantErr: ErrItemNotFound,
		},
		{
			name:    "negative item index",
			ref:     Ref{Category: "Beer", ItemIndex: -1, VariantIndex: -1},
			wantErr: ErrItemNotFound,
		},
		{
			name:    "variant index out of range",
			ref:     Ref{Category: "Beer", ItemIndex: 1, VariantIndex: 5},
			wantErr: ErrVariantNotFound,
		},
		{
			name:    "flat price requested but absent",
			ref:     Ref{Category: "Beer", ItemIndex: 2, VariantIndex: -1},
			wantErr: ErrPriceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("Load", ctx).Return(testMenu(), nil).Once()
			svc := NewService(mockRepo)

			got, err := svc.Resolve(ctx, tt.ref)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Replace(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	m := testMenu()
	mockRepo.On("Save", ctx, m).Return(nil).Once()

	assert.NoError(t, svc.Replace(ctx, m))
	mockRepo.AssertExpectations(t)
}
