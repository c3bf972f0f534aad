package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestScopeBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogRepository(ctrl)
	builder := NewScopeBuilder(mockCatalog)

	tests := []struct {
		name     string
		scope    domain.ProductScope
		setup    func()
		validate func(t *testing.T, got ProductPredicate, err error)
	}{
		{
			name:  "all products is unrestricted",
			scope: domain.ProductScope{Mode: domain.ScopeAll},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				require.NoError(t, err)
				assert.True(t, got.All)
				assert.False(t, got.IsEmpty())
				assert.True(t, got.Match(123456))
				assert.Nil(t, got.ProductIDs())
			},
		},
		{
			name:  "empty category set matches nothing without a lookup",
			scope: domain.ProductScope{Mode: domain.ScopeCategories, CategoryIDs: []int64{}},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				require.NoError(t, err)
				assert.True(t, got.IsEmpty())
				assert.False(t, got.Match(1))
			},
		},
		{
			name:  "categories expand to the union of their products",
			scope: domain.ProductScope{Mode: domain.ScopeCategories, CategoryIDs: []int64{3, 9}},
			setup: func() {
				mockCatalog.EXPECT().
					ProductIDsInCategories(gomock.Any(), []int64{3, 9}).
					Return([]int64{12, 10, 11}, nil)
			},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				require.NoError(t, err)
				assert.False(t, got.All)
				assert.True(t, got.Match(10))
				assert.False(t, got.Match(13))
				assert.Equal(t, []int64{10, 11, 12}, got.ProductIDs())
			},
		},
		{
			name:  "categories without products match nothing",
			scope: domain.ProductScope{Mode: domain.ScopeCategories, CategoryIDs: []int64{5}},
			setup: func() {
				mockCatalog.EXPECT().
					ProductIDsInCategories(gomock.Any(), []int64{5}).
					Return([]int64{}, nil)
			},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				require.NoError(t, err)
				assert.True(t, got.IsEmpty())
			},
		},
		{
			name:  "catalog failure surfaces as store unavailable",
			scope: domain.ProductScope{Mode: domain.ScopeCategories, CategoryIDs: []int64{5}},
			setup: func() {
				mockCatalog.EXPECT().
					ProductIDsInCategories(gomock.Any(), []int64{5}).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				assert.ErrorIs(t, err, ErrStoreUnavailable)
			},
		},
		{
			name:  "explicit ids keep duplicates harmlessly",
			scope: domain.ProductScope{Mode: domain.ScopeIDs, ProductIDs: []int64{7, 42, 7}},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				require.NoError(t, err)
				assert.True(t, got.Match(7))
				assert.True(t, got.Match(42))
				assert.False(t, got.Match(8))
				assert.Equal(t, []int64{7, 42}, got.ProductIDs())
			},
		},
		{
			name:  "empty id list matches nothing",
			scope: domain.ProductScope{Mode: domain.ScopeIDs},
			validate: func(t *testing.T, got ProductPredicate, err error) {
				require.NoError(t, err)
				assert.True(t, got.IsEmpty())
				assert.Equal(t, []int64{}, got.ProductIDs())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			got, err := builder.Build(context.Background(), tt.scope)
			tt.validate(t, got, err)
		})
	}
}
