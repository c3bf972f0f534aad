package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func lineItem(itemID, productID, quantity int64, subtotal, total string) domain.LineItem {
	return domain.LineItem{
		OrderID:      itemID * 10,
		ItemID:       itemID,
		ProductID:    productID,
		Quantity:     quantity,
		LineSubtotal: money(subtotal),
		LineTotal:    money(total),
	}
}

func productIDs(rows []domain.AggregateRow) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	return ids
}

func TestAggregator_Aggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderLines := mocks.NewMockOrderLineRepository(ctrl)
	aggregator := NewAggregator(mockOrderLines)

	january := domain.ResolvedPeriod{Start: date(2024, 1, 1), End: date(2024, 1, 31), Bounded: true}

	tests := []struct {
		name     string
		query    AggregateQuery
		setup    func()
		validate func(t *testing.T, rows []domain.AggregateRow, err error)
	}{
		{
			name: "sums the line items of one product",
			query: AggregateQuery{
				Period:        january,
				Statuses:      []domain.OrderStatus{domain.OrderStatusCompleted},
				Scope:         AllProducts(),
				SortField:     domain.SortByQuantity,
				SortDirection: domain.SortDescending,
			},
			setup: func() {
				from, until := date(2024, 1, 1), date(2024, 2, 1)
				mockOrderLines.EXPECT().
					ListLineItems(gomock.Any(), domain.LineItemFilter{
						Statuses: []domain.OrderStatus{domain.OrderStatusCompleted},
						From:     &from,
						Until:    &until,
					}).
					Return([]domain.LineItem{
						lineItem(1, 42, 2, "10.00", "9.00"),
						lineItem(2, 42, 3, "15.00", "15.00"),
					}, nil)
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, int64(42), rows[0].ProductID)
				assert.Equal(t, int64(5), rows[0].QuantitySum)
				assert.True(t, money("25.00").Equal(rows[0].GrossSum))
				assert.True(t, money("24.00").Equal(rows[0].GrossAfterDiscountSum))
			},
		},
		{
			name: "drops free lines when asked",
			query: AggregateQuery{
				Period:           january,
				Statuses:         []domain.OrderStatus{domain.OrderStatusCompleted},
				Scope:            AllProducts(),
				ExcludeFreeLines: true,
				SortField:        domain.SortByQuantity,
				SortDirection:    domain.SortDescending,
			},
			setup: func() {
				mockOrderLines.EXPECT().
					ListLineItems(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter domain.LineItemFilter) ([]domain.LineItem, error) {
						assert.True(t, filter.ExcludeFreeLines)
						return []domain.LineItem{lineItem(1, 7, 1, "0.00", "0.00")}, nil
					})
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				require.NoError(t, err)
				assert.Empty(t, rows)
			},
		},
		{
			name: "keeps free lines by default",
			query: AggregateQuery{
				Period:        january,
				Statuses:      []domain.OrderStatus{domain.OrderStatusCompleted},
				Scope:         AllProducts(),
				SortField:     domain.SortByQuantity,
				SortDirection: domain.SortDescending,
			},
			setup: func() {
				mockOrderLines.EXPECT().
					ListLineItems(gomock.Any(), gomock.Any()).
					Return([]domain.LineItem{lineItem(1, 7, 1, "5.00", "0.00")}, nil)
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, int64(7), rows[0].ProductID)
			},
		},
		{
			name: "unbounded period sends no date filter",
			query: AggregateQuery{
				Statuses:      []domain.OrderStatus{domain.OrderStatusProcessing},
				Scope:         ProductSet([]int64{9, 3}),
				SortField:     domain.SortByProductID,
				SortDirection: domain.SortAscending,
			},
			setup: func() {
				mockOrderLines.EXPECT().
					ListLineItems(gomock.Any(), domain.LineItemFilter{
						Statuses:   []domain.OrderStatus{domain.OrderStatusProcessing},
						ProductIDs: []int64{3, 9},
					}).
					Return([]domain.LineItem{
						lineItem(1, 9, 1, "1.00", "1.00"),
						lineItem(2, 5, 1, "1.00", "1.00"),
						lineItem(3, 3, 1, "1.00", "1.00"),
					}, nil)
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				require.NoError(t, err)
				assert.Equal(t, []int64{3, 9}, productIDs(rows))
			},
		},
		{
			name: "empty id scope yields no rows without querying",
			query: AggregateQuery{
				Period:   january,
				Statuses: []domain.OrderStatus{domain.OrderStatusCompleted},
				Scope:    ProductSet([]int64{}),
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				require.NoError(t, err)
				assert.NotNil(t, rows)
				assert.Empty(t, rows)
			},
		},
		{
			name: "store failure surfaces as store unavailable",
			query: AggregateQuery{
				Period:   january,
				Statuses: []domain.OrderStatus{domain.OrderStatusCompleted},
				Scope:    AllProducts(),
			},
			setup: func() {
				mockOrderLines.EXPECT().
					ListLineItems(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("dial tcp: connection refused"))
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				assert.Nil(t, rows)
				assert.ErrorIs(t, err, ErrStoreUnavailable)
			},
		},
		{
			name: "negative adjustments are not clamped",
			query: AggregateQuery{
				Period:        january,
				Statuses:      []domain.OrderStatus{domain.OrderStatusRefunded},
				Scope:         AllProducts(),
				SortField:     domain.SortByGross,
				SortDirection: domain.SortDescending,
			},
			setup: func() {
				mockOrderLines.EXPECT().
					ListLineItems(gomock.Any(), gomock.Any()).
					Return([]domain.LineItem{
						lineItem(1, 1, 1, "10.00", "10.00"),
						lineItem(2, 1, -2, "-30.00", "-30.00"),
					}, nil)
			},
			validate: func(t *testing.T, rows []domain.AggregateRow, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, int64(-1), rows[0].QuantitySum)
				assert.True(t, money("-20.00").Equal(rows[0].GrossSum))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			rows, err := aggregator.Aggregate(context.Background(), tt.query)
			tt.validate(t, rows, err)
		})
	}
}

func TestAggregator_StableSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderLines := mocks.NewMockOrderLineRepository(ctrl)
	aggregator := NewAggregator(mockOrderLines)

	// products 30, 10 and 20 tie on quantity and appear in that order
	items := []domain.LineItem{
		lineItem(1, 30, 2, "5.00", "5.00"),
		lineItem(2, 10, 2, "5.00", "5.00"),
		lineItem(3, 50, 9, "1.00", "1.00"),
		lineItem(4, 20, 1, "5.00", "5.00"),
		lineItem(5, 20, 1, "5.00", "5.00"),
		lineItem(6, 40, 1, "99.00", "99.00"),
	}

	tests := []struct {
		name      string
		field     domain.SortField
		direction domain.SortDirection
		want      []int64
	}{
		{name: "quantity descending", field: domain.SortByQuantity, direction: domain.SortDescending, want: []int64{50, 30, 10, 20, 40}},
		{name: "quantity ascending", field: domain.SortByQuantity, direction: domain.SortAscending, want: []int64{40, 30, 10, 20, 50}},
		{name: "gross descending", field: domain.SortByGross, direction: domain.SortDescending, want: []int64{40, 20, 30, 10, 50}},
		{name: "gross ascending", field: domain.SortByGross, direction: domain.SortAscending, want: []int64{50, 30, 10, 20, 40}},
		{name: "gross after discount descending", field: domain.SortByGrossAfterDiscount, direction: domain.SortDescending, want: []int64{40, 20, 30, 10, 50}},
		{name: "product id ascending", field: domain.SortByProductID, direction: domain.SortAscending, want: []int64{10, 20, 30, 40, 50}},
		{name: "product id descending", field: domain.SortByProductID, direction: domain.SortDescending, want: []int64{50, 40, 30, 20, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderLines.EXPECT().ListLineItems(gomock.Any(), gomock.Any()).Return(items, nil)

			rows, err := aggregator.Aggregate(context.Background(), AggregateQuery{
				Statuses:      []domain.OrderStatus{domain.OrderStatusCompleted},
				Scope:         AllProducts(),
				SortField:     tt.field,
				SortDirection: tt.direction,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(rows))
		})
	}
}

func TestAggregator_VariationFromFirstVariantLine(t *testing.T) {
	items := []domain.LineItem{
		lineItem(1, 5, 1, "1.00", "1.00"),
		{ItemID: 2, ProductID: 5, VariationID: 51, Quantity: 1, LineSubtotal: money("1.00"), LineTotal: money("1.00")},
		{ItemID: 3, ProductID: 5, VariationID: 52, Quantity: 1, LineSubtotal: money("1.00"), LineTotal: money("1.00")},
	}

	rows := groupByProduct(items, AllProducts(), false)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(51), rows[0].VariationID)
	assert.Equal(t, int64(3), rows[0].QuantitySum)
}
