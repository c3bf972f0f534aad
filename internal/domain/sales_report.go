package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResolvedPeriod holds inclusive day boundaries at local midnight.
// When Bounded is false the report is not filtered by date at all.
type ResolvedPeriod struct {
	Start   time.Time
	End     time.Time
	Bounded bool
}

// Until returns the exclusive upper instant of the period (midnight after End)
func (p ResolvedPeriod) Until() time.Time {
	return p.End.AddDate(0, 0, 1)
}

// LineItem is one product entry of an order as read from the order store
type LineItem struct {
	OrderID      int64
	ItemID       int64
	ProductID    int64
	VariationID  int64
	Quantity     int64
	LineSubtotal decimal.Decimal
	LineTotal    decimal.Decimal
}

// LineItemFilter is pushed down to the order store.
// ProductIDs nil means no product restriction.
type LineItemFilter struct {
	Statuses         []OrderStatus
	From             *time.Time
	Until            *time.Time
	ProductIDs       []int64
	ExcludeFreeLines bool
}

// AggregateRow sums every matching line item of one product
type AggregateRow struct {
	ProductID             int64
	VariationID           int64
	QuantitySum           int64
	GrossSum              decimal.Decimal
	GrossAfterDiscountSum decimal.Decimal
}

// Product carries the catalog data shown next to the aggregates
type Product struct {
	ID         int64
	SKU        string
	Name       string
	Categories []string
}

// ReportTable is the flat projection handed to the renderers
type ReportTable struct {
	Header []string
	Rows   [][]string
}
