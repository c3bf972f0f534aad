package reporting

import (
	"context"
	"sort"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type AggregateQuery struct {
	Period           domain.ResolvedPeriod
	Statuses         []domain.OrderStatus
	Scope            ProductPredicate
	ExcludeFreeLines bool
	SortField        domain.SortField
	SortDirection    domain.SortDirection
}

// Aggregator sums order line items per product
type Aggregator struct {
	orderLines repository.OrderLineRepository
}

func NewAggregator(orderLines repository.OrderLineRepository) *Aggregator {
	return &Aggregator{
		orderLines: orderLines,
	}
}

// Aggregate returns one row per product with matching line items, sorted by the
// requested field. Products that tie keep the order in which the store returned them.
func (a *Aggregator) Aggregate(ctx context.Context, query AggregateQuery) ([]domain.AggregateRow, error) {
	if query.Scope.IsEmpty() {
		return []domain.AggregateRow{}, nil
	}

	filter := domain.LineItemFilter{
		Statuses:         query.Statuses,
		ProductIDs:       query.Scope.ProductIDs(),
		ExcludeFreeLines: query.ExcludeFreeLines,
	}
	if query.Period.Bounded {
		from, until := query.Period.Start, query.Period.Until()
		filter.From = &from
		filter.Until = &until
	}

	items, err := a.orderLines.ListLineItems(ctx, filter)
	if err != nil {
		return nil, NewReportError(ErrStoreUnavailable, err.Error())
	}

	rows := groupByProduct(items, query.Scope, query.ExcludeFreeLines)
	sortRows(rows, query.SortField, query.SortDirection)

	return rows, nil
}

func groupByProduct(items []domain.LineItem, scope ProductPredicate, excludeFree bool) []domain.AggregateRow {
	rows := make([]domain.AggregateRow, 0)
	index := make(map[int64]int)

	for _, item := range items {
		if !scope.Match(item.ProductID) {
			continue
		}
		if excludeFree && item.LineTotal.IsZero() {
			continue
		}

		i, seen := index[item.ProductID]
		if !seen {
			i = len(rows)
			index[item.ProductID] = i
			rows = append(rows, domain.AggregateRow{ProductID: item.ProductID})
		}

		row := &rows[i]
		if row.VariationID == 0 {
			row.VariationID = item.VariationID
		}
		row.QuantitySum += item.Quantity
		row.GrossSum = row.GrossSum.Add(item.LineSubtotal)
		row.GrossAfterDiscountSum = row.GrossAfterDiscountSum.Add(item.LineTotal)
	}

	return rows
}

func sortRows(rows []domain.AggregateRow, field domain.SortField, direction domain.SortDirection) {
	compare := compareBy(field)
	descending := direction == domain.SortDescending

	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return compare(rows[j], rows[i]) < 0
		}
		return compare(rows[i], rows[j]) < 0
	})
}

func compareBy(field domain.SortField) func(a, b domain.AggregateRow) int {
	switch field {
	case domain.SortByProductID:
		return func(a, b domain.AggregateRow) int { return compareInt(a.ProductID, b.ProductID) }
	case domain.SortByGross:
		return func(a, b domain.AggregateRow) int { return a.GrossSum.Cmp(b.GrossSum) }
	case domain.SortByGrossAfterDiscount:
		return func(a, b domain.AggregateRow) int { return a.GrossAfterDiscountSum.Cmp(b.GrossAfterDiscountSum) }
	default:
		return func(a, b domain.AggregateRow) int { return compareInt(a.QuantitySum, b.QuantitySum) }
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
