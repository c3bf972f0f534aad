package repository

//go:generate mockgen -source=order_line.go -destination=mocks/order_line.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	orderItemsTable = "order_items oi"

	lineItemType  = "line_item"
	shopOrderType = "shop_order"
)

// OrderLineRepository reads order line items. It never writes.
type OrderLineRepository interface {
	ListLineItems(ctx context.Context, filter domain.LineItemFilter) ([]domain.LineItem, error)
}

type orderLineRepository struct {
	conn postgres.Queryer
}

func NewOrderLineRepository(conn postgres.Queryer) OrderLineRepository {
	return &orderLineRepository{
		conn: conn,
	}
}

func (r *orderLineRepository) ListLineItems(ctx context.Context, filter domain.LineItemFilter) ([]domain.LineItem, error) {
	query, args, err := buildLineItemQuery(filter).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "order-lines: build query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "order-lines: execute query")
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var (
			item        domain.LineItem
			variationID sql.NullInt64
		)
		if err := rows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.ProductID,
			&variationID,
			&item.Quantity,
			&item.LineSubtotal,
			&item.LineTotal,
		); err != nil {
			return nil, errors.Wrap(err, "order-lines: scan line item")
		}
		item.VariationID = variationID.Int64
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "order-lines: iterate rows")
	}

	return items, nil
}

// buildLineItemQuery keeps the store's natural order (order date, then item id)
// so callers can rely on first-seen product order.
func buildLineItemQuery(filter domain.LineItemFilter) squirrel.SelectBuilder {
	statuses := make([]string, 0, len(filter.Statuses))
	for _, status := range filter.Statuses {
		statuses = append(statuses, string(status))
	}

	builder := squirrel.
		Select(
			"oi.id",
			"oi.order_id",
			"oi.product_id",
			"oi.variation_id",
			"oi.quantity",
			"oi.line_subtotal",
			"oi.line_total",
		).
		From(orderItemsTable).
		Join("orders o ON o.id = oi.order_id").
		Where(squirrel.Eq{"oi.item_type": lineItemType}).
		Where(squirrel.Eq{"o.order_type": shopOrderType}).
		Where(squirrel.Eq{"o.status": statuses}).
		OrderBy("o.date_created ASC", "oi.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"o.date_created": *filter.From})
	}
	if filter.Until != nil {
		builder = builder.Where(squirrel.Lt{"o.date_created": *filter.Until})
	}
	if filter.ProductIDs != nil {
		builder = builder.Where(squirrel.Eq{"oi.product_id": filter.ProductIDs})
	}
	if filter.ExcludeFreeLines {
		builder = builder.Where(squirrel.NotEq{"oi.line_total": 0})
	}

	return builder
}
