package repository

//go:generate mockgen -source=catalog.go -destination=mocks/catalog.go -package=mocks

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	productsTable          = "products p"
	productCategoriesTable = "product_categories pc"
)

// CatalogRepository answers the product taxonomy and per-product lookups of the report
type CatalogRepository interface {
	ProductIDsInCategories(ctx context.Context, categoryIDs []int64) ([]int64, error)
	GetProducts(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error)
}

type catalogRepository struct {
	conn postgres.Queryer
}

func NewCatalogRepository(conn postgres.Queryer) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) ProductIDsInCategories(ctx context.Context, categoryIDs []int64) ([]int64, error) {
	if len(categoryIDs) == 0 {
		return []int64{}, nil
	}

	query, args, err := squirrel.
		Select("DISTINCT pc.product_id").
		From(productCategoriesTable).
		Where(squirrel.Eq{"pc.category_id": categoryIDs}).
		OrderBy("pc.product_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "catalog: build category query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: execute category query")
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "catalog: scan product id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "catalog: iterate category rows")
	}

	return ids, nil
}

// GetProducts returns the catalog entries found for the given ids.
// Unknown ids are simply missing from the map.
func (r *catalogRepository) GetProducts(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}

	query, args, err := squirrel.
		Select("p.id", "COALESCE(p.sku, '')", "p.title").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "catalog: build product query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: execute product query")
	}
	defer rows.Close()

	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.SKU, &product.Name); err != nil {
			return nil, errors.Wrap(err, "catalog: scan product")
		}
		products[product.ID] = product
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "catalog: iterate product rows")
	}

	if err := r.attachCategories(ctx, products, productIDs); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *catalogRepository) attachCategories(ctx context.Context, products map[int64]domain.Product, productIDs []int64) error {
	query, args, err := squirrel.
		Select("pc.product_id", "c.name").
		From(productCategoriesTable).
		Join("categories c ON c.id = pc.category_id").
		Where(squirrel.Eq{"pc.product_id": productIDs}).
		OrderBy("pc.product_id ASC", "c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "catalog: build product categories query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "catalog: execute product categories query")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID int64
			name      string
		)
		if err := rows.Scan(&productID, &name); err != nil {
			return errors.Wrap(err, "catalog: scan product category")
		}

		product, ok := products[productID]
		if !ok {
			continue
		}
		product.Categories = append(product.Categories, name)
		products[productID] = product
	}

	return errors.Wrap(rows.Err(), "catalog: iterate product category rows")
}
