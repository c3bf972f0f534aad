package reporting

import (
	"context"
	"sort"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// ProductPredicate restricts aggregation to a set of products.
// With All set no product restriction applies; otherwise only IDs match,
// and an empty IDs set matches nothing.
type ProductPredicate struct {
	All bool
	IDs map[int64]struct{}
}

func AllProducts() ProductPredicate {
	return ProductPredicate{All: true}
}

func ProductSet(ids []int64) ProductPredicate {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return ProductPredicate{IDs: set}
}

func (p ProductPredicate) Match(productID int64) bool {
	if p.All {
		return true
	}
	_, ok := p.IDs[productID]
	return ok
}

// IsEmpty reports whether no product can match
func (p ProductPredicate) IsEmpty() bool {
	return !p.All && len(p.IDs) == 0
}

// ProductIDs returns the sorted id list to push down to the store, or nil when unrestricted
func (p ProductPredicate) ProductIDs() []int64 {
	if p.All {
		return nil
	}

	ids := make([]int64, 0, len(p.IDs))
	for id := range p.IDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type ScopeBuilder struct {
	catalog repository.CatalogRepository
}

func NewScopeBuilder(catalog repository.CatalogRepository) *ScopeBuilder {
	return &ScopeBuilder{
		catalog: catalog,
	}
}

// Build resolves the product scope into a predicate. Category scopes are
// expanded through the catalog; an empty selection never means "all".
func (b *ScopeBuilder) Build(ctx context.Context, scope domain.ProductScope) (ProductPredicate, error) {
	switch scope.Mode {
	case domain.ScopeCategories:
		if len(scope.CategoryIDs) == 0 {
			return ProductSet(nil), nil
		}

		ids, err := b.catalog.ProductIDsInCategories(ctx, scope.CategoryIDs)
		if err != nil {
			return ProductPredicate{}, NewReportError(ErrStoreUnavailable, err.Error())
		}
		return ProductSet(ids), nil
	case domain.ScopeIDs:
		return ProductSet(scope.ProductIDs), nil
	default:
		return AllProducts(), nil
	}
}
