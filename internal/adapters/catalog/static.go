package catalog

import (
	"cmp"
	"context"
	"delivery-thermal-service/internal/domain"
	"maps"
	"slices"
)

// StaticCatalog is an immutable in-memory catalog. It is safe for
// concurrent use.
type StaticCatalog struct {
	products   map[int]domain.ProductSpec
	packagings map[int]domain.PackagingSpec
	transports map[int]domain.TransportSpec
}

func NewStaticCatalog(
	products []domain.ProductSpec,
	packagings []domain.PackagingSpec,
	transports []domain.TransportSpec,
) *StaticCatalog {
	c := &StaticCatalog{
		products:   make(map[int]domain.ProductSpec, len(products)),
		packagings: make(map[int]domain.PackagingSpec, len(packagings)),
		transports: make(map[int]domain.TransportSpec, len(transports)),
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	for _, p := range packagings {
		c.packagings[p.ID] = p
	}
	for _, t := range transports {
		c.transports[t.ID] = t
	}
	return c
}

// Default returns the built-in catalog.
func Default() *StaticCatalog {
	return NewStaticCatalog(DefaultProducts(), DefaultPackagings(), DefaultTransports())
}

func (c *StaticCatalog) GetProduct(_ context.Context, id int) (domain.ProductSpec, error) {
	p, ok := c.products[id]
	if !ok {
		return domain.ProductSpec{}, &domain.NotFoundError{Kind: "product", ID: id}
	}
	return p, nil
}

func (c *StaticCatalog) GetPackaging(_ context.Context, id int) (domain.PackagingSpec, error) {
	p, ok := c.packagings[id]
	if !ok {
		return domain.PackagingSpec{}, &domain.NotFoundError{Kind: "packaging", ID: id}
	}
	return p, nil
}

func (c *StaticCatalog) GetTransport(_ context.Context, id int) (domain.TransportSpec, error) {
	t, ok := c.transports[id]
	if !ok {
		return domain.TransportSpec{}, &domain.NotFoundError{Kind: "transport", ID: id}
	}
	return t, nil
}

func (c *StaticCatalog) AllProducts(context.Context) ([]domain.ProductSpec, error) {
	return sortedByID(c.products, func(p domain.ProductSpec) int { return p.ID }), nil
}

func (c *StaticCatalog) AllPackagings(context.Context) ([]domain.PackagingSpec, error) {
	return sortedByID(c.packagings, func(p domain.PackagingSpec) int { return p.ID }), nil
}

func (c *StaticCatalog) AllTransports(context.Context) ([]domain.TransportSpec, error) {
	return sortedByID(c.transports, func(t domain.TransportSpec) int { return t.ID }), nil
}

func sortedByID[T any](m map[int]T, id func(T) int) []T {
	out := slices.Collect(maps.Values(m))
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}
