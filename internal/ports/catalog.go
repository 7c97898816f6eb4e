package ports

import (
	"context"
	"delivery-thermal-service/internal/domain"
)

// Port: read-only lookup of products, packagings and transports.
// Unknown ids return a *domain.NotFoundError.
type Catalog interface {
	GetProduct(ctx context.Context, id int) (domain.ProductSpec, error)
	GetPackaging(ctx context.Context, id int) (domain.PackagingSpec, error)
	GetTransport(ctx context.Context, id int) (domain.TransportSpec, error)

	AllProducts(ctx context.Context) ([]domain.ProductSpec, error)
	AllPackagings(ctx context.Context) ([]domain.PackagingSpec, error)
	AllTransports(ctx context.Context) ([]domain.TransportSpec, error)
}
