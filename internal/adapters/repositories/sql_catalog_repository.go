package repositories

import (
	"context"
	"database/sql"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/platform/db"
	"errors"
	"fmt"
)

// SQL-backed implementation of the Catalog port (sqlite or postgres).
type SQLCatalogRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSQLCatalogRepository(conn *sql.DB, driver string) *SQLCatalogRepository {
	return &SQLCatalogRepository{DB: conn, Driver: driver}
}

const (
	productColumns   = `product_id, name, category, volume_l, mass_kg, initial_temp_c, melt_sensitive`
	packagingColumns = `packaging_id, name, u_value`
	transportColumns = `transport_id, name, speed_kmh, mode`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.ProductSpec, error) {
	var (
		p        domain.ProductSpec
		category string
		volume   sql.NullFloat64
		mass     sql.NullFloat64
	)
	if err := row.Scan(&p.ID, &p.Name, &category, &volume, &mass, &p.InitialTempC, &p.MeltSensitive); err != nil {
		return domain.ProductSpec{}, err
	}

	c, err := domain.ParseCategory(category)
	if err != nil {
		return domain.ProductSpec{}, fmt.Errorf("product %d: %w", p.ID, err)
	}
	p.Category = c
	if volume.Valid {
		p.VolumeL = &volume.Float64
	}
	if mass.Valid {
		p.MassKg = &mass.Float64
	}
	return p, nil
}

func scanPackaging(row rowScanner) (domain.PackagingSpec, error) {
	var p domain.PackagingSpec
	err := row.Scan(&p.ID, &p.Name, &p.UValue)
	return p, err
}

func scanTransport(row rowScanner) (domain.TransportSpec, error) {
	var (
		t    domain.TransportSpec
		mode string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.SpeedKmh, &mode); err != nil {
		return domain.TransportSpec{}, err
	}
	m, err := domain.ParseTransportMode(mode)
	if err != nil {
		return domain.TransportSpec{}, fmt.Errorf("transport %d: %w", t.ID, err)
	}
	t.Mode = m
	return t, nil
}

func (s *SQLCatalogRepository) GetProduct(ctx context.Context, id int) (domain.ProductSpec, error) {
	return getOne(ctx, s, "product",
		`SELECT `+productColumns+` FROM products WHERE product_id = ?;`, id, scanProduct)
}

func (s *SQLCatalogRepository) GetPackaging(ctx context.Context, id int) (domain.PackagingSpec, error) {
	return getOne(ctx, s, "packaging",
		`SELECT `+packagingColumns+` FROM packagings WHERE packaging_id = ?;`, id, scanPackaging)
}

func (s *SQLCatalogRepository) GetTransport(ctx context.Context, id int) (domain.TransportSpec, error) {
	return getOne(ctx, s, "transport",
		`SELECT `+transportColumns+` FROM transports WHERE transport_id = ?;`, id, scanTransport)
}

// Return all products ordered by id.
func (s *SQLCatalogRepository) AllProducts(ctx context.Context) ([]domain.ProductSpec, error) {
	return list(ctx, s, "products",
		`SELECT `+productColumns+` FROM products ORDER BY product_id;`, scanProduct)
}

func (s *SQLCatalogRepository) AllPackagings(ctx context.Context) ([]domain.PackagingSpec, error) {
	return list(ctx, s, "packagings",
		`SELECT `+packagingColumns+` FROM packagings ORDER BY packaging_id;`, scanPackaging)
}

func (s *SQLCatalogRepository) AllTransports(ctx context.Context) ([]domain.TransportSpec, error) {
	return list(ctx, s, "transports",
		`SELECT `+transportColumns+` FROM transports ORDER BY transport_id;`, scanTransport)
}

func getOne[T any](
	ctx context.Context,
	s *SQLCatalogRepository,
	kind string,
	query string,
	id int,
	scan func(rowScanner) (T, error),
) (T, error) {
	var zero T
	if s.DB == nil {
		return zero, errors.New("sql catalog repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, db.Rebind(s.Driver, query), id)
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, &domain.NotFoundError{Kind: kind, ID: id}
	}
	if err != nil {
		return zero, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return v, nil
}

func list[T any](
	ctx context.Context,
	s *SQLCatalogRepository,
	table string,
	query string,
	scan func(rowScanner) (T, error),
) ([]T, error) {
	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, db.Rebind(s.Driver, query))
	if err != nil {
		return nil, fmt.Errorf("list %s: query %s table: %w", table, table, err)
	}
	defer rows.Close()

	out := make([]T, 0, 16)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s: scan row: %w", table, err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: row iteration: %w", table, err)
	}

	return out, nil
}
