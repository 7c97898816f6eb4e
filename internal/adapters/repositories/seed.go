package repositories

import (
	"context"
	"database/sql"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/platform/db"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Product names that melt in transit and are expected to carry
// melt_sensitive.
var meltSensitiveNames = []string{"helado", "smoothie"}

type ProductSeed struct {
	ProductID     int      `json:"product_id" yaml:"product_id"`
	Name          string   `json:"name" yaml:"name"`
	Category      string   `json:"category" yaml:"category"`
	VolumeL       *float64 `json:"volume_l,omitempty" yaml:"volume_l,omitempty"`
	MassKg        *float64 `json:"mass_kg,omitempty" yaml:"mass_kg,omitempty"`
	InitialTempC  float64  `json:"initial_temp_c" yaml:"initial_temp_c"`
	MeltSensitive bool     `json:"melt_sensitive,omitempty" yaml:"melt_sensitive,omitempty"`
}

type PackagingSeed struct {
	PackagingID int     `json:"packaging_id" yaml:"packaging_id"`
	Name        string  `json:"name" yaml:"name"`
	UValue      float64 `json:"u_value" yaml:"u_value"`
}

type TransportSeed struct {
	TransportID int     `json:"transport_id" yaml:"transport_id"`
	Name        string  `json:"name" yaml:"name"`
	SpeedKmh    float64 `json:"speed_kmh" yaml:"speed_kmh"`
	Mode        string  `json:"mode" yaml:"mode"`
}

// Catalog tables as stored in a seed file.
type CatalogSeed struct {
	Products   []ProductSeed   `json:"products" yaml:"products"`
	Packagings []PackagingSeed `json:"packagings" yaml:"packagings"`
	Transports []TransportSeed `json:"transports" yaml:"transports"`
}

// LoadSeedFile parses a catalog seed. Files ending in .yaml or .yml are
// read as YAML, everything else as JSON.
func LoadSeedFile(path string) (CatalogSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return CatalogSeed{}, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var seed CatalogSeed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &seed); err != nil {
			return CatalogSeed{}, fmt.Errorf("load seed: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(bytes, &seed); err != nil {
			return CatalogSeed{}, fmt.Errorf("load seed: parse json: %w", err)
		}
	}

	return seed, nil
}

// SeedFromSpecs converts domain catalog entries into seed rows.
func SeedFromSpecs(
	products []domain.ProductSpec,
	packagings []domain.PackagingSpec,
	transports []domain.TransportSpec,
) CatalogSeed {
	var seed CatalogSeed
	for _, p := range products {
		seed.Products = append(seed.Products, ProductSeed{
			ProductID:     p.ID,
			Name:          p.Name,
			Category:      p.Category.String(),
			VolumeL:       p.VolumeL,
			MassKg:        p.MassKg,
			InitialTempC:  p.InitialTempC,
			MeltSensitive: p.MeltSensitive,
		})
	}
	for _, p := range packagings {
		seed.Packagings = append(seed.Packagings, PackagingSeed{PackagingID: p.ID, Name: p.Name, UValue: p.UValue})
	}
	for _, t := range transports {
		seed.Transports = append(seed.Transports, TransportSeed{
			TransportID: t.ID,
			Name:        t.Name,
			SpeedKmh:    t.SpeedKmh,
			Mode:        string(t.Mode),
		})
	}
	return seed
}

// Validate checks ids, names and enum values before anything is written.
func (s CatalogSeed) Validate() error {
	for i, p := range s.Products {
		if p.ProductID <= 0 {
			return fmt.Errorf("seed catalog: invalid product_id at index %d: %d", i+1, p.ProductID)
		}
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("seed catalog: product %d: name cannot be empty", p.ProductID)
		}
		if _, err := domain.ParseCategory(p.Category); err != nil {
			return fmt.Errorf("seed catalog: product %d: %w", p.ProductID, err)
		}
		if (p.VolumeL != nil && *p.VolumeL < 0) || (p.MassKg != nil && *p.MassKg < 0) {
			return fmt.Errorf("seed catalog: product %d: volume and mass must be >= 0", p.ProductID)
		}
	}
	for i, p := range s.Packagings {
		if p.PackagingID <= 0 {
			return fmt.Errorf("seed catalog: invalid packaging_id at index %d: %d", i+1, p.PackagingID)
		}
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("seed catalog: packaging %d: name cannot be empty", p.PackagingID)
		}
		if p.UValue < 0 {
			return fmt.Errorf("seed catalog: packaging %d: u_value must be >= 0", p.PackagingID)
		}
	}
	for i, t := range s.Transports {
		if t.TransportID <= 0 {
			return fmt.Errorf("seed catalog: invalid transport_id at index %d: %d", i+1, t.TransportID)
		}
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("seed catalog: transport %d: name cannot be empty", t.TransportID)
		}
		if t.SpeedKmh < 0 {
			return fmt.Errorf("seed catalog: transport %d: speed_kmh must be >= 0", t.TransportID)
		}
		if _, err := domain.ParseTransportMode(t.Mode); err != nil {
			return fmt.Errorf("seed catalog: transport %d: %w", t.TransportID, err)
		}
	}
	return nil
}

// Warnings lists suspicious but valid rows: products whose name marks them
// as melting in transit while melt_sensitive is unset, so they would skip
// the melt penalty.
func (s CatalogSeed) Warnings() []string {
	var out []string
	for _, p := range s.Products {
		if p.MeltSensitive {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(p.Name))
		for _, m := range meltSensitiveNames {
			if strings.Contains(name, m) {
				out = append(out, fmt.Sprintf("product %d (%s) looks melt-sensitive but melt_sensitive is false", p.ProductID, p.Name))
				break
			}
		}
	}
	return out
}

// SeedCatalog upserts every seed row in a single transaction.
func SeedCatalog(ctx context.Context, conn *sql.DB, driver string, seed CatalogSeed) error {
	if err := seed.Validate(); err != nil {
		return err
	}
	for _, w := range seed.Warnings() {
		log.Warn().Str("op", "seed catalog").Msg(w)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	productStmt, err := tx.PrepareContext(ctx, db.Rebind(driver, `
	INSERT INTO products (
		product_id, name, category, volume_l, mass_kg, initial_temp_c, melt_sensitive
	)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (product_id) DO UPDATE
	SET name = excluded.name,
		category = excluded.category,
		volume_l = excluded.volume_l,
		mass_kg = excluded.mass_kg,
		initial_temp_c = excluded.initial_temp_c,
		melt_sensitive = excluded.melt_sensitive;
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare product insert: %w", err)
	}
	defer productStmt.Close()

	for _, p := range seed.Products {
		if _, err := productStmt.ExecContext(ctx,
			p.ProductID, strings.TrimSpace(p.Name), p.Category, p.VolumeL, p.MassKg, p.InitialTempC, p.MeltSensitive,
		); err != nil {
			return fmt.Errorf("seed catalog: insert product_id=%d: %w", p.ProductID, err)
		}
	}

	packagingStmt, err := tx.PrepareContext(ctx, db.Rebind(driver, `
	INSERT INTO packagings (packaging_id, name, u_value)
	VALUES (?, ?, ?)
	ON CONFLICT (packaging_id) DO UPDATE
	SET name = excluded.name,
		u_value = excluded.u_value;
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare packaging insert: %w", err)
	}
	defer packagingStmt.Close()

	for _, p := range seed.Packagings {
		if _, err := packagingStmt.ExecContext(ctx, p.PackagingID, strings.TrimSpace(p.Name), p.UValue); err != nil {
			return fmt.Errorf("seed catalog: insert packaging_id=%d: %w", p.PackagingID, err)
		}
	}

	transportStmt, err := tx.PrepareContext(ctx, db.Rebind(driver, `
	INSERT INTO transports (transport_id, name, speed_kmh, mode)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (transport_id) DO UPDATE
	SET name = excluded.name,
		speed_kmh = excluded.speed_kmh,
		mode = excluded.mode;
	`))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare transport insert: %w", err)
	}
	defer transportStmt.Close()

	for _, t := range seed.Transports {
		if _, err := transportStmt.ExecContext(ctx, t.TransportID, strings.TrimSpace(t.Name), t.SpeedKmh, t.Mode); err != nil {
			return fmt.Errorf("seed catalog: insert transport_id=%d: %w", t.TransportID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
