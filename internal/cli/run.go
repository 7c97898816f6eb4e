package cli

import (
	"delivery-thermal-service/internal/adapters/distance"
	"delivery-thermal-service/internal/api/dto"
	"delivery-thermal-service/internal/config"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/report"
	"delivery-thermal-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type deliveryFlags struct {
	productID   int
	packagingID int
	transportID int
	distanceKm  float64
}

func (f *deliveryFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.productID, "product", "p", 1, "product id")
	cmd.Flags().IntVarP(&f.packagingID, "packaging", "k", 2, "packaging id")
	cmd.Flags().IntVarP(&f.transportID, "transport", "t", 1, "transport id")
	cmd.Flags().Float64VarP(&f.distanceKm, "distance", "d", 5, "distance in km")
}

// NewRunCmd creates the run command, which simulates one delivery.
func NewRunCmd(root *rootOptions) *cobra.Command {
	var (
		flags       deliveryFlags
		output      string
		origin      string
		destination string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a single delivery",
		Example: `  # Coffee in a standard container, 5 km by motorcycle
  thermosim run --product 1 --packaging 2 --transport 1 --distance 5

  # Ice cream on foot, JSON output
  thermosim run -p 17 -k 1 -t 4 -d 5 -o json

  # Resolve the distance from addresses (needs ORS_API_KEY)
  thermosim run -p 12 --origin "Cocina Central, CDMX" --destination "Av. Reforma 222, CDMX"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unsupported output %q (want text or json)", output)
			}
			if flags.distanceKm < 0 {
				return errors.New("distance must be >= 0")
			}

			ctx := cmd.Context()
			cat, cleanup, err := root.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sim := services.NewSimulator(cat, nil)

			var rep *domain.Report
			if strings.TrimSpace(origin) != "" || strings.TrimSpace(destination) != "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				provider, err := distance.NewORSDistanceProvider(distance.ORSConfig{
					APIKey:      cfg.ORSAPIKey,
					BaseURL:     cfg.ORSBaseURL,
					Country:     cfg.ORSCountry,
					MaxAttempts: cfg.ORSAttempts,
				}, nil)
				if err != nil {
					return fmt.Errorf("address lookup: %w", err)
				}
				rep, err = sim.RunRoute(ctx, services.RouteRequest{
					ProductID:   flags.productID,
					PackagingID: flags.packagingID,
					TransportID: flags.transportID,
					Origin:      origin,
					Destination: destination,
				}, provider)
				if err != nil {
					return err
				}
			} else {
				rep, err = sim.Run(ctx, flags.productID, flags.packagingID, flags.transportID, flags.distanceKm)
				if err != nil {
					return err
				}
			}

			return writeReport(cmd.OutOrStdout(), rep, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	cmd.Flags().StringVar(&origin, "origin", "", "pickup address; replaces --distance")
	cmd.Flags().StringVar(&destination, "destination", "", "drop-off address; replaces --distance")

	return cmd
}

func writeReport(w io.Writer, rep *domain.Report, output string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromReport(rep))
	}
	return report.WriteText(w, rep)
}
