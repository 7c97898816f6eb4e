package cli

import (
	"delivery-thermal-service/internal/report"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the catalog command, which lists every product,
// packaging and transport id.
func NewCatalogCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List products, packagings and transports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cat, cleanup, err := root.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			products, err := cat.AllProducts(ctx)
			if err != nil {
				return err
			}
			packagings, err := cat.AllPackagings(ctx)
			if err != nil {
				return err
			}
			transports, err := cat.AllTransports(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "PRODUCT\tNAME\tCATEGORY\tVOLUME\tMASS\tTEMP")
			for _, p := range products {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.0f°C\n",
					p.ID, p.Name, p.Category, optional(p.VolumeL, "L"), optional(p.MassKg, "kg"), p.InitialTempC)
			}
			fmt.Fprintln(tw)

			fmt.Fprintln(tw, "PACKAGING\tNAME\tU (W/m²K)")
			for _, p := range packagings {
				fmt.Fprintf(tw, "%d\t%s\t%.1f\n", p.ID, p.Name, p.UValue)
			}
			fmt.Fprintln(tw)

			fmt.Fprintln(tw, "TRANSPORT\tNAME\tSPEED\tMODE")
			for _, t := range transports {
				fmt.Fprintf(tw, "%d\t%s\t%.0f km/h\t%s\n", t.ID, t.Name, t.SpeedKmh, t.Mode)
			}

			return tw.Flush()
		},
	}
}

func optional(v *float64, unit string) string {
	if v == nil {
		return report.NotAvailable
	}
	return fmt.Sprintf("%.2f %s", *v, unit)
}
