package cli

import (
	"delivery-thermal-service/internal/services"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd creates the profile command, which prints the temperature
// curve over the trip.
func NewProfileCmd(root *rootOptions) *cobra.Command {
	var (
		flags  deliveryFlags
		points int
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the temperature curve of a delivery",
		Example: `  thermosim profile -p 1 -k 5 -t 3 -d 4 --points 9`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if points < 2 {
				return errors.New("points must be >= 2")
			}

			ctx := cmd.Context()
			cat, cleanup, err := root.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rep, err := services.NewSimulator(cat, nil).Run(ctx, flags.productID, flags.packagingID, flags.transportID, flags.distanceKm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			model := services.NewThermalModel(rep.Input.Food, rep.Input.Packaging)

			n := 0
			fmt.Fprintf(out, "%8s  %8s\n", "MINUTE", "TEMP")
			for minute, temp := range model.Profile(rep.Input.TravelMinutes, points) {
				fmt.Fprintf(out, "%8.2f  %7.1f°C\n", minute, temp)
				n++
			}
			if n == 0 {
				fmt.Fprintln(out, "no profile: travel time is infinite")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&points, "points", 10, "number of samples")

	return cmd
}
