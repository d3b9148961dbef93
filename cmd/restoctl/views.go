package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newViewsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "views", Short: "Joined list screens, computed on the client"}

	var query string
	restaurantsCmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Restaurants with their vendor's email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := c.listing().SearchRestaurants(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.ID.String(), r.Name, r.Location, r.VendorEmail})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "LOCATION", "VENDOR EMAIL"}, out)
		},
	}
	restaurantsCmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive filter")
	cmd.AddCommand(restaurantsCmd)

	vendorsCmd := &cobra.Command{
		Use:   "vendors",
		Short: "Vendors with their restaurant count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := c.listing().SearchVendors(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := make([][]string, 0, len(rows))
			for _, v := range rows {
				out = append(out, []string{v.ID.String(), v.Name, v.Email, strconv.Itoa(v.RestaurantCount)})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "EMAIL", "RESTAURANTS"}, out)
		},
	}
	vendorsCmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive filter")
	cmd.AddCommand(vendorsCmd)

	return cmd
}
