package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

func restaurantRows(rs []domain.Restaurant) [][]string {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{
			r.ID.String(), r.Name, r.Location, r.OpeningHour + "-" + r.ClosingHour, r.VendorID.String(),
		})
	}
	return rows
}

var restaurantHeader = []string{"ID", "NAME", "LOCATION", "HOURS", "VENDOR"}

func newRestaurantsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "restaurants", Short: "Restaurant operations"}

	// list
	var vendor string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally only those of --vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				rs  []domain.Restaurant
				err error
			)
			if vendor != "" {
				id, perr := parseIDArg(vendor)
				if perr != nil {
					return perr
				}
				rs, err = c.listing().RestaurantsForVendor(cmd.Context(), id)
			} else {
				rs, err = c.client.Restaurants().Load(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), restaurantHeader, restaurantRows(rs))
		},
	}
	listCmd.Flags().StringVar(&vendor, "vendor", "", "vendor ID")
	cmd.AddCommand(listCmd)

	// get
	cmd.AddCommand(&cobra.Command{
		Use:   "get RESTAURANT_ID",
		Short: "Get restaurant by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			r, ok, err := c.client.Restaurants().GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("restaurant %s not found", id)
			}
			return printJSON(cmd.OutOrStdout(), r)
		},
	})

	// add
	var in domain.Restaurant
	var vendorID string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseIDArg(vendorID)
			if err != nil {
				return err
			}
			in.VendorID = id
			r, err := c.client.Restaurants().Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), r)
		},
	}
	addCmd.Flags().StringVarP(&in.Name, "name", "n", "", "restaurant name (required)")
	addCmd.Flags().StringVar(&in.Description, "description", "", "description")
	addCmd.Flags().StringVar(&in.Location, "location", "", "location")
	addCmd.Flags().StringVar(&in.ContactNumber, "phone", "", "contact number")
	addCmd.Flags().StringVar(&in.OpeningHour, "opens", "09", "opening hour, 00-23")
	addCmd.Flags().StringVar(&in.ClosingHour, "closes", "22", "closing hour, 00-23")
	addCmd.Flags().StringVar(&vendorID, "vendor", "", "owning vendor ID (required)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("vendor")
	cmd.AddCommand(addCmd)

	// delete
	cmd.AddCommand(&cobra.Command{
		Use:   "delete RESTAURANT_ID",
		Short: "Delete a restaurant; its menu is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if err := c.client.Restaurants().DeleteByID(cmd.Context(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "restaurant %s deleted\n", id)
			return nil
		},
	})

	return cmd
}
