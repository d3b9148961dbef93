package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

func menuRows(items []domain.MenuItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{m.ID.String(), m.Name, formatPrice(m.Price), m.Category})
	}
	return rows
}

var menuHeader = []string{"ID", "NAME", "PRICE", "CATEGORY"}

func newMenuCmd(c *cli) *cobra.Command {
	var restaurant string
	cmd := &cobra.Command{Use: "menu", Short: "Menu operations for one restaurant"}
	cmd.PersistentFlags().StringVarP(&restaurant, "restaurant", "r", "", "restaurant ID (required)")
	_ = cmd.MarkPersistentFlagRequired("restaurant")

	// list
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the restaurant's menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rid, err := parseIDArg(restaurant)
			if err != nil {
				return err
			}
			items, err := c.listing().MenuItemsForRestaurant(cmd.Context(), rid)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), menuHeader, menuRows(items))
		},
	})

	// add
	var item domain.MenuItem
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dish to the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rid, err := parseIDArg(restaurant)
			if err != nil {
				return err
			}
			m, err := c.client.MenuItems().Add(cmd.Context(), rid, item)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), m)
		},
	}
	addCmd.Flags().StringVarP(&item.Name, "name", "n", "", "dish name (required)")
	addCmd.Flags().Float64VarP(&item.Price, "price", "p", 0, "price")
	addCmd.Flags().StringVarP(&item.Category, "category", "c", "", "category")
	_ = addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	// delete
	cmd.AddCommand(&cobra.Command{
		Use:   "delete MENU_ITEM_ID",
		Short: "Remove a dish from the menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rid, err := parseIDArg(restaurant)
			if err != nil {
				return err
			}
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if err := c.client.MenuItems().DeleteByID(cmd.Context(), rid, id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "menu item %s deleted\n", id)
			return nil
		},
	})

	return cmd
}

func newPredefinedCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "predefined", Short: "Predefined dish catalog"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.client.PredefinedMenuItems().Load(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{p.ID.String(), p.Name, formatPrice(p.Price), p.Category})
			}
			return printTable(cmd.OutOrStdout(), menuHeader, rows)
		},
	})

	return cmd
}
