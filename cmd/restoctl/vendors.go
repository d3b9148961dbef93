package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

func newVendorsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "vendors", Short: "Vendor operations"}

	// list
	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vendors, err := c.client.Vendors().Load(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), vendors)
			}
			rows := make([][]string, 0, len(vendors))
			for _, v := range vendors {
				rows = append(rows, []string{v.ID.String(), v.Name, v.Email, v.PhoneNumber})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "EMAIL", "PHONE"}, rows)
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.AddCommand(listCmd)

	// get
	cmd.AddCommand(&cobra.Command{
		Use:   "get VENDOR_ID",
		Short: "Get vendor by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			v, ok, err := c.client.Vendors().GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("vendor %s not found", id)
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	})

	// add
	var name, email, phone string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.client.Vendors().Add(cmd.Context(), domain.Vendor{Name: name, Email: email, PhoneNumber: phone})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "vendor name (required)")
	addCmd.Flags().StringVarP(&email, "email", "e", "", "contact email (required)")
	addCmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("email")
	cmd.AddCommand(addCmd)

	// update
	updateCmd := &cobra.Command{
		Use:   "update VENDOR_ID",
		Short: "Change vendor fields; omitted flags are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			var patch domain.VendorPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				patch.PhoneNumber = &phone
			}
			ok, err := c.client.Vendors().Update(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("vendor %s not found", id)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "vendor %s updated\n", id)
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&name, "name", "n", "", "vendor name")
	updateCmd.Flags().StringVarP(&email, "email", "e", "", "contact email")
	updateCmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number")
	cmd.AddCommand(updateCmd)

	// delete
	cmd.AddCommand(&cobra.Command{
		Use:   "delete VENDOR_ID",
		Short: "Delete a vendor; its restaurants are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if err := c.client.Vendors().DeleteByID(cmd.Context(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "vendor %s deleted\n", id)
			return nil
		},
	})

	return cmd
}
