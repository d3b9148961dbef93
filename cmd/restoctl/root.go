package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/restaurant-admin/internal/adapter/restapi"
	"github.com/heartmarshall/restaurant-admin/internal/app"
	"github.com/heartmarshall/restaurant-admin/internal/config"
	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/internal/service/listing"
)

// cli holds the global flags and the client built from them.
type cli struct {
	api      string
	timeout  time.Duration
	token    string
	email    string
	password string
	verbose  bool

	client *restapi.Client
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "restoctl",
		Short:         "CLI client for the restaurant-admin REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.connect(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&c.api, "api", "a", "", "API base URL (default $API_BASE_URL or http://localhost:8080)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "request timeout (default $API_TIMEOUT or 2m)")
	root.PersistentFlags().StringVarP(&c.token, "token", "t", "", "bearer access token")
	root.PersistentFlags().StringVar(&c.email, "email", "", "log in with this email before the command")
	root.PersistentFlags().StringVar(&c.password, "password", "", "password for --email")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log client warnings to stderr")

	root.AddCommand(
		newVendorsCmd(c),
		newRestaurantsCmd(c),
		newMenuCmd(c),
		newPredefinedCmd(c),
		newViewsCmd(c),
		newLoginCmd(c),
	)
	return root
}

// connect builds the API client. Flags win over the environment.
func (c *cli) connect(cmd *cobra.Command) error {
	var cfg config.APIConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if c.api != "" {
		cfg.BaseURL = c.api
	}
	if c.timeout > 0 {
		cfg.Timeout = c.timeout
	}

	level := "error"
	if c.verbose {
		level = "debug"
	}
	logger := app.NewLogger(config.LogConfig{Level: level, Format: "text"})

	c.client = restapi.New(cfg, logger)

	if c.token != "" {
		c.client.SetToken(c.token)
		return nil
	}
	if c.email != "" {
		token, err := c.client.Login(cmd.Context(), c.email, c.password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		c.token = token
	}
	return nil
}

// listing joins remote collections on the client side.
func (c *cli) listing() *listing.Service {
	return listing.NewService(slog.Default(), c.client.Vendors(), c.client.Restaurants(), c.client.MenuItems())
}

func parseIDArg(s string) (domain.ID, error) {
	id := domain.ParseID(s)
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with --email and --password and print the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.email == "" {
				return fmt.Errorf("--email and --password required")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.token)
			return nil
		},
	}
}
