package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/java-service/internal/apiinfo"
	"github.com/example/java-service/internal/platform/config"
	applog "github.com/example/java-service/internal/platform/logging"
)

// app is populated by the root PersistentPreRunE and shared with subcommands.
type app struct {
	cfg  *config.Config
	desc apiinfo.ServiceDescriptor
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		port    int
		a       app
	)

	root := &cobra.Command{
		Use:   "java-service",
		Short: "Greeting service with OpenAPI documentation",
		Long: `java-service serves GET /api/hello together with a machine-readable
OpenAPI document (/openapi.json, /openapi.yaml) and a documentation page.

Running without a subcommand is the same as "serve".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			// --port takes precedence over file and environment.
			if cmd.Flags().Changed("port") {
				if port < 1 || port > 65535 {
					return fmt.Errorf("port %d out of range 1-65535", port)
				}
				cfg.Server.Port = port
			}
			if err := applog.SetLevel(cfg.Log.Level); err != nil {
				return err
			}
			a.cfg = cfg
			a.desc = descriptorFromConfig(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (YAML)")
	root.PersistentFlags().IntVar(&port, "port", 8080, "HTTP listen port (overrides PORT)")

	serve := func(cmd *cobra.Command, _ []string) error {
		return runServer(cmd.Context(), a.cfg, a.desc)
	}
	root.RunE = serve
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server on the configured port (default :8080).
The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: serve,
	})
	root.AddCommand(newOpenAPICmd(&a))
	return root
}

func descriptorFromConfig(cfg *config.Config) apiinfo.ServiceDescriptor {
	return apiinfo.New(
		apiinfo.ResolveVersion(Version),
		apiinfo.WithTitle(cfg.API.Title),
		apiinfo.WithDescription(cfg.API.Description),
		apiinfo.WithContact(cfg.API.ContactName, cfg.API.ContactEmail),
	)
}
