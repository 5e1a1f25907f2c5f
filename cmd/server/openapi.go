package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/java-service/internal/platform/metrics"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var (
		format    string
		downgrade bool
	)
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document and exit",
		Long: `Print the OpenAPI document the server would publish at /openapi.json.
Use --downgrade for OpenAPI 3.0.3 output, which older tooling requires.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, api := newRouter(a.cfg, a.desc, metrics.New(), time.Now())
			doc := api.OpenAPI()

			var (
				out []byte
				err error
			)
			switch {
			case format == "json" && downgrade:
				out, err = doc.Downgrade()
			case format == "json":
				out, err = json.MarshalIndent(doc, "", "  ")
			case format == "yaml" && downgrade:
				out, err = doc.DowngradeYAML()
			case format == "yaml":
				out, err = doc.YAML()
			default:
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("rendering openapi document: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&downgrade, "downgrade", false, "emit OpenAPI 3.0.3 instead of 3.1")
	return cmd
}
