package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/styleadvisor/styleadvisor/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var domainName string
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the styles, colors and products of a domain",
		Example: `  styleadvisor catalog --domain beard
  styleadvisor catalog --domain lipstick --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := catalog.ParseDomain(domainName)
			if err != nil {
				return err
			}
			if output != "yaml" && output != "json" {
				return fmt.Errorf("unsupported output format %q, expected yaml or json", output)
			}
			return writeRecord(cmd.OutOrStdout(), output, catalog.For(domain))
		},
	}

	cmd.Flags().StringVarP(&domainName, "domain", "d", "", "Catalog domain: beard or lipstick (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}
