package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/styleadvisor/styleadvisor/internal/analysis"
	"github.com/styleadvisor/styleadvisor/internal/catalog"
	"github.com/styleadvisor/styleadvisor/internal/images"
)

func newAnalyzeCmd() *cobra.Command {
	var domainName string
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <photo>",
		Short: "Analyze one face photo",
		Long: `Sends a face photo to the configured provider and prints the recommendation record.

The record is always printed. When the provider fails, the default recommendation is
printed and the error message goes to stderr.`,
		Example: `  # Beard recommendation as YAML
  styleadvisor analyze --domain beard ./me.jpg

  # Lipstick recommendation as JSON with Gemini
  ANALYSIS_PROVIDER=gemini styleadvisor analyze --domain lipstick --output json ./me.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := catalog.ParseDomain(domainName)
			if err != nil {
				return err
			}
			if output != "yaml" && output != "json" {
				return fmt.Errorf("unsupported output format %q, expected yaml or json", output)
			}

			cfg, analyzer, err := newAnalyzer(
				analysis.WithReporter(analysis.WriterReporter{W: cmd.ErrOrStderr()}),
				analysis.WithFailureLogLevel(slog.LevelDebug),
			)
			if err != nil {
				return err
			}

			photo, err := readPhoto(args[0], cfg.MaxUploadBytes)
			if err != nil {
				return err
			}

			result := analyzer.Analyze(cmd.Context(), photo, domain)
			return writeRecord(cmd.OutOrStdout(), output, result.Record())
		},
	}

	cmd.Flags().StringVarP(&domainName, "domain", "d", "", "Analysis domain: beard or lipstick (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

func readPhoto(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open photo: %w", err)
	}
	defer f.Close()

	return images.ReadLimited(f, maxBytes)
}

func writeRecord(w io.Writer, format string, record any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
