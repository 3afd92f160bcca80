package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/styleadvisor/styleadvisor/internal/config"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styleadvisor",
		Short: "Beard and lipstick recommendations from a face photo",
		Long: `Styleadvisor sends a face photo to a vision-capable LLM and turns its reply into
a complete recommendation record for one of the supported domains (beard or lipstick).

Replies are validated against the built-in catalogs; when the model fails or answers
with something unusable, a fixed default recommendation is returned instead.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: config.ParseLevel(os.Getenv("LOG_LEVEL")),
			})))
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}
