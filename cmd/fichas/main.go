// fichas is a CLI tool for running the fichas document workflow: client
// and project management, Anexo and CV uploads, record editing,
// validation, generation and download.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/command"
	"github.com/aherranz/fichas-cli/internal/config"
)

var (
	version     = "dev"
	apiURLFlag  string
	globalFlags = struct {
		debug bool
	}{}
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "fichas",
		Short: "fichas - Admin client for the fichas document workflow",
		Long: `fichas is a CLI tool for driving the fichas backend: register clients
and projects, upload the Anexo spreadsheet and CV PDFs, edit the record
collections and generate and download the resulting documents.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from the config file and environment
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Override the backend URL if specified via flag
			if apiURLFlag != "" {
				cfg.APIURL = apiURLFlag
				// Re-validate after override
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
			}

			level := slog.LevelWarn
			if globalFlags.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))

			// Store config and API client in the command context
			ctx := command.WithConfig(cmd.Context(), cfg)
			ctx = command.WithClient(ctx, api.NewClient(cfg.APIURL))
			cmd.SetContext(ctx)
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "",
		"Base URL of the fichas backend (default: $FICHAS_API_URL or the config file)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("cliente", "",
		"Client NIF to operate on (default: default_cliente from the config file)")
	rootCmd.PersistentFlags().String("proyecto", "",
		"Project acronym to operate on (default: default_proyecto from the config file)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "global",
		Title: "Global Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "entities",
		Title: "Clients and Projects:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "workflow",
		Title: "Fichas Workflow:",
	})

	// Add commands organized by groups
	rootCmd.AddCommand(
		// Global Commands
		command.NewUICommand("global"), // Terminal user interface

		// Clients and Projects
		command.NewClientCommand("entities"),
		command.NewProjectCommand("entities"),

		// Fichas Workflow
		command.NewUploadCommand("workflow"),
		command.NewMetadataCommand("workflow"),
		command.NewDataCommand("workflow"),
		command.NewStatusCommand("workflow"),
		command.NewValidateCommand("workflow"),
		command.NewGenerateCommand("workflow"),
		command.NewDownloadCommand("workflow"),
		command.NewPreviewCommand("workflow"),
	)

	// Enable version flag
	rootCmd.SetVersionTemplate("fichas version {{.Version}}\n")

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
