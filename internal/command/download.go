// Package command implements the fichas download and preview commands.
package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/generator"
	"github.com/aherranz/fichas-cli/internal/output"
)

// NewDownloadCommand creates the fichas download command.
func NewDownloadCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download [name]",
		Short: "Download the generated fichas",
		Long: `Download the generated fichas. Without arguments the whole batch is
fetched as a zip named after the client and project; with a file name
only that ficha is fetched.`,
		GroupID: groupID,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runDownload,
	}
	cmd.Flags().StringP("out", "o", "", "Target directory (defaults to the configured download dir)")
	return cmd
}

func runDownload(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("out")
	if dir == "" {
		if cfg := GetConfig(cmd.Context()); cfg != nil {
			dir = cfg.DownloadDir
		}
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	printer := output.NewPrinter(output.FormatTable, false)
	store := printingAlertStore(printer)
	defer store.Close()
	ctrl := generator.New(client, store)

	if len(args) == 1 {
		_, err = ctrl.DownloadOne(cmd.Context(), key, args[0], dir, progressLine(printer))
	} else {
		_, err = ctrl.DownloadAll(cmd.Context(), key, dir, progressLine(printer))
	}
	return err
}

// NewPreviewCommand creates the fichas preview command.
func NewPreviewCommand(groupID string) *cobra.Command {
	return &cobra.Command{
		Use:     "preview <name>",
		Short:   "Fetch one generated ficha into a temporary file and print its path",
		GroupID: groupID,
		Args:    cobra.ExactArgs(1),
		RunE:    runPreview,
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(output.FormatTable, false)
	store := printingAlertStore(printer)
	defer store.Close()
	ctrl := generator.New(client, store)

	data, err := ctrl.Preview(cmd.Context(), key, args[0])
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "fichas-preview-*"+filepath.Ext(args[0]))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write preview: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close preview file: %w", err)
	}

	printer.Printf("%s\n", tmp.Name())
	return nil
}
