// Package command implements the fichas upload command.
package command

import (
	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/alerts"
	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/output"
	"github.com/aherranz/fichas-cli/internal/uploader"
)

// NewUploadCommand creates the fichas upload command.
func NewUploadCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upload",
		Short:   "Upload the Anexo spreadsheet or CV PDFs",
		GroupID: groupID,
	}

	cmd.AddCommand(
		newUploadAnexoCommand(),
		newUploadCVsCommand(),
	)
	return cmd
}

func newUploadAnexoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "anexo <file.xlsx>",
		Short: "Upload the Anexo spreadsheet and show the extracted metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runUploadAnexo,
	}
}

func runUploadAnexo(cmd *cobra.Command, args []string) error {
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

	orch := uploader.New(client, store, uploader.Events{
		OnAnexoMetadata: func(md api.AnexoMetadata) {
			printer.Printf("  Año fiscal:           %s\n", md.AnioFiscal)
			printer.Printf("  NIF cliente:          %s\n", md.NIFCliente)
			printer.Printf("  Entidad solicitante:  %s\n", md.EntidadSolicitante)
		},
	}, nil)

	return orch.UploadAnexo(cmd.Context(), key, args[0], progressLine(printer))
}

func newUploadCVsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cvs <file.pdf>...",
		Short: "Upload CV PDFs and trigger their processing",
		Long: `Upload one or more CV PDFs. Files without a .pdf extension are dropped
from the batch with a warning. Processing starts automatically once the
upload finishes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runUploadCVs,
	}
}

func runUploadCVs(cmd *cobra.Command, args []string) error {
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

	orch := uploader.New(client, store, uploader.Events{}, nil)
	return orch.UploadCVs(cmd.Context(), key, args, progressLine(printer))
}

// printingAlertStore routes orchestrator alerts straight to the terminal.
func printingAlertStore(printer *output.Printer) *alerts.Store {
	return alerts.NewStore(alerts.WithOnPush(func(a alerts.Alert) {
		switch a.Severity {
		case alerts.Success:
			printer.Success(a.Message)
		case alerts.Warning:
			printer.Warning(a.Message)
		case alerts.Error:
			printer.Error(a.Message)
		default:
			printer.Info(a.Message)
		}
	}))
}

// progressLine renders transfer progress as a single rewritten line.
func progressLine(printer *output.Printer) func(pct int) {
	last := -1
	return func(pct int) {
		if pct == last {
			return
		}
		last = pct
		printer.Printf("\r  %3d%%", pct)
		if pct >= 100 {
			printer.Printf("\n")
		}
	}
}
