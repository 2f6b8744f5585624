// Package command implements the fichas generate command.
package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/generator"
	"github.com/aherranz/fichas-cli/internal/output"
)

// NewGenerateCommand creates the fichas generate command.
func NewGenerateCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the fichas from the uploaded data",
		Long: `Generate the fichas. Without --tipo the whole batch is generated;
with --tipo 2.1 or --tipo 2.2 only that ficha is, after checking that
its underlying data exists.

The metadata extracted from the Anexo can be overridden per run with
--anio, --nif and --entidad.`,
		GroupID: groupID,
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
	}
	cmd.Flags().String("tipo", "", "Generate only one ficha (2.1 or 2.2)")
	cmd.Flags().String("anio", "", "Override the fiscal year")
	cmd.Flags().String("nif", "", "Override the client tax identifier")
	cmd.Flags().String("entidad", "", "Override the requesting entity")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	overrides := api.GenerateOverrides{}
	overrides.AnioFiscal, _ = cmd.Flags().GetString("anio")
	overrides.NIFCliente, _ = cmd.Flags().GetString("nif")
	overrides.EntidadSolicitante, _ = cmd.Flags().GetString("entidad")

	printer := output.NewPrinter(output.FormatTable, false)
	store := printingAlertStore(printer)
	defer store.Close()
	ctrl := generator.New(client, store)

	tipo, _ := cmd.Flags().GetString("tipo")
	switch tipo {
	case "":
		files, err := ctrl.GenerateAll(cmd.Context(), key, overrides)
		if err != nil {
			return err
		}
		for _, file := range files {
			printer.Printf("  %s\n", file)
		}
		return nil
	case "2.1", "2.2":
		av, err := client.CheckAvailableFichas(cmd.Context(), key)
		if err != nil {
			return fmt.Errorf("availability check failed: %w", err)
		}
		if tipo == "2.1" {
			_, err = ctrl.Generate21(cmd.Context(), key, overrides, *av)
		} else {
			_, err = ctrl.Generate22(cmd.Context(), key, overrides, *av)
		}
		return err
	default:
		return fmt.Errorf("unknown ficha type %q (expected 2.1 or 2.2)", tipo)
	}
}
