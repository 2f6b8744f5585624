// Package command implements the fichas metadata command.
package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/generator"
	"github.com/aherranz/fichas-cli/internal/output"
)

// loadMetadata fetches the stored Anexo metadata, treating backend
// absence as empty fields.
func loadMetadata(cmd *cobra.Command, client *api.Client, clienteNIF string) (api.AnexoMetadata, error) {
	md, err := client.GetMetadata(cmd.Context(), clienteNIF)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			return api.AnexoMetadata{}, nil
		}
		return api.AnexoMetadata{}, err
	}
	if md == nil {
		return api.AnexoMetadata{}, nil
	}
	return *md, nil
}

// NewMetadataCommand creates the fichas metadata command.
func NewMetadataCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "metadata",
		Short:   "View and edit the Anexo metadata of the selected client",
		GroupID: groupID,
	}

	cmd.AddCommand(
		newMetadataShowCommand(),
		newMetadataSaveCommand(),
	)
	return cmd
}

func newMetadataShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored Anexo metadata",
		Args:  cobra.NoArgs,
		RunE:  runMetadataShow,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func runMetadataShow(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	md, err := loadMetadata(cmd, client, key.ClienteNIF)
	if err != nil {
		return fmt.Errorf("failed to load metadata: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	printer := output.NewPrinter(output.Format(format), false)
	if format == "json" {
		return printer.PrintJSON(md)
	}

	printer.Printf("Año fiscal:           %s\n", md.AnioFiscal)
	printer.Printf("NIF cliente:          %s\n", md.NIFCliente)
	printer.Printf("Entidad solicitante:  %s\n", md.EntidadSolicitante)
	return nil
}

func newMetadataSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Update the stored Anexo metadata",
		Long: `Update the stored Anexo metadata fields. Only the provided flags change;
the rest keep their stored value.`,
		Args: cobra.NoArgs,
		RunE: runMetadataSave,
	}
	cmd.Flags().String("anio", "", "Fiscal year")
	cmd.Flags().String("nif", "", "Client tax identifier (DNI, NIE or CIF)")
	cmd.Flags().String("entidad", "", "Requesting entity name")
	return cmd
}

func runMetadataSave(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	md, err := loadMetadata(cmd, client, key.ClienteNIF)
	if err != nil {
		return fmt.Errorf("failed to load metadata: %w", err)
	}

	if v, _ := cmd.Flags().GetString("anio"); cmd.Flags().Changed("anio") {
		md.AnioFiscal = v
	}
	if v, _ := cmd.Flags().GetString("nif"); cmd.Flags().Changed("nif") {
		if !generator.ValidTaxID(v) {
			return fmt.Errorf("invalid tax identifier %q (expected DNI, NIE or CIF)", v)
		}
		md.NIFCliente = v
	}
	if v, _ := cmd.Flags().GetString("entidad"); cmd.Flags().Changed("entidad") {
		md.EntidadSolicitante = v
	}

	if err := client.SaveMetadata(cmd.Context(), key.ClienteNIF, md); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	printer := output.NewPrinter(output.FormatTable, false)
	printer.Success("Metadata saved")
	return nil
}
