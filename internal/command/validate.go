// Package command implements the fichas validate command.
package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/output"
)

// NewValidateCommand creates the fichas validate command.
func NewValidateCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Run server-side validation of the record collections",
		GroupID: groupID,
		Args:    cobra.NoArgs,
		RunE:    runValidate,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	res, err := client.Validate(cmd.Context(), key)
	if err != nil {
		return fmt.Errorf("validation request failed: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	printer := output.NewPrinter(output.Format(format), false)
	if err := printer.PrintValidation(res); err != nil {
		return err
	}
	if !res.Exitosa {
		return fmt.Errorf("validation reported errors")
	}
	return nil
}
