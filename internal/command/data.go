// Package command implements the fichas data command for viewing and
// editing the record collections.
package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/output"
	"github.com/aherranz/fichas-cli/internal/records"
)

// NewDataCommand creates the fichas data command.
func NewDataCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "data",
		Short:   "View and edit the record collections",
		Long:    "Work with the personal, colaboraciones and facturas collections of the selected client/project.",
		GroupID: groupID,
	}

	cmd.AddCommand(
		newDataShowCommand(),
		newDataEditCommand(),
	)
	return cmd
}

func parseType(arg string) (records.Type, error) {
	typ := records.Type(arg)
	if !typ.Valid() {
		return "", fmt.Errorf("unknown data type %q (expected personal, colaboraciones or facturas)", arg)
	}
	return typ, nil
}

// loadCollection fetches a collection, treating backend absence as an
// empty collection rather than an error.
func loadCollection(cmd *cobra.Command, client *api.Client, typ records.Type, key api.TenancyKey) (records.Collection, error) {
	data, err := client.GetRecords(cmd.Context(), typ, key)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			slog.Debug("collection not available yet, starting empty", "type", typ, "detail", apiErr.Detail)
			return records.Collection{}, nil
		}
		return nil, err
	}
	return records.Normalize(data, typ), nil
}

func newDataShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <personal|colaboraciones|facturas>",
		Short: "Print one record collection",
		Args:  cobra.ExactArgs(1),
		RunE:  runDataShow,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func runDataShow(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}

	data, err := loadCollection(cmd, client, typ, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", typ, err)
	}

	format, _ := cmd.Flags().GetString("format")
	printer := output.NewPrinter(output.Format(format), false)
	if len(data) == 0 && format != "json" {
		printer.Info(fmt.Sprintf("No %s records yet", typ))
		return nil
	}
	return printer.PrintRecords(typ, data)
}

func newDataEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <personal|colaboraciones|facturas>",
		Short: "Edit one record collection in $EDITOR",
		Long: `Dump the collection as JSON into a temporary file, open it in $EDITOR
and save the edited content back. Saving replaces the whole collection on
the server.`,
		Args: cobra.ExactArgs(1),
		RunE: runDataEdit,
	}
}

func runDataEdit(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}

	data, err := loadCollection(cmd, client, typ, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", typ, err)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", typ, err)
	}

	tmpFile, err := os.CreateTemp("", fmt.Sprintf("fichas-%s-*.json", typ))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(jsonData); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vim"
	}

	printer := output.NewPrinter(output.FormatTable, false)
	printer.Info(fmt.Sprintf("Editing %s using %s...", typ, editorCmd))

	edit := exec.Command(editorCmd, tmpPath)
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	if err := edit.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to read edited file: %w", err)
	}

	var collection records.Collection
	if err := json.Unmarshal(edited, &collection); err != nil {
		return fmt.Errorf("edited file is not a valid record array: %w", err)
	}
	collection = records.Normalize(collection, typ)

	if err := client.UpdateRecords(cmd.Context(), typ, key, collection); err != nil {
		return fmt.Errorf("failed to save %s: %w", typ, err)
	}

	printer.Success(fmt.Sprintf("%s saved (%d records)", typ.Label(), len(collection)))
	return nil
}
