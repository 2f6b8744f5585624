// Package command implements the fichas client command for managing clients.
package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/output"
)

// ClientCommand handles the fichas client command.
type ClientCommand struct {
	reader *bufio.Reader
}

// NewClientCommand creates the fichas client command.
func NewClientCommand(groupID string) *cobra.Command {
	cc := &ClientCommand{
		reader: bufio.NewReader(os.Stdin),
	}

	cmd := &cobra.Command{
		Use:     "client",
		Short:   "Manage clients",
		Long:    "List, create and delete clients. A client is identified by its NIF.",
		GroupID: groupID,
	}

	cmd.AddCommand(
		cc.newListCommand(),
		cc.newCreateCommand(),
		cc.newDeleteCommand(),
	)
	return cmd
}

func (c *ClientCommand) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		Args:  cobra.NoArgs,
		RunE:  c.runList,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func (c *ClientCommand) runList(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}

	clientes, err := client.ListClientes(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	printer := output.NewPrinter(output.Format(format), false)
	if len(clientes) == 0 && format != "json" {
		printer.Info("No clients found")
		return nil
	}
	return printer.PrintClientes(clientes)
}

func (c *ClientCommand) newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <nif> <nombre>",
		Short: "Create a new client",
		Long: `Create a new client identified by its NIF.

Examples:
  fichas client create B12345678 "ACME SL"`,
		Args: cobra.ExactArgs(2),
		RunE: c.runCreate,
	}
}

func (c *ClientCommand) runCreate(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}

	nif, nombre := args[0], args[1]
	if err := client.CreateCliente(cmd.Context(), nif, nombre); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	printer := output.NewPrinter(output.FormatTable, false)
	printer.Success(fmt.Sprintf("Client %s (%s) created", nif, nombre))
	return nil
}

func (c *ClientCommand) newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <nif>",
		Short: "Delete a client and all of its data",
		Long: `Delete a client. This removes every project, record collection and
generated document of the client on the server. There is no undo.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runDelete,
	}
	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	return cmd
}

func (c *ClientCommand) runDelete(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}

	nif := args[0]
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		fmt.Printf("Delete client %s and ALL of its server-side data? This cannot be undone. (y/N): ", nif)
		answer, err := c.reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := client.DeleteCliente(cmd.Context(), nif); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	printer := output.NewPrinter(output.FormatTable, false)
	printer.Success(fmt.Sprintf("Client %s deleted", nif))
	return nil
}
