// Package command implements the fichas project command.
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/output"
)

// ProjectCommand handles the fichas project command.
type ProjectCommand struct{}

// NewProjectCommand creates the fichas project command.
func NewProjectCommand(groupID string) *cobra.Command {
	pc := &ProjectCommand{}

	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Manage projects of a client",
		Long:    "List and create projects. A project is identified by its acronym, unique within its client.",
		GroupID: groupID,
	}

	cmd.AddCommand(
		pc.newListCommand(),
		pc.newCreateCommand(),
	)
	return cmd
}

func (c *ProjectCommand) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the projects of the selected client",
		Args:  cobra.NoArgs,
		RunE:  c.runList,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func (c *ProjectCommand) runList(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	proyectos, err := client.ListProyectos(cmd.Context(), key.ClienteNIF)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	printer := output.NewPrinter(output.Format(format), false)
	if len(proyectos) == 0 && format != "json" {
		printer.Info("No projects found for this client")
		return nil
	}
	return printer.PrintProyectos(proyectos)
}

func (c *ProjectCommand) newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <acronimo>",
		Short: "Create a project under the selected client",
		Long: `Create a project. The acronym must be unique within the client,
compared case-insensitively.

Examples:
  fichas project create ACR1 --cliente B12345678`,
		Args: cobra.ExactArgs(1),
		RunE: c.runCreate,
	}
}

func (c *ProjectCommand) runCreate(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	acronimo := strings.TrimSpace(args[0])
	if acronimo == "" {
		return fmt.Errorf("acronym cannot be empty")
	}

	// Pre-check uniqueness for a friendlier error than the backend's.
	existing, err := client.ListProyectos(cmd.Context(), key.ClienteNIF)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range existing {
		if strings.EqualFold(p.Acronimo, acronimo) {
			return fmt.Errorf("project %q already exists for client %s", p.Acronimo, key.ClienteNIF)
		}
	}

	if err := client.CreateProyecto(cmd.Context(), key.ClienteNIF, acronimo); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	printer := output.NewPrinter(output.FormatTable, false)
	printer.Success(fmt.Sprintf("Project %s created under client %s", acronimo, key.ClienteNIF))
	return nil
}
