// Package command implements the fichas status command.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/output"
	"github.com/aherranz/fichas-cli/internal/poller"
)

// NewStatusCommand creates the fichas status command.
func NewStatusCommand(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which fichas can be generated",
		Long: `Ask the backend which fichas have enough underlying data to be
generated. With --wait the command keeps polling until at least one
ficha becomes available, or the timeout expires.`,
		GroupID: groupID,
		Args:    cobra.NoArgs,
		RunE:    runStatus,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	cmd.Flags().Bool("wait", false, "Keep polling until a ficha becomes available")
	cmd.Flags().Duration("timeout", 2*time.Minute, "Give up waiting after this long")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}
	key, err := TenancyKeyFromCmd(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	printer := output.NewPrinter(output.Format(format), false)

	wait, _ := cmd.Flags().GetBool("wait")
	if !wait {
		av, err := client.CheckAvailableFichas(cmd.Context(), key)
		if err != nil {
			return fmt.Errorf("availability check failed: %w", err)
		}
		return printer.PrintAvailability(av)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	av, err := waitForAvailability(ctx, client, key)
	if err != nil {
		return err
	}
	return printer.PrintAvailability(av)
}

// waitForAvailability polls until one of the flags turns true or the
// context expires.
func waitForAvailability(ctx context.Context, client *api.Client, key api.TenancyKey) (*api.Availability, error) {
	done := make(chan api.Availability, 1)
	p := poller.New(
		func(ctx context.Context) (api.Availability, error) {
			av, err := client.CheckAvailableFichas(ctx, key)
			if err != nil {
				return api.Availability{}, err
			}
			return *av, nil
		},
		func(av api.Availability) {
			if av.PuedeGenerar21 || av.PuedeGenerar22 {
				select {
				case done <- av:
				default:
				}
			}
		},
	)
	p.Start()
	defer p.Stop()

	select {
	case av := <-done:
		return &av, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("no ficha became available before the timeout")
	}
}
