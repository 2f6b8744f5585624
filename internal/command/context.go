// Package command implements the fichas subcommands.
package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/config"
)

type (
	apiClientKey struct{}
	configKey    struct{}
)

// WithClient returns a new context carrying the API client.
func WithClient(ctx context.Context, client *api.Client) context.Context {
	return context.WithValue(ctx, apiClientKey{}, client)
}

// GetClient retrieves the API client from the context.
func GetClient(ctx context.Context) *api.Client {
	if client, ok := ctx.Value(apiClientKey{}).(*api.Client); ok {
		return client
	}
	return nil
}

// WithConfig returns a new context carrying the loaded configuration.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the configuration from the context.
func GetConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return nil
}

// RequireClient retrieves the API client or fails.
func RequireClient(ctx context.Context) (*api.Client, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, fmt.Errorf("API client not initialized")
	}
	return client, nil
}

// TenancyKeyFromCmd resolves the tenancy key from the --cliente/--proyecto
// flags, falling back to the configured defaults. The client NIF is
// mandatory; the project acronym addresses the client-level bucket when
// empty.
func TenancyKeyFromCmd(cmd *cobra.Command) (api.TenancyKey, error) {
	cliente, _ := cmd.Flags().GetString("cliente")
	proyecto, _ := cmd.Flags().GetString("proyecto")

	if cfg := GetConfig(cmd.Context()); cfg != nil {
		if cliente == "" {
			cliente = cfg.DefaultCliente
		}
		if proyecto == "" {
			proyecto = cfg.DefaultProyecto
		}
	}

	if cliente == "" {
		return api.TenancyKey{}, fmt.Errorf(
			"no client selected: use --cliente or set default_cliente in the config file")
	}
	return api.TenancyKey{ClienteNIF: cliente, Proyecto: proyecto}, nil
}
