// Package cli is the agencyctl command tree: offline access to the same
// services the HTTP server exposes.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/agency_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/agency_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/core/services"
	"github.com/SscSPs/agency_ledger_app/internal/platform/config"
	"github.com/SscSPs/agency_ledger_app/pkg/database"
	"github.com/spf13/cobra"
)

// ContainerFactory builds the services a command runs against.
type ContainerFactory func(ctx context.Context) (*portssvc.ServiceContainer, error)

type app struct {
	factory   ContainerFactory
	container *portssvc.ServiceContainer

	identifier string
	password   string
	asJSON     bool
}

// NewRootCommand returns the agencyctl command tree. A nil factory uses
// DefaultContainerFactory.
func NewRootCommand(factory ContainerFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultContainerFactory
	}
	a := &app{factory: factory}

	root := &cobra.Command{
		Use:           "agencyctl",
		Short:         "Reports and balances for the agency ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			container, err := a.factory(cmd.Context())
			if err != nil {
				return err
			}
			a.container = container
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.identifier, "as", os.Getenv("AGENCY_IDENTIFIER"), "Login identifier of the acting principal")
	root.PersistentFlags().StringVar(&a.password, "password", os.Getenv("AGENCY_PASSWORD"), "Password of the acting principal")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print JSON instead of text")

	root.AddCommand(newLoginCommand(a), newNavigateCommand(a), newReportCommand(a), newBalanceCommand(a))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() {
	root := NewRootCommand(nil)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// DefaultContainerFactory wires the services the way the server does: the in-memory
// store, seeded when configured, with the ledgers moved to PostgreSQL when PGSQL_URL is set.
func DefaultContainerFactory(ctx context.Context) (*portssvc.ServiceContainer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	store := memory.NewStore()
	if cfg.SeedDemoData {
		memory.SeedDemoData(store)
	}
	repos := store.Provider()
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		repos = pgsql.WithLedgerRepositories(pool, repos)
	}
	return services.NewServiceContainer(cfg, repos), nil
}

// actor resolves --as and --password into a principal.
func (a *app) actor(ctx context.Context) (domain.Principal, error) {
	if a.identifier == "" || a.password == "" {
		return domain.Principal{}, fmt.Errorf("--as and --password are required (or AGENCY_IDENTIFIER and AGENCY_PASSWORD)")
	}
	p, err := a.container.Identity.ResolveLogin(ctx, a.identifier, a.password)
	if err != nil {
		return domain.Principal{}, err
	}
	return *p, nil
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
