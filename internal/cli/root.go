package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/castqc/internal/config"
	"github.com/alexanderramin/castqc/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNotInteractive = errors.New("the inspection form needs an interactive terminal; use 'castqc lists' for scripted access")

// App holds the services and settings used by CLI commands.
type App struct {
	Inspections service.InspectionService
	PickLists   service.PickListService
	Config      config.Config
	Flags       config.Flags
	Logger      *zap.Logger

	// Warnings collected during setup, shown once to the operator.
	Warnings []string

	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// SetupFunc wires services into app once flags are parsed.
type SetupFunc func(ctx context.Context, app *App) error

// NewRootCmd creates the top-level "castqc" command. Without a subcommand it
// opens the inspection form. setup may be nil when app is already wired.
func NewRootCmd(app *App, setup SetupFunc) *cobra.Command {
	root := &cobra.Command{
		Use:          "castqc",
		Short:        "Casting quality-control inspection entry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if setup == nil {
				return nil
			}
			return setup(cmd.Context(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
	app.Flags.Register(root.PersistentFlags())

	root.AddCommand(newListsCmd(app))
	return root
}

func runTUI(cmd *cobra.Command, app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errNotInteractive
	}

	m := newAppModel(app)
	m.state.Ctx = cmd.Context()

	log := app.logger()
	log.Info("form opened", zap.String("db", app.Config.DBPath))
	defer log.Info("form closed")

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}

func warningText(app *App) string {
	return strings.Join(app.Warnings, "; ")
}
