package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/castqc/internal/cli"
	"github.com/alexanderramin/castqc/internal/config"
	"github.com/alexanderramin/castqc/internal/db"
	"github.com/alexanderramin/castqc/internal/logging"
	"github.com/alexanderramin/castqc/internal/repository"
	"github.com/alexanderramin/castqc/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.HomeDir()
	if err != nil {
		return err
	}

	app := &cli.App{}
	// Detect interactive terminal for the form entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	w := &wiring{dir: dir}
	defer w.close()

	return cli.NewRootCmd(app, w.setup).Execute()
}

// wiring owns the resources created once flags are known.
type wiring struct {
	dir      string
	database *db.Lazy
	logger   *zap.Logger
}

func (w *wiring) setup(ctx context.Context, app *cli.App) error {
	cfg, err := config.Load(w.dir, app.Flags.ConfigPath)
	if err != nil {
		return err
	}
	app.Flags.Apply(&cfg)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	w.logger = logger
	observer := service.NewZapUseCaseObserver(logger)

	// The database is opened on the first save, not at startup.
	w.database = db.NewLazy(cfg.DBPath)

	lists := repository.NewJSONPickListRepo(cfg.ListsPath)
	picks := service.NewPickListService(lists, observer)
	if err := picks.Reload(ctx); err != nil {
		if !errors.Is(err, repository.ErrCorruptLists) {
			return fmt.Errorf("loading pick lists: %w", err)
		}
		logger.Warn("pick lists reset to defaults", zap.String("path", lists.Path()), zap.Error(err))
		app.Warnings = append(app.Warnings,
			fmt.Sprintf("файл списков %s повреждён, загружены значения по умолчанию", lists.Path()))
	}

	app.Config = cfg
	app.Logger = logger
	app.PickLists = picks
	app.Inspections = service.NewInspectionService(repository.NewSQLiteInspectionRepo(w.database), observer)

	logger.Debug("configured",
		zap.String("db", cfg.DBPath),
		zap.String("lists", cfg.ListsPath),
		zap.Bool("clear_on_success", cfg.ClearOnSuccess))
	return nil
}

func (w *wiring) close() {
	if w.database != nil {
		if err := w.database.Close(); err != nil && w.logger != nil {
			w.logger.Error("closing database", zap.Error(err))
		}
	}
	if w.logger != nil {
		_ = w.logger.Sync()
	}
}
