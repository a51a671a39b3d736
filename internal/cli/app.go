// Package cli implements the interactive terminal front-end: a REPL over the
// tracker service with prompt-driven command handlers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/raidtracker/internal/backup"
	"github.com/dmitrijs2005/raidtracker/internal/config"
	"github.com/dmitrijs2005/raidtracker/internal/logging"
	"github.com/dmitrijs2005/raidtracker/internal/services"
	"github.com/dmitrijs2005/raidtracker/internal/storage"
)

// App wires the service layer to the terminal.
type App struct {
	config  *config.Config
	service *services.Tracker
	store   *storage.Store
	backups backup.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the database, applies migrations and wires the tracker
// service and the optional backup store.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	backups, err := backup.Open(ctx, c.BackupOptions())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("opening backup store: %w", err)
	}

	return &App{
		config:  c,
		service: services.NewTracker(store.Profiles, log),
		store:   store,
		backups: backups,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// getStatus renders the prompt status: the active profile's name.
func (a *App) getStatus(ctx context.Context) string {
	p, err := a.service.ActiveProfile(ctx)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s)", p.Name)
}

// Run loads the profiles and enters the REPL. The database handle is
// released on exit.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.store.Close() }()

	if err := a.service.Load(ctx); err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(a.out, "Raid tracker CLI (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, scanner)
	return nil
}

// printErr reports a handler failure to the user without aborting the REPL.
func (a *App) printErr(err error) {
	fmt.Fprintln(a.out, "Error:", err.Error())
}
