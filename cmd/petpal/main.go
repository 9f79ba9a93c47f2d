// Package main implementa el CLI petpal: la misma app que el API, sobre un store local.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"petpal/internal/adapters/storage"
	"petpal/internal/config"
	"petpal/internal/dashboard"
	"petpal/internal/domain/health"
	"petpal/internal/domain/profile"
	"petpal/internal/domain/reminders"
	"petpal/internal/domain/session"
	"petpal/internal/domain/tips"
	"petpal/internal/domain/vets"
	"petpal/internal/platform/logger"
	"petpal/internal/platform/records"
	"petpal/internal/ports/auth"

	"github.com/spf13/cobra"
)

var version = "dev"

var errNotLoggedIn = errors.New("not logged in: run `petpal login <email>` first")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app se arma al primer comando que necesita el store.
type app struct {
	cfgPath   string
	storePath string
	verbose   bool

	log     logger.Logger
	closeFn func() error

	sessions  *session.Manager
	profiles  *profile.Service
	health    *health.Service
	reminders *reminders.Service
	tips      *tips.Service
	vets      *vets.Service
	dash      *dashboard.Dashboard
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "petpal",
		Short: "Pet care companion: profile, health log, reminders and Paw Points",
		Long: `petpal keeps your pet's profile, a health log with advice, daily reminders
that earn Paw Points, and care tips.

Data lives in a local store (default ~/.config/petpal/store.json).
The session is remembered between runs until ` + "`petpal logout`" + `.

Examples:
  petpal login ana@example.com
  petpal profile set --name Milo --breed labrador --age 3
  petpal health log "limping after walk" --weight 45.5
  petpal reminders add "Give Milo his pill" --at 09:00
  petpal reminders done <id>`,
		Version:      version,
		SilenceUsage: true,

		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", os.Getenv(config.EnvPrefix+"CONFIG"), "YAML config file")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "file store path (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logs to stdout")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newPetCmd(a),
		newActionCmd(a),
		newProfileCmd(a),
		newHealthCmd(a),
		newRemindersCmd(a),
		newPointsCmd(a),
		newTipCmd(a),
		newVetsCmd(a),
		newStatusCmd(),
	)
	return root
}

// ready abre el store y restaura la sesión persistida.
func (a *app) ready(ctx context.Context) error {
	if a.dash != nil {
		return nil
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	// memoria no sirve entre ejecuciones
	if a.storePath != "" || cfg.Storage.Backend == config.BackendMemory {
		cfg.Storage.Backend = config.BackendFile
		if a.storePath != "" {
			cfg.Storage.Path = a.storePath
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.log = logger.Nop()
	if a.verbose {
		a.log = logger.New(logger.Options{Level: logger.Debug, Format: logger.ParseFormat(cfg.Log.Format), App: cfg.App})
	}

	store, closeFn, err := storage.Open(ctx, cfg.Storage, nil)
	if err != nil {
		return err
	}
	a.closeFn = closeFn

	recOpts := []records.Option{records.WithLogger(a.log)}
	a.sessions = session.NewManager(store, a.log)
	a.profiles = profile.NewService(profile.NewRepository(store, recOpts...))
	a.health = health.NewService(health.NewRepository(store, recOpts...))
	a.reminders = reminders.NewService(reminders.NewRepository(store, recOpts...), a.profiles, nil)
	a.tips = tips.NewService(a.profiles, nil)
	a.vets = vets.NewService(a.profiles, nil)
	a.dash = dashboard.New(dashboard.Deps{
		Sessions:  a.sessions,
		Profiles:  a.profiles,
		Health:    a.health,
		Reminders: a.reminders,
		Logger:    a.log,
	})

	if _, err := a.dash.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	return nil
}

// user exige sesión.
func (a *app) user(ctx context.Context) (auth.UserContext, error) {
	if err := a.ready(ctx); err != nil {
		return auth.UserContext{}, err
	}
	uc, ok := a.dash.User()
	if !ok {
		return auth.UserContext{}, errNotLoggedIn
	}
	return uc, nil
}

func (a *app) close() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

func printReminders(w io.Writer, items []reminders.Reminder) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No reminders yet.")
		return
	}
	for i, r := range items {
		mark := " "
		if r.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "%d. [%s] %s  %s  (%s)\n", i+1, mark, r.Time, r.Task, r.ID)
	}
}

func printEntries(w io.Writer, items []health.Entry) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No health entries yet.")
		return
	}
	for _, e := range items {
		fmt.Fprintf(w, "%s  %-10s  %s\n", e.Date, e.Weight, e.Symptom)
	}
}

func printProfile(w io.Writer, p profile.Profile) {
	fmt.Fprintf(w, "Name:   %s\n", p.Name)
	fmt.Fprintf(w, "Breed:  %s\n", p.Breed)
	fmt.Fprintf(w, "Age:    %d\n", p.Age)
	if h := strings.TrimSpace(p.Health); h != "" {
		fmt.Fprintf(w, "Health: %s\n", h)
	}
}
