package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"venuebook/internal/adapters/console"
	"venuebook/internal/adapters/ical"
	"venuebook/internal/adapters/ticket"
	"venuebook/internal/application"
	"venuebook/internal/config"
	"venuebook/internal/infrastructure/database"
	"venuebook/internal/infrastructure/i18n"
	"venuebook/pkg/tz"
)

func main() {
	app := &cli.App{
		Name:   "venuebook",
		Usage:  "Schedule campus events and allocate venues.",
		Action: runConsole,
		Commands: []*cli.Command{
			consoleCommand(),
			roomsCommand(),
			exportCommand(),
			migrateCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.WithError(err).Error("❌ venuebook failed")
		os.Exit(1)
	}
}

// setup loads the configuration and applies the log level.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("⚠️ Unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	return cfg, nil
}

func consoleCommand() *cli.Command {
	return &cli.Command{
		Name:   "console",
		Usage:  "Run the interactive organizer/participant menu (default).",
		Action: runConsole,
	}
}

func runConsole(c *cli.Context) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	st, err := openStores(c.Context, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	events := application.NewEventService(st.events, catalog)
	participants := application.NewParticipantService(st.participants, st.events)

	var opts []console.Option
	if cfg.TicketsDir != "" {
		opts = append(opts, console.WithTickets(ticket.NewIssuer(cfg.TicketsDir)))
	}
	ui := console.New(events, participants, i18n.NewTranslator("en"), cfg.Locale, opts...)
	return ui.Run(c.Context)
}

func roomsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rooms",
		Usage: "Print the room catalog used for allocation.",
		Action: func(c *cli.Context) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROOM\tCAPACITY")
			for _, r := range catalog.Rooms() {
				fmt.Fprintf(w, "%s\t%d\n", r.ID, r.Capacity)
			}
			return w.Flush()
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write all scheduled events as an iCalendar file.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "events.ics", Usage: "output file, - for stdout"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			loc, err := tz.Load(cfg.TimeZone)
			if err != nil {
				return err
			}
			st, err := openStores(c.Context, cfg)
			if err != nil {
				return err
			}
			defer st.close()

			events, err := st.events.LoadAll(c.Context)
			if err != nil {
				return err
			}

			out := c.App.Writer
			if path := c.String("out"); path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				defer f.Close()
				out = f
			}
			if err := ical.NewExporter(loc).Write(out, events); err != nil {
				return err
			}
			log.WithFields(log.Fields{"events": len(events), "out": c.String("out")}).Info("✅ Calendar exported")
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the PostgreSQL migrations.",
		Action: func(c *cli.Context) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if cfg.Backend != config.BackendPostgres {
				return fmt.Errorf("migrate needs STORE_BACKEND=postgres, got %q", cfg.Backend)
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	}
}
