package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/database/destinations"
	"github.com/mrlokans/wayfarer/internal/database/users"
	"github.com/mrlokans/wayfarer/internal/seed"
)

// SeedCommand inserts the destination catalogue and the demo account into
// the configured database.
type SeedCommand struct {
	DatabaseURL  string
	DemoEmail    string
	DemoPassword string
	SkipDemo     bool

	cfg *config.Config
	Out io.Writer
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{cfg: cfg, Out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabaseURL, "db", cmd.cfg.Database.URL, "SQLite file path or postgres:// URL to seed")
	fs.StringVar(&cmd.DemoEmail, "demo-email", cmd.cfg.Seed.DemoEmail, "Email of the demo account")
	fs.StringVar(&cmd.DemoPassword, "demo-password", cmd.cfg.Seed.DemoPassword, "Password of the demo account")
	fs.BoolVar(&cmd.SkipDemo, "skip-demo", false, "Only seed destinations")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert missing destinations and the demo user. Safe to run repeatedly.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.DatabaseURL == "" {
		return fmt.Errorf("required flag -db not provided")
	}
	if !cmd.SkipDemo && (cmd.DemoEmail == "" || cmd.DemoPassword == "") {
		return fmt.Errorf("-demo-email and -demo-password are required unless -skip-demo is set")
	}

	return nil
}

func (cmd *SeedCommand) Run(ctx context.Context) error {
	dbCfg := cmd.cfg.Database
	dbCfg.URL = cmd.DatabaseURL

	db, err := database.NewDatabase(dbCfg)
	if err != nil {
		return err
	}
	defer db.Close()

	demo := cmd.cfg.Seed
	demo.DemoEmail = cmd.DemoEmail
	demo.DemoPassword = cmd.DemoPassword
	if cmd.SkipDemo {
		demo.DemoEmail = ""
	}

	seeder := seed.NewSeeder(
		destinations.NewRepository(db.DB),
		users.NewRepository(db.DB),
		demo,
		cmd.cfg.Auth.BcryptCost,
	)

	result, err := seeder.Run(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Destinations created: %d\n", result.DestinationsCreated)
	fmt.Fprintf(cmd.Out, "Demo user created:    %t\n", result.DemoUserCreated)
	return nil
}
