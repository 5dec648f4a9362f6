// Command seed prepares a store with a sample item and an admin account.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/drakeshop/inventory-api/internal/app"
	"github.com/drakeshop/inventory-api/internal/core/domain"
	"github.com/drakeshop/inventory-api/internal/pkg/config"
	"github.com/drakeshop/inventory-api/pkg/logger"
)

var sampleItem = domain.ItemPayload{
	Name:        "Drake",
	Description: "En förödande varelse!",
	Price:       14.90,
	ImageURL:    "No url",
	Amount:      100,
}

func main() {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	username := fs.String("username", "mmbullar", "admin username")
	password := fs.String("password", "", "admin password (default $SEED_ADMIN_PASSWORD)")
	reset := fs.Bool("reset", false, "drop all items and users before seeding")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(*username, *password, *reset); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(username, password string, reset bool) error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if password == "" {
		password = os.Getenv("SEED_ADMIN_PASSWORD")
	}
	if password == "" {
		return errors.New("admin password required: pass -password or set SEED_ADMIN_PASSWORD")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "inventory-seed",
	})

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer application.Close(ctx)

	return seed(ctx, application, log, username, password, reset)
}

// seed is safe to repeat: the sample item and the admin user are each created
// only when missing.
func seed(ctx context.Context, application *app.App, log zerolog.Logger, username, password string, reset bool) error {
	if reset {
		if err := application.Reset(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		log.Info().Msg("stores reset")
	}

	if err := seedItem(ctx, application, log); err != nil {
		return err
	}

	userID, err := application.Users.CreateUser(ctx, username, password)
	if errors.Is(err, domain.ErrUserExists) {
		log.Warn().Str("username", username).Msg("admin user already exists, skipped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Info().Int64("user_id", userID).Str("username", username).Msg("admin user created")
	return nil
}

func seedItem(ctx context.Context, application *app.App, log zerolog.Logger) error {
	items, err := application.Items.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	for _, it := range items {
		if it.Name == sampleItem.Name {
			log.Warn().Int64("item_id", it.ID).Str("name", it.Name).Msg("sample item already exists, skipped")
			return nil
		}
	}

	itemID, err := application.Items.CreateItem(ctx, sampleItem)
	if err != nil {
		return fmt.Errorf("create sample item: %w", err)
	}
	log.Info().Int64("item_id", itemID).Str("name", sampleItem.Name).Msg("sample item created")
	return nil
}
