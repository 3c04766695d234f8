// Package main implements the database migration utility for the call record store.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/config"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/infrastructure/migrate"
)

const (
	defaultMigrationsPath = "./migrations"
	defaultMigrateSteps   = 0
	defaultRollbackSteps  = 1
)

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file, used when DATABASE_URL is unset")
	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.IntVar(&steps, "steps", defaultMigrateSteps, "Number of migrations to apply or roll back (up: 0 applies all)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a command: up, down, or version")
	}
	command := args[0]

	databaseURL, err := resolveDatabaseURL(configPath)
	if err != nil {
		log.Fatal(err)
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	})

	switch command {
	case "up":
		if steps > 0 {
			err = runner.Steps(steps)
		} else {
			err = runner.Run()
		}
		if err != nil {
			log.Fatalf("Failed to run migrations up: %v", err)
		}
		reportVersion(runner, "Successfully migrated to version %d")

	case "down":
		if steps <= 0 {
			steps = defaultRollbackSteps
		}
		if err := runner.Steps(-steps); err != nil {
			log.Fatalf("Failed to run migrations down: %v", err)
		}
		reportVersion(runner, "Successfully rolled back to version %d")

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		log.Fatalf("Unknown command: %s. Use 'up', 'down', or 'version'", command)
	}
}

// resolveDatabaseURL prefers DATABASE_URL and falls back to the server configuration.
func resolveDatabaseURL(configPath string) (string, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL is unset and configuration could not be loaded: %w", err)
	}
	return cfg.Database.GetDSN(), nil
}

func reportVersion(runner *migrate.Runner, format string) {
	version, dirty, err := runner.Version()
	if err != nil {
		log.Printf("Error getting migration version: %v", err)
		return
	}
	if dirty {
		log.Printf("WARNING: Database is in dirty state at version %d", version)
		return
	}
	log.Printf(format, version)
}
