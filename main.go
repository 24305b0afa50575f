package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"eddington/internal/config"
	"eddington/internal/importer"
	"eddington/internal/service"
	"eddington/internal/store"
	"eddington/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath, err = store.DefaultPath()
		if err != nil {
			return err
		}
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// CSV import mode: eddington import <file.csv>
	if len(os.Args) > 1 && os.Args[1] == "import" {
		if len(os.Args) < 3 {
			return errors.New("usage: eddington import <file.csv>")
		}
		count, err := importer.ImportFile(db, os.Args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d activities.\n", count)
		return nil
	}

	// Launch TUI
	querySvc := service.NewQueryService(db)
	app := tui.NewApp(querySvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
