package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lexterm/internal/api"
	"lexterm/internal/authstore"
	"lexterm/internal/config"
	"lexterm/internal/trace"
	"lexterm/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: lexterm.yaml, ~/.config/lexterm/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexterm: %v\n", err)
		os.Exit(1)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "lexterm: config: %v\n", e)
		}
		os.Exit(1)
	}

	ctx := context.Background()
	exporter, err := trace.NewExporter(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexterm: tracing disabled: %v\n", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = exporter.Shutdown(shutdownCtx)
	}()

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		api.WithTracer(exporter),
	)

	store, err := authstore.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexterm: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewAppModel(client, store, cfg.UI.Theme).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lexterm: %v\n", err)
		os.Exit(1)
	}
}
