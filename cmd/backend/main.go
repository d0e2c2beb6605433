package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"spinkit/checker"
	"spinkit/config"
	"spinkit/logger"
	"spinkit/preview"
	"spinkit/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func statusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := checker.CheckSystem()
	if err != nil {
		logger.Error("Failed to get system status: %v", err)
		http.Error(w, "Failed to get system status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

func newHandler(cfg config.Config) http.Handler {
	handler := &app.Handler{
		Name:        cfg.Name,
		Description: "Loading indicator gallery",
		Version:     cfg.Version,
		RawHeaders: []string{
			`<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">`,
			`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Rounded:opsz,wght,FILL,GRAD@24,400,0,0" />`,
		},
		LoadingLabel: "",
		Styles: []string{
			"/web/app.css",
			ui.StylesheetPath,
		},
		Env: app.Environment{
			"SPINNER_NAME": cfg.Name,
		},
	}

	// Register the component on the server side too for correct routing generation
	app.Route("/", &ui.Gallery{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ui.StylesheetPath, preview.StylesheetHandler)
	mux.HandleFunc("GET /api/spinner", preview.Handler)
	mux.HandleFunc("GET /api/presets", preview.PresetsHandler(cfg.Presets))
	mux.HandleFunc("GET /api/status", statusHandler)
	mux.Handle("/", handler)
	return mux
}

func run(envPath string) error {
	cfg, err := config.Load(envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(cfg.Debug)
	if err != nil {
		return err
	}
	logger.Init(l)

	checker.Version = cfg.Version

	logger.Info("Starting %s on %s...", cfg.Name, cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, newHandler(cfg)); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func main() {
	if err := run(".env"); err != nil {
		logger.Error("%v", err)
		logger.Sync()
		os.Exit(1)
	}
}
