package handlers

import (
	"encoding/json"
	"net/http"

	"roomstyler/internal/imagegen"
	"roomstyler/internal/infra"
	"roomstyler/internal/storage"
)

// App carries the dependencies every handler needs. It is constructed once in
// main and injected into the router; handlers hold no package-level state.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Store     *storage.FileStore
	Generator imagegen.Generator
}

func NewApp(cfg *infra.Config, logger infra.Logger, store *storage.FileStore, gen imagegen.Generator) *App {
	return &App{Config: cfg, Logger: logger, Store: store, Generator: gen}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the uniform failure body: a single error string, nothing else.
func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
