package handlers

import (
	"net/http"

	"roomstyler/internal/storage"
)

// ListStyles returns every identifier currently in the styles collection.
// There is deliberately no rooms equivalent: rooms are only ever referenced
// by the id returned at upload time.
func (a *App) ListStyles(w http.ResponseWriter, r *http.Request) {
	ids, err := a.Store.List(r.Context(), storage.CollectionStyles)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list styles")
		a.error(w, http.StatusInternalServerError, "Could not list styles")
		return
	}
	a.json(w, http.StatusOK, map[string][]string{"styles": ids})
}
