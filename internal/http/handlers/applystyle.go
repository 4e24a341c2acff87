package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"roomstyler/internal/imagegen"
)

type applyStyleRequest struct {
	RoomID  string `json:"roomId"`
	StyleID string `json:"styleId"`
	Prompt  string `json:"prompt"`
}

// ApplyStyle builds the generation prompt from the request and performs one
// blocking round trip to the generation service. Identifiers are not checked
// against the store: the caller is trusted to send ids it received from the
// upload endpoints, and the prompt only ever references the style id.
func (a *App) ApplyStyle(w http.ResponseWriter, r *http.Request) {
	var req applyStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "roomId and styleId are required")
		return
	}
	if req.RoomID == "" || req.StyleID == "" {
		a.error(w, http.StatusBadRequest, "roomId and styleId are required")
		return
	}

	instruction := imagegen.BuildInstruction(req.StyleID, req.Prompt)

	ctx := r.Context()
	if a.Config != nil && a.Config.GenTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.GenTimeout)
		defer cancel()
	}

	url, err := a.Generator.GenerateOnce(ctx, instruction)
	if err != nil {
		a.Logger.Error().Err(err).
			Str("room_id", req.RoomID).
			Str("style_id", req.StyleID).
			Msg("image generation failed")
		a.error(w, http.StatusInternalServerError, "Image generation failed")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"url": url})
}
