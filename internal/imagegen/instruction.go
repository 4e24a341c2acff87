package imagegen

import "fmt"

// BuildInstruction constructs the full prompt sent to the generation service.
// The style identifier is interpolated as a reference token; the room
// identifier is intentionally absent from the text, matching the contract the
// frontend was built against. A non-empty extra prompt is appended verbatim,
// space-separated.
func BuildInstruction(styleID, extra string) string {
	base := fmt.Sprintf("Make this room look like the style reference (%s).", styleID)
	if extra == "" {
		return base
	}
	return base + " " + extra
}
