package handlers

import (
	"io"
	"net/http"

	"roomstyler/internal/storage"
)

// uploadFieldName is the multipart field the clients send the file under.
const uploadFieldName = "image"

func (a *App) UploadStyle(w http.ResponseWriter, r *http.Request) {
	a.upload(w, r, storage.CollectionStyles)
}

func (a *App) UploadRoom(w http.ResponseWriter, r *http.Request) {
	a.upload(w, r, storage.CollectionRooms)
}

// upload stores the single uploaded file and answers with its identifier. A
// request without a file part, including a non-multipart body, gets the same
// 400 the clients already handle.
func (a *App) upload(w http.ResponseWriter, r *http.Request, collection storage.Collection) {
	file, _, err := r.FormFile(uploadFieldName)
	if err != nil {
		a.error(w, http.StatusBadRequest, "Image is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		a.Logger.Error().Err(err).Str("collection", string(collection)).Msg("failed to read upload")
		a.error(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	id, err := a.Store.Store(r.Context(), collection, data)
	if err != nil {
		a.Logger.Error().Err(err).Str("collection", string(collection)).Msg("failed to store upload")
		a.error(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"id": id})
}
