package main

import (
	"net/http"

	"github.com/sushihentaime/wayfarer/internal/mediaservice"
	"github.com/sushihentaime/wayfarer/internal/storageservice"
)

type deleteMediaRequest struct {
	URL string `json:"url"`
}

func (app *application) listMediaHandler(w http.ResponseWriter, r *http.Request) {
	typ, err := app.readMediaType(r)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	media, err := app.mediaService.GetMedia(r.Context(), typ)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, media, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createMediaHandler takes the type from the body, falling back to the ?type= query parameter.
func (app *application) createMediaHandler(w http.ResponseWriter, r *http.Request) {
	var input mediaservice.MediaInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	if input.Type == "" {
		input.Type = r.URL.Query().Get("type")
	}

	media, err := app.mediaService.CreateMedia(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, media, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readMediaTarget reads the id and the required type of a single camera roll entry.
func (app *application) readMediaTarget(w http.ResponseWriter, r *http.Request) (mediaservice.MediaType, int64, bool) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return "", 0, false
	}

	typ, err := mediaservice.ParseMediaType(r.URL.Query().Get("type"))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return "", 0, false
	}

	return typ, id, true
}

func (app *application) getMediaHandler(w http.ResponseWriter, r *http.Request) {
	typ, id, ok := app.readMediaTarget(w, r)
	if !ok {
		return
	}

	media, err := app.mediaService.GetMediaByID(r.Context(), typ, id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, media, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateMediaHandler(w http.ResponseWriter, r *http.Request) {
	typ, id, ok := app.readMediaTarget(w, r)
	if !ok {
		return
	}

	var input mediaservice.MediaInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	media, err := app.mediaService.UpdateMedia(r.Context(), typ, id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, media, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteMediaHandler(w http.ResponseWriter, r *http.Request) {
	typ, id, ok := app.readMediaTarget(w, r)
	if !ok {
		return
	}

	var input deleteMediaRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.mediaService.DeleteMedia(r.Context(), typ, id, input.URL)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, successEnvelope, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) uploadHandler(w http.ResponseWriter, r *http.Request) {
	var input storageservice.UploadRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	target, err := app.storage.RequestUploadTarget(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, target, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
