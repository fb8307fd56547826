package main

import (
	"net/http"

	"github.com/sushihentaime/wayfarer/internal/newsletterservice"
)

func (app *application) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var input newsletterservice.UnsubscribeInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.newsletterService.Unsubscribe(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, successEnvelope, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
