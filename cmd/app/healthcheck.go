package main

import "net/http"

// healthCheckHandler reports the build and whether welcome e-mails are being sent.
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	messaging := "disabled"
	if app.broker != nil {
		messaging = "enabled"
	}

	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Environment,
			"version":     app.config.Version,
			"messaging":   messaging,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
