package main

import (
	"context"
	"net/http"
)

// The helpers below serve the entities whose handlers differ only in the service call.

func listHandler[T any](app *application, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, items, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func getHandler[T any](app *application, get func(context.Context, int64) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.readIDParam(r, "id")
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		item, err := get(r.Context(), id)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, item, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func createHandler[In, T any](app *application, create func(context.Context, *In) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input In

		err := app.parseJSON(w, r, &input)
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		item, err := create(r.Context(), &input)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, item, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func updateHandler[In, T any](app *application, update func(context.Context, int64, *In) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.readIDParam(r, "id")
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		var input In

		err = app.parseJSON(w, r, &input)
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		item, err := update(r.Context(), id, &input)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, item, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func deleteHandler(app *application, del func(context.Context, int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.readIDParam(r, "id")
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		err = del(r.Context(), id)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, successEnvelope, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

// singletonGetHandler and singletonSaveHandler serve settings rows that have no id.

func singletonGetHandler[T any](app *application, get func(context.Context) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := get(r.Context())
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, item, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func singletonSaveHandler[In, T any](app *application, save func(context.Context, *In) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input In

		err := app.parseJSON(w, r, &input)
		if err != nil {
			app.badRequestErrorResponse(w, r, err)
			return
		}

		item, err := save(r.Context(), &input)
		if err != nil {
			app.serviceErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, item, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}
