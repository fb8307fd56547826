package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/wayfarer/internal/postservice"
)

func (app *application) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := postservice.ListFilter{
		Tags:  query["tag"],
		Query: query.Get("q"),
	}

	posts, err := app.postService.GetPosts(r.Context(), filter)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, posts, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) renderedPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.postService.GetRenderedPost(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, post, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) postsByTagHandler(w http.ResponseWriter, r *http.Request) {
	tag := httprouter.ParamsFromContext(r.Context()).ByName("tag")

	posts, err := app.postService.GetPostsByTag(r.Context(), tag)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, posts, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) continentsHandler(w http.ResponseWriter, r *http.Request) {
	continents, err := app.postService.GetGuidePostsByContinent(r.Context())
	if err != nil {
		app.logError(r, err)
		app.errorResponse(w, r, http.StatusInternalServerError, "failed to fetch continent data")
		return
	}

	err = app.writeJSON(w, http.StatusOK, continents, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
