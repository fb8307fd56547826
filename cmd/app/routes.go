package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	handle := func(method, path string, h http.HandlerFunc) {
		router.Handler(method, path, app.metrics.instrument(path, h))
	}

	handle(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)
	router.Handler(http.MethodGet, "/metrics", app.metrics.handler())

	// navigation and uploads
	handle(http.MethodGet, "/v1/continents", app.continentsHandler)
	handle(http.MethodPost, "/v1/upload", app.uploadHandler)

	// posts
	handle(http.MethodGet, "/v1/posts", app.listPostsHandler)
	handle(http.MethodPost, "/v1/posts", createHandler(app, app.postService.CreatePost))
	handle(http.MethodGet, "/v1/posts/:id", getHandler(app, app.postService.GetPostByID))
	handle(http.MethodPut, "/v1/posts/:id", updateHandler(app, app.postService.UpdatePost))
	handle(http.MethodDelete, "/v1/posts/:id", deleteHandler(app, app.postService.DeletePost))
	handle(http.MethodGet, "/v1/posts/:id/rendered", app.renderedPostHandler)
	handle(http.MethodGet, "/v1/tags", listHandler(app, app.postService.GetTags))
	handle(http.MethodGet, "/v1/tags/:tag/posts", app.postsByTagHandler)

	// hero section
	handle(http.MethodGet, "/v1/hero-settings", singletonGetHandler(app, app.heroService.GetSettings))
	handle(http.MethodPut, "/v1/hero-settings", singletonSaveHandler(app, app.heroService.SaveSettings))
	handle(http.MethodGet, "/v1/hero-favorites", listHandler(app, app.heroService.GetFavorites))
	handle(http.MethodPost, "/v1/hero-favorites", createHandler(app, app.heroService.CreateFavorite))
	handle(http.MethodGet, "/v1/hero-favorites/:id", getHandler(app, app.heroService.GetFavoriteByID))
	handle(http.MethodPut, "/v1/hero-favorites/:id", updateHandler(app, app.heroService.UpdateFavorite))
	handle(http.MethodDelete, "/v1/hero-favorites/:id", deleteHandler(app, app.heroService.DeleteFavorite))
	handle(http.MethodGet, "/v1/hero-tags", listHandler(app, app.heroService.GetTags))
	handle(http.MethodPost, "/v1/hero-tags", createHandler(app, app.heroService.CreateTag))
	handle(http.MethodGet, "/v1/hero-tags/:id", getHandler(app, app.heroService.GetTagByID))
	handle(http.MethodPut, "/v1/hero-tags/:id", updateHandler(app, app.heroService.UpdateTag))
	handle(http.MethodDelete, "/v1/hero-tags/:id", deleteHandler(app, app.heroService.DeleteTag))

	// about page
	handle(http.MethodGet, "/v1/about", singletonGetHandler(app, app.aboutService.GetAboutMe))
	handle(http.MethodPut, "/v1/about", singletonSaveHandler(app, app.aboutService.SaveAboutMe))
	handle(http.MethodGet, "/v1/quick-facts", listHandler(app, app.aboutService.GetQuickFacts))
	handle(http.MethodPost, "/v1/quick-facts", createHandler(app, app.aboutService.CreateQuickFact))
	handle(http.MethodGet, "/v1/quick-facts/:id", getHandler(app, app.aboutService.GetQuickFactByID))
	handle(http.MethodPut, "/v1/quick-facts/:id", updateHandler(app, app.aboutService.UpdateQuickFact))
	handle(http.MethodDelete, "/v1/quick-facts/:id", deleteHandler(app, app.aboutService.DeleteQuickFact))
	handle(http.MethodGet, "/v1/faqs", listHandler(app, app.aboutService.GetFAQs))
	handle(http.MethodPost, "/v1/faqs", createHandler(app, app.aboutService.CreateFAQ))
	handle(http.MethodGet, "/v1/faqs/:id", getHandler(app, app.aboutService.GetFAQByID))
	handle(http.MethodPut, "/v1/faqs/:id", updateHandler(app, app.aboutService.UpdateFAQ))
	handle(http.MethodDelete, "/v1/faqs/:id", deleteHandler(app, app.aboutService.DeleteFAQ))

	// locations
	handle(http.MethodGet, "/v1/locations", listHandler(app, app.locationService.GetLocations))
	handle(http.MethodPost, "/v1/locations", createHandler(app, app.locationService.CreateLocation))
	handle(http.MethodGet, "/v1/locations/:id", getHandler(app, app.locationService.GetLocationByID))
	handle(http.MethodPut, "/v1/locations/:id", updateHandler(app, app.locationService.UpdateLocation))
	handle(http.MethodDelete, "/v1/locations/:id", deleteHandler(app, app.locationService.DeleteLocation))

	// camera roll
	handle(http.MethodGet, "/v1/camera-roll", app.listMediaHandler)
	handle(http.MethodPost, "/v1/camera-roll", app.createMediaHandler)
	handle(http.MethodGet, "/v1/camera-roll/:id", app.getMediaHandler)
	handle(http.MethodPut, "/v1/camera-roll/:id", app.updateMediaHandler)
	handle(http.MethodDelete, "/v1/camera-roll/:id", app.deleteMediaHandler)

	// newsletter
	handle(http.MethodGet, "/v1/newsletter", listHandler(app, app.newsletterService.GetSubscribers))
	handle(http.MethodPost, "/v1/newsletter", createHandler(app, app.newsletterService.Subscribe))
	handle(http.MethodPost, "/v1/newsletter/unsubscribe", app.unsubscribeHandler)
	handle(http.MethodGet, "/v1/newsletter/:id", getHandler(app, app.newsletterService.GetSubscriberByID))
	handle(http.MethodPut, "/v1/newsletter/:id", updateHandler(app, app.newsletterService.UpdateSubscriber))
	handle(http.MethodDelete, "/v1/newsletter/:id", deleteHandler(app, app.newsletterService.DeleteSubscriber))

	return app.recoverPanic(app.logRequest(app.enableCORS(app.rateLimit(router))))
}
