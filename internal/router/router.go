package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/likeboard/internal/api/middlewares"
	"github.com/talx-hub/likeboard/internal/api/response"
	"github.com/talx-hub/likeboard/internal/model"
)

type CustomRouter struct {
	router   *chi.Mux
	logger   *slog.Logger
	verifier middlewares.TokenVerifier
}

func New(verifier middlewares.TokenVerifier, log *slog.Logger) *CustomRouter {
	router := &CustomRouter{
		router:   chi.NewRouter(),
		logger:   log,
		verifier: verifier,
	}

	return router
}

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	UpdatePassword(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetUser(w http.ResponseWriter, r *http.Request)
	Like(w http.ResponseWriter, r *http.Request)
	Unlike(w http.ResponseWriter, r *http.Request)
	MostLiked(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	AuthHandler
	UserHandler
	HealthHandler
}

func (cr *CustomRouter) SetRouter(h Handler) {
	authenticate := middlewares.Authentication(cr.verifier)
	jsonOnly := middleware.AllowContentType(model.ContentTypeJSON)

	cr.router.Use(middlewares.Logging(cr.logger))
	cr.router.Use(middleware.Recoverer)

	cr.router.Group(func(r chi.Router) {
		r.Use(jsonOnly)
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})

	cr.router.Route("/me", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/", h.Me)
		r.With(jsonOnly).Post("/update-password", h.UpdatePassword)
	})

	cr.router.Route("/user/{id}", func(r chi.Router) {
		r.Use(middlewares.PathID("id"))
		r.Get("/", h.GetUser)
		r.With(authenticate).Post("/like", h.Like)
		r.With(authenticate).Post("/unlike", h.Unlike)
	})

	cr.router.Get("/most-liked", h.MostLiked)
	cr.router.Get("/ping", h.Ping)

	cr.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusNotFound,
			http.StatusText(http.StatusNotFound))
	})
	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, http.StatusMethodNotAllowed,
			http.StatusText(http.StatusMethodNotAllowed))
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
