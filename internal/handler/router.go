package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"twitter-api/internal/repository"
)

// NewRouter wires every route of the service onto a chi router.
func NewRouter(users repository.UserStore, tweets repository.TweetStore, corsOrigin string) http.Handler {
	uh := NewUserHandler(users)
	th := NewTweetHandler(tweets, users)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/", home)

	// Users
	r.Post("/signup", uh.Signup)
	r.Post("/login", uh.Login)
	r.Get("/users", uh.List)
	r.Get("/users/{id}", uh.Get)
	r.Delete("/users/{id}/delete", uh.Delete)
	r.Put("/users/{id}/update", uh.Update)

	// Tweets
	r.Post("/post", th.Post)
	r.Get("/tweets", th.List)
	r.Get("/tweets/{id}", th.Get)
	r.Delete("/tweets/{id}", th.Delete)
	r.Put("/tweets/{id}", th.Update)

	return r
}

// home is a static status payload, not a tweet list.
func home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"Twitter API": "Working"})
}
