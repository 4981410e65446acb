package router

import (
	"database/sql"
	"net/http"

	jokeHandler "punchline/internal/joke"
	"punchline/internal/joke/repository"
	"punchline/internal/joke/service"
	"punchline/middleware"
	"punchline/socket"
)

func Setup(db *sql.DB, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	// WebSocket feed
	wsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFrom(r.Context())
		socket.ServeWs(hub, w, r, userID)
	})
	mux.Handle("/ws/feed", middleware.AuthMiddleware(wsHandler))

	// REST API
	jokeRepo := repository.NewJokeRepository(db)
	jokeService := service.NewJokeService(jokeRepo, hub)
	handler := jokeHandler.NewJokeHandler(jokeService)
	auth := middleware.AuthMiddleware
	optional := middleware.OptionalAuthMiddleware

	mux.Handle("/api/jokes", auth(http.HandlerFunc(handler.ListJokes)))
	mux.Handle("/api/jokes/view", optional(http.HandlerFunc(handler.GetJoke)))
	mux.Handle("/api/jokes/random", optional(http.HandlerFunc(handler.RandomJoke)))
	mux.Handle("/api/jokes/new", auth(http.HandlerFunc(handler.NewJokeForm)))
	mux.Handle("/api/jokes/create", auth(http.HandlerFunc(handler.CreateJoke)))
	mux.Handle("/api/jokes/preview", auth(http.HandlerFunc(handler.PreviewJoke)))
	// Delete resolves identity optionally so unsupported intents can be
	// rejected before the identity requirement is enforced.
	mux.Handle("/api/jokes/delete", optional(http.HandlerFunc(handler.DeleteJoke)))

	return middleware.CORSMiddleware(mux)
}
