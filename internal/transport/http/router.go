package http

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func NewRouter(h *Handlers) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Health).Methods("GET")
	r.HandleFunc("/user/{username}/leagues", h.GetLeagues).Methods("GET")
	r.HandleFunc("/user/{username}/lineups/{week:[0-9]+}", h.GetLineups).Methods("GET")
	r.HandleFunc("/players/search", h.SearchPlayers).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.AllowCredentials(),
	)
	return cors(r)
}
