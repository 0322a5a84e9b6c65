package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows browser clients (the chat widget) to call the API from
// another origin.
var CORS = cors.Handler(cors.Options{
	AllowedOrigins:   []string{"*"},
	AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
	AllowCredentials: false,
	MaxAge:           300,
})

var _ func(http.Handler) http.Handler = CORS
