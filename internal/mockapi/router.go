// Package mockapi is an in-memory HTTP backend serving the tratativas REST
// endpoints, for local development and tests.
package mockapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter creates the HTTP router for store.
func NewRouter(store *Store) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(Recovery)
	router.Use(AccessLog)

	h := NewHandler(store)

	router.HandleFunc("/dashboard/stats", h.Stats).Methods(http.MethodGet)

	router.HandleFunc("/tratativas", h.List).Methods(http.MethodGet)
	router.HandleFunc("/tratativas", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/tratativas/{id}", h.Get).Methods(http.MethodGet)
	router.HandleFunc("/tratativas/{id}", h.Update).Methods(http.MethodPatch)
	router.HandleFunc("/tratativas/{id}", h.Delete).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, CodeNotFound, "Rota não encontrada")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Método não permitido")
	})

	return router
}
