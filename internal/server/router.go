package server

import (
	"net/http"
)

// Route mounts the contact endpoint and a health probe.
func Route(contact http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/contact", contact)
	mux.Handle("/healthz", NewHealthHandler())
	return mux
}

func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
