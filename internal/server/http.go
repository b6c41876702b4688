package server

import (
	"net/http"

	. "ClimbArena/internal/game"
)

/* ------------------------------- HTTP ------------------------------- */

func newMux(h *Hub, store ProfileStore, tuning Tuning) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(h, store, tuning, w, r)
	})
	return mux
}

func startServer(h *Hub, store ProfileStore, tuning Tuning, addr string) error {
	return http.ListenAndServe(addr, newMux(h, store, tuning))
}
