// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/minion-meister/handlers"
	"github.com/danielhkuo/minion-meister/middleware"
	"github.com/danielhkuo/minion-meister/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	rosterHandler := handlers.NewRosterHandler(st)
	historyHandler := handlers.NewHistoryHandler(st)
	adminHandler := handlers.NewAdminHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participants and winner selection
	mux.HandleFunc("POST /servers/{server}/participants", middleware.WithLogging(rosterHandler.Add))
	mux.HandleFunc("GET /servers/{server}/participants", middleware.WithLogging(rosterHandler.List))
	mux.HandleFunc("GET /servers/{server}/participants/{user}", middleware.WithLogging(rosterHandler.IsParticipant))
	mux.HandleFunc("DELETE /servers/{server}/participants/{user}", middleware.WithLogging(rosterHandler.Remove))
	mux.HandleFunc("POST /servers/{server}/winner", middleware.WithLogging(rosterHandler.Winner))

	// History and counts
	mux.HandleFunc("GET /servers/{server}/history", middleware.WithLogging(historyHandler.List))
	mux.HandleFunc("POST /servers/{server}/history", middleware.WithLogging(historyHandler.Insert))
	mux.HandleFunc("DELETE /servers/{server}/history", middleware.WithLogging(historyHandler.Delete))
	mux.HandleFunc("GET /servers/{server}/counts", middleware.WithLogging(historyHandler.Counts))

	// Admins
	mux.HandleFunc("GET /servers/{server}/admins", middleware.WithLogging(adminHandler.List))
	mux.HandleFunc("POST /servers/{server}/admins", middleware.WithLogging(adminHandler.Add))
	mux.HandleFunc("GET /servers/{server}/admins/{user}", middleware.WithLogging(adminHandler.IsAdmin))
	mux.HandleFunc("DELETE /servers/{server}/admins/{user}", middleware.WithLogging(adminHandler.Remove))

	// Keep-alive root for uptime pingers
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I'm alive"))
	})

	return mux
}
