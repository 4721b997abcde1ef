// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/minion-meister/middleware"
	"github.com/danielhkuo/minion-meister/models"
	"github.com/danielhkuo/minion-meister/store"
)

type RosterHandler struct {
	store *store.Store
}

func NewRosterHandler(st *store.Store) *RosterHandler {
	return &RosterHandler{store: st}
}

// Add handles POST /servers/{server}/participants
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	var req models.AddParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	err := retryVoid(r.Context(), func() error {
		return h.store.AddParticipant(r.Context(), serverID, req.UserID, req.Name)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	slog.Info("participant added", "server_id", serverID, "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: fmt.Sprintf("User %s is now participating.", req.Name),
	})
}

// Remove handles DELETE /servers/{server}/participants/{user}
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	name, err := retry(r.Context(), func() (string, error) {
		return h.store.RemoveParticipant(r.Context(), serverID, userID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	slog.Info("participant removed", "server_id", serverID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("User %s is no longer participating.", name),
	})
}

// List handles GET /servers/{server}/participants
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	names, err := retry(r.Context(), func() ([]string, error) {
		return h.store.ListParticipants(r.Context(), serverID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantsResponse{
		Participants: names,
	})
}

// IsParticipant handles GET /servers/{server}/participants/{user}
func (h *RosterHandler) IsParticipant(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	participant, err := retry(r.Context(), func() (bool, error) {
		return h.store.IsParticipant(r.Context(), serverID, userID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IsParticipantResponse{
		Participant: participant,
	})
}

// Winner handles POST /servers/{server}/winner
func (h *RosterHandler) Winner(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	userID, err := retry(r.Context(), func() (int64, error) {
		return h.store.SelectWinner(r.Context(), serverID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	slog.Info("winner selected", "server_id", serverID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		UserID:  userID,
		Message: fmt.Sprintf("The Minion Meister is now <@%d>", userID),
	})
}
