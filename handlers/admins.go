// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/minion-meister/middleware"
	"github.com/danielhkuo/minion-meister/models"
	"github.com/danielhkuo/minion-meister/store"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// List handles GET /servers/{server}/admins
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	names, err := retry(r.Context(), func() ([]string, error) {
		return h.store.ListAdmins(r.Context(), serverID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminsResponse{Admins: names})
}

// Add handles POST /servers/{server}/admins
func (h *AdminHandler) Add(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	var req models.AddAdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	err := retryVoid(r.Context(), func() error {
		return h.store.AddAdmin(r.Context(), serverID, req.UserID, req.Name)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	slog.Info("admin added", "server_id", serverID, "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: fmt.Sprintf("User %s is now an admin.", req.Name),
	})
}

// Remove handles DELETE /servers/{server}/admins/{user}
func (h *AdminHandler) Remove(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	name, err := retry(r.Context(), func() (string, error) {
		return h.store.RemoveAdmin(r.Context(), serverID, userID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}
	if name == "" {
		// Admins need not be participants, so there may be no name on record.
		name = strconv.FormatInt(userID, 10)
	}

	slog.Info("admin removed", "server_id", serverID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("User %s is no longer an admin.", name),
	})
}

// IsAdmin handles GET /servers/{server}/admins/{user}
func (h *AdminHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	admin, err := retry(r.Context(), func() (bool, error) {
		return h.store.IsAdmin(r.Context(), serverID, userID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IsAdminResponse{Admin: admin})
}
