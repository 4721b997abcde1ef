// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/minion-meister/middleware"
	"github.com/danielhkuo/minion-meister/models"
	"github.com/danielhkuo/minion-meister/store"
)

// defaultHistoryLimit caps history listings when no limit is given.
const defaultHistoryLimit = 5

type HistoryHandler struct {
	store *store.Store
}

func NewHistoryHandler(st *store.Store) *HistoryHandler {
	return &HistoryHandler{store: st}
}

// List handles GET /servers/{server}/history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := retry(r.Context(), func() ([]store.HistoryEntry, error) {
		return h.store.ListHistory(r.Context(), serverID, limit)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	records := make([]models.HistoryRecord, 0, len(entries))
	for _, e := range entries {
		rec := models.HistoryRecord{Name: e.Name, Date: e.Date}
		// Backdated entries may carry dates no calendar ever had; those
		// render without a relative time.
		if t, err := time.Parse(store.DateFormat, e.Date); err == nil {
			rec.Ago = humanize.Time(t)
		}
		records = append(records, rec)
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{History: records})
}

// Counts handles GET /servers/{server}/counts
func (h *HistoryHandler) Counts(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	entries, err := retry(r.Context(), func() ([]store.CountEntry, error) {
		return h.store.ListCounts(r.Context(), serverID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	records := make([]models.CountRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, models.CountRecord{Name: e.Name, Count: e.Count})
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountsResponse{Counts: records})
}

// Insert handles POST /servers/{server}/history
func (h *HistoryHandler) Insert(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	var req models.InsertHistoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !IsDate(req.Date) {
		middleware.ErrorResponse(w, http.StatusBadRequest, invalidDateMessage(req.Date))
		return
	}

	// Unknown users are registered on the way in so the history join
	// can render them.
	participant, err := retry(r.Context(), func() (bool, error) {
		return h.store.IsParticipant(r.Context(), serverID, req.UserID)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}
	if !participant {
		if req.Name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "name is required for unregistered users")
			return
		}
		err := retryVoid(r.Context(), func() error {
			return h.store.AddParticipant(r.Context(), serverID, req.UserID, req.Name)
		})
		if err != nil {
			renderStoreError(w, err)
			return
		}
	}

	err = retryVoid(r.Context(), func() error {
		return h.store.InsertHistory(r.Context(), serverID, req.UserID, req.Date)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	slog.Info("history entry inserted", "server_id", serverID, "user_id", req.UserID, "date", req.Date)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "History entry inserted.",
	})
}

// Delete handles DELETE /servers/{server}/history
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serverID, ok := pathID(w, r, "server")
	if !ok {
		return
	}

	var req models.DeleteHistoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !IsDate(req.Date) {
		middleware.ErrorResponse(w, http.StatusBadRequest, invalidDateMessage(req.Date))
		return
	}

	err := retryVoid(r.Context(), func() error {
		return h.store.DeleteHistory(r.Context(), serverID, req.UserID, req.Date)
	})
	if err != nil {
		renderStoreError(w, err)
		return
	}

	slog.Info("history entry deleted", "server_id", serverID, "user_id", req.UserID, "date", req.Date)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "History entry deleted.",
	})
}
