// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cenkalti/backoff/v5"

	"github.com/danielhkuo/minion-meister/middleware"
	"github.com/danielhkuo/minion-meister/store"
)

// storeRetries bounds how often a storage-unavailable failure is retried
// before the request gives up with 503.
const storeRetries = 3

// retry runs a store operation, retrying with exponential backoff while it
// fails with KindStorageUnavailable. Taxonomy errors are definitive answers
// and return immediately.
func retry[T any](ctx context.Context, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		v, err := op()
		if err != nil && store.KindOf(err) != store.KindStorageUnavailable {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(storeRetries))
}

func retryVoid(ctx context.Context, op func() error) error {
	_, err := retry(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}

// renderStoreError maps a store error kind onto an HTTP status and the
// user-facing message. The store never formats text; this switch is the
// single place where its kinds become words.
func renderStoreError(w http.ResponseWriter, err error) {
	var se *store.Error
	if !errors.As(err, &se) {
		slog.Error("unexpected store failure", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	switch se.Kind {
	case store.KindAlreadyParticipant:
		middleware.ErrorResponse(w, http.StatusConflict,
			fmt.Sprintf("User %s is already participating.", userLabel(se)))
	case store.KindAlreadyAdmin:
		middleware.ErrorResponse(w, http.StatusConflict,
			fmt.Sprintf("User %s is already admin.", userLabel(se)))
	case store.KindNotParticipant:
		middleware.ErrorResponse(w, http.StatusNotFound,
			fmt.Sprintf("User %s is not participating.", userLabel(se)))
	case store.KindNotAdmin:
		middleware.ErrorResponse(w, http.StatusNotFound,
			fmt.Sprintf("User %s is not an admin.", userLabel(se)))
	case store.KindNoParticipants:
		middleware.ErrorResponse(w, http.StatusNotFound, "There are no participants.")
	case store.KindNoAdmins:
		middleware.ErrorResponse(w, http.StatusNotFound, "There are no admins.")
	case store.KindNoMinionMeister:
		if se.Date != "" {
			middleware.ErrorResponse(w, http.StatusNotFound,
				fmt.Sprintf("No history entry matches date %s.", se.Date))
			return
		}
		middleware.ErrorResponse(w, http.StatusNotFound, "There are no previous Minion Meisters.")
	case store.KindStorageUnavailable:
		slog.Error("storage unavailable", "error", se)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unavailable, try again later.")
	default:
		slog.Error("unhandled store error kind", "kind", se.Kind, "error", se)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

func userLabel(se *store.Error) string {
	if se.Name != "" {
		return se.Name
	}
	return strconv.FormatInt(se.UserID, 10)
}

// pathID parses a path value as a 64-bit integer. Platform IDs run to ~18
// digits, so anything narrower than int64 would truncate them.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a 64-bit integer")
		return 0, false
	}
	return id, true
}
