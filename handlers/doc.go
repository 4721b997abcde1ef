// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Minion Meister API.

Each command maps 1:1 onto one roster store operation; the handlers own
input parsing, date validation, and the rendering of store error kinds
into status codes and messages. The store itself never produces
user-facing text.

# Handler Types

Each handler is a struct holding the roster store:

	rosterHandler := handlers.NewRosterHandler(st)

  - RosterHandler: participants and winner selection
  - HistoryHandler: history listing, counts, backdated inserts/deletes
  - AdminHandler: admin roster

# Commands

Participants and selection:

	POST   /servers/{server}/participants        → Add
	DELETE /servers/{server}/participants/{user} → Remove
	GET    /servers/{server}/participants        → List
	GET    /servers/{server}/participants/{user} → IsParticipant
	POST   /servers/{server}/winner              → Winner

History and counts:

	GET    /servers/{server}/history?limit=5 → List
	GET    /servers/{server}/counts          → Counts
	POST   /servers/{server}/history         → Insert (validates date)
	DELETE /servers/{server}/history         → Delete (validates date)

Admins:

	GET    /servers/{server}/admins        → List
	POST   /servers/{server}/admins        → Add
	DELETE /servers/{server}/admins/{user} → Remove
	GET    /servers/{server}/admins/{user} → IsAdmin

# Error Rendering

renderStoreError is the single switch over the store's closed error kinds:
duplicate inserts → 409, missing rows and empty listings → 404, invalid
input → 400, storage outage → 503 after bounded backoff retries.

# Date Validation

Caller-supplied dates must be exactly YYYY-MM-DD real calendar dates;
IsDate rejects impossible dates (2022-13-40), unpadded components, and
trailing characters. The store stores whatever it is given, so validation
lives here and only here.
*/
package handlers
