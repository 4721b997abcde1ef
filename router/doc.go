// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

NewRouter wires every command endpoint to its handler, wrapped in request
logging:

	mux := router.NewRouter(st)

Uses Go 1.22+ method-and-pattern routing on http.ServeMux. Server and user
path segments are opaque 64-bit integers parsed by the handlers.

# Keep-Alive

Two unauthenticated liveness endpoints exist for external uptime pingers:

	GET /health → 200 "OK"
	GET /       → 200 "I'm alive"
*/
package router
