// Package server provides the HTTP server for the tenantgate API.
//
// This package implements the core HTTP server that handles all API
// requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, signer)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - /authenticate - API key exchange for an access token
//   - /companies - company management (administrators only)
//   - /companies/{company_id}/users - company user management
//   - /whoami - token introspection
//   - /health - database health check
package server
