// Package server exposes step-wise A* searches over HTTP.
//
// Each POST /searches creates a session holding one engine; clients then
// advance it with POST /searches/{id}/step and read JSON snapshots with
// GET /searches/{id}. Sessions are independent: every session has its own
// mutex, and the session table has another. Collectors are served on
// /metrics from a registry private to the Server.
package server
