package server

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridstar/internal/config"
)

// Sentinel errors mapped to HTTP status codes by writeError.
var (
	// ErrSessionNotFound indicates an unknown or deleted session id.
	ErrSessionNotFound = errors.New("server: session not found")
	// ErrTooManySessions indicates the session table is full.
	ErrTooManySessions = errors.New("server: too many sessions")
	// ErrBadRequest indicates an undecodable body or query parameter.
	ErrBadRequest = errors.New("server: bad request")
)

// maxStepsPerRequest bounds n in POST /searches/{id}/step.
const maxStepsPerRequest = 100000

// CreateRequest is the body of POST /searches. Omitted fields keep the
// server's configured defaults.
type CreateRequest struct {
	Grid   config.GridConfig   `json:"grid"`
	Search config.SearchConfig `json:"search"`
}

// CreateResponse is returned by POST /searches.
type CreateResponse struct {
	ID string `json:"id"`
}

// Cell is an open or closed state with its node's values.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
	G int `json:"g"`
	F int `json:"f"`
}

// Snapshot is the JSON view of a session.
type Snapshot struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Steps  int            `json:"steps"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Costs  [][]int        `json:"costs"`
	Start  config.Point   `json:"start"`
	Goal   config.Point   `json:"goal"`
	Open   []Cell         `json:"open"`
	Closed []Cell         `json:"closed"`
	Path   []config.Point `json:"path,omitempty"`
	Cost   *int           `json:"cost,omitempty"`

	Reachable bool      `json:"reachable"`
	Created   time.Time `json:"created"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}
