package testutil

import (
	"net/http/httptest"
	"testing"

	"qboard/internal/api"
	"qboard/pkg/board"
	"qboard/pkg/board/local"
)

// ServerConfig wires dependencies for StartServer.
type ServerConfig struct {
	Store board.Service
}

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	Store   board.Service
	Close   func()
}

// StartServer launches an in-memory HTTP server for the question board API.
func StartServer(t *testing.T, cfg ServerConfig) *ServerInstance {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = local.New()
	}
	handler := api.NewHandler(api.Config{Store: cfg.Store})
	server := httptest.NewServer(handler)
	return &ServerInstance{
		BaseURL: server.URL,
		Store:   cfg.Store,
		Close:   server.Close,
	}
}
