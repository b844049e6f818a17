// Package mcp exposes recipe search and favorites as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/windoze95/recipefinder-api/internal/service"
)

const (
	// ServerName is the MCP server name
	ServerName = "recipefinder"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application services
type Server struct {
	mcp      *server.MCPServer
	services *service.Services
}

// NewServer creates a new MCP server instance and registers its tools.
func NewServer(services *service.Services) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		services: services,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchRecipesTool(), s.handleSearchRecipes)
	s.mcp.AddTool(getActiveProviderTool(), s.handleGetActiveProvider)
	s.mcp.AddTool(listFavoritesTool(), s.handleListFavorites)
}
