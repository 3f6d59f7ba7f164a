// Package agent exposes play sessions to MCP clients.
//
// An agent creates sessions, feeds them key text one tick at a time and
// reads back snapshots and rendered screens. Input goes through the same
// control layer as the terminal, so every session can be exported as a
// replay log.
package agent

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `Vizard - MCP Interface

Collect shards (◆) on a tile map by dashing and blinking with vim-style keys.

AVAILABLE TOOLS:
- list_maps: built-in maps with their sizes
- new_session: start a session on a map
- state: snapshot and rendered screen of a session
- input: type key text for one tick (for example "w" or "$")
- event: send a control event by name (for example "blink-to-the-end-of-contour")
- wait: advance the clock without input
- resolve: resolve one action on a map without a session
- export_replay: replay log of a session
- list_sessions: ids of the open sessions
- end_session: close a session

A buffer key ("g") ends the text of its tick and waits for the next key, so
"gg" takes two input calls of "g". The event tool sends one tick per key.`

// Server is the MCP front of a Manager.
type Server struct {
	manager   *Manager
	mcpServer *server.MCPServer
}

// NewServer registers the tools over manager.
func NewServer(manager *Manager) *Server {
	s := &Server{manager: manager}
	s.mcpServer = server.NewMCPServer(
		"Vizard",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
	)
	s.registerTools()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve speaks MCP over stdin and stdout until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID returned by new_session",
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_maps",
		Description: "List the built-in maps",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListMaps)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_session",
		Description: "Start a live session on a map",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"map_id": map[string]interface{}{
					"type":        "string",
					"description": "Map ID (default: default)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Seed for shard spawns (optional)",
				},
			},
		},
	}, s.handleNewSession)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "state",
		Description: "Get the snapshot and the rendered screen of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, s.handleState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "input",
		Description: "Type key text during one tick",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"keys": map[string]interface{}{
					"type":        "string",
					"description": "Key text as typed, control keys as their ASCII characters",
				},
			},
			Required: []string{"session_id", "keys"},
		},
	}, s.handleInput)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "event",
		Description: "Send a control event by name using its bound keys",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"event": map[string]interface{}{
					"type":        "string",
					"description": "Event name, for example dash-right or blink-to-the-top",
				},
			},
			Required: []string{"session_id", "event"},
		},
	}, s.handleEvent)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wait",
		Description: "Advance a session without input",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"ticks": map[string]interface{}{
					"type":        "integer",
					"description": "Number of ticks (default 1)",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleWait)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "resolve",
		Description: "Resolve one action on a map without a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"map_id": map[string]interface{}{
					"type":        "string",
					"description": "Map ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Start column",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Start row",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"north", "east", "south", "west"},
					"description": "Direction of the action",
				},
				"action": map[string]interface{}{
					"type": "string",
					"enum": []string{
						"horizontal-move", "vertical-move",
						"grass-start-jump", "grass-end-jump",
						"contour-jump", "vertical-jump",
					},
					"description": "Action kind",
				},
				"steps": map[string]interface{}{
					"type":        "integer",
					"description": "Steps for moves and vertical jumps",
				},
				"ignore_stones": map[string]interface{}{
					"type":        "boolean",
					"description": "Grass jumps treat grass and stone as one run",
				},
				"to_vegetation": map[string]interface{}{
					"type":        "boolean",
					"description": "Contour jumps land on vegetation",
				},
			},
			Required: []string{"map_id", "x", "y", "action"},
		},
	}, s.handleResolve)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "export_replay",
		Description: "Get the replay log of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, s.handleExportReplay)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List the open session IDs",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSessions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "end_session",
		Description: "Close a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, s.handleEndSession)
}
