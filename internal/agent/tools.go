package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vovakirdan/vizard/internal/action"
	"github.com/vovakirdan/vizard/internal/core"
	"github.com/vovakirdan/vizard/internal/game"
	"github.com/vovakirdan/vizard/internal/maps"
)

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}
	return args
}

// intArg reads a JSON number. Missing arguments yield def.
func intArg(args map[string]interface{}, name string, def int) (int, error) {
	switch v := args[name].(type) {
	case nil:
		return def, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s must be a number", name)
	}
}

func requireString(args map[string]interface{}, name string) (string, error) {
	v, _ := args[name].(string)
	if v == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return v, nil
}

func textJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// stateText is the snapshot as JSON followed by the rendered screen.
func stateText(s *game.Session, cfg core.RuntimeConfig) (string, error) {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data) + "\n\n" + render(s, cfg), nil
}

func (s *Server) handleListMaps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textJSON(maps.List())
}

func (s *Server) handleNewSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	mapID, _ := args["map_id"].(string)
	if mapID == "" {
		mapID = maps.DefaultID
	}
	seed, err := intArg(args, "seed", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, snap, err := s.manager.Create(mapID, int64(seed))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textJSON(struct {
		SessionID string        `json:"session_id"`
		Snapshot  game.Snapshot `json:"snapshot"`
	}{id, snap})
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.withSession(request, func(g *game.Session, cfg core.RuntimeConfig) (string, error) {
		return stateText(g, cfg)
	})
}

func (s *Server) handleInput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys, _ := arguments(request)["keys"].(string)
	return s.withSession(request, func(g *game.Session, cfg core.RuntimeConfig) (string, error) {
		step(g, keys)
		return stateText(g, cfg)
	})
}

func (s *Server) handleEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	event, err := requireString(arguments(request), "event")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	key, ok := s.manager.settings.Controls[event]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no key is bound to event %q", event)), nil
	}

	return s.withSession(request, func(g *game.Session, cfg core.RuntimeConfig) (string, error) {
		for _, r := range string(key) {
			step(g, string(r))
		}
		return stateText(g, cfg)
	})
}

func (s *Server) handleWait(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticks, err := intArg(arguments(request), "ticks", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ticks < 1 || ticks > maxWait {
		return mcp.NewToolResultError(fmt.Sprintf("ticks must be between 1 and %d", maxWait)), nil
	}

	return s.withSession(request, func(g *game.Session, cfg core.RuntimeConfig) (string, error) {
		for range ticks {
			step(g, "")
		}
		return stateText(g, cfg)
	})
}

func (s *Server) handleResolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	result, err := resolve(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textJSON(result)
}

// resolve applies one action to a map without touching any session.
func resolve(args map[string]interface{}) (action.State, error) {
	mapID, err := requireString(args, "map_id")
	if err != nil {
		return action.State{}, err
	}
	mp, err := maps.Get(mapID)
	if err != nil {
		return action.State{}, err
	}
	x, err := intArg(args, "x", 0)
	if err != nil {
		return action.State{}, err
	}
	y, err := intArg(args, "y", 0)
	if err != nil {
		return action.State{}, err
	}
	steps, err := intArg(args, "steps", 1)
	if err != nil {
		return action.State{}, err
	}

	start := action.NewState(core.Pos(x, y))
	if !mp.Grid().Contains(start.Position) {
		return action.State{}, fmt.Errorf("start %v is outside the map", start.Position)
	}
	dir := start.Direction
	if name, _ := args["direction"].(string); name != "" {
		if dir, err = core.ParseDirection(name); err != nil {
			return action.State{}, err
		}
		start.Direction = dir
	}

	ignoreStones, _ := args["ignore_stones"].(bool)
	toVegetation, _ := args["to_vegetation"].(bool)
	kind, _ := args["action"].(string)

	var req action.Request
	switch kind {
	case "horizontal-move":
		req = action.HorizontalMove{Steps: steps}
	case "vertical-move":
		req = action.VerticalMove{Steps: steps}
	case "grass-start-jump":
		req = action.GrassStartJump{Direction: dir, IgnoreStones: ignoreStones}
	case "grass-end-jump":
		req = action.GrassEndJump{Direction: dir, IgnoreStones: ignoreStones}
	case "contour-jump":
		req = action.ContourJump{Direction: dir, ToVegetation: toVegetation}
	case "vertical-jump":
		req = action.VerticalJump{Direction: dir, Steps: steps}
	default:
		return action.State{}, fmt.Errorf("unknown action %q", kind)
	}

	return action.Apply(mp.Grid(), start, req)
}

func (s *Server) handleExportReplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.withSession(request, func(g *game.Session, cfg core.RuntimeConfig) (string, error) {
		return g.Recording().Serialize(), nil
	})
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textJSON(s.manager.IDs())
}

func (s *Server) handleEndSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireString(arguments(request), "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.manager.End(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("session %s ended", id)), nil
}

// withSession runs fn on the session named by the session_id argument and
// wraps its text or error as a tool result.
func (s *Server) withSession(request mcp.CallToolRequest, fn func(g *game.Session, cfg core.RuntimeConfig) (string, error)) (*mcp.CallToolResult, error) {
	id, err := requireString(arguments(request), "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var text string
	err = s.manager.With(id, func(g *game.Session, cfg core.RuntimeConfig) error {
		var ferr error
		text, ferr = fn(g, cfg)
		return ferr
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
