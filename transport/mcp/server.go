package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/mission/service"
	"github.com/wricardo/mars-rover/report"
)

// Server exposes the mission service as MCP tools
type Server struct {
	missions  service.MissionService
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server backed by the mission service
func NewServer(missions service.MissionService, version string) *Server {
	s := &Server{missions: missions}
	s.initMCPServer(version)
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer(version string) {
	s.mcpServer = server.NewMCPServer(
		"Mars Rover",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mars Rover - MCP Interface

Drive a rover across a wrapping grid ("Mars") with F/B/L/R commands.

AVAILABLE TOOLS:
- simulate: Run commands on a grid you describe
- run_mission: Run a predefined mission file
- list_missions: List available missions
- rover_instructions: Rules for headings, wrap-around and obstacles`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "simulate",
		Description: "Run a command sequence for a rover on a wrapping grid and return the final position and a step trace",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Grid width (>= 1)",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Grid height (>= 1)",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Starting x (1-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Starting y (1-based)",
				},
				"heading": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"N", "E", "S", "W"},
					"description": "Starting heading",
				},
				"commands": map[string]interface{}{
					"type":        "string",
					"description": "Command letters F, B, L, R with optional repeat counts, e.g. \"FFRF\" or \"3F R 2B\"",
				},
				"obstacles": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x": map[string]interface{}{"type": "integer"},
							"y": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x", "y"},
					},
					"description": "Obstacle coordinates",
				},
				"trace": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the per-step trace (default true)",
				},
			},
			Required: []string{"width", "height", "x", "y", "heading", "commands"},
		},
	}, s.handleSimulate)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "run_mission",
		Description: "Run a predefined mission file and report whether it met its expected final placement",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mission_id": map[string]interface{}{
					"type":        "string",
					"description": "Mission identifier as returned by list_missions",
				},
			},
			Required: []string{"mission_id"},
		},
	}, s.handleRunMission)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_missions",
		Description: "List all available missions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListMissions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "rover_instructions",
		Description: "Get the rules the rover simulation follows",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// Tool handlers

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	heading, err := engine.ParseHeading(stringArg(args, "heading"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	obstacles, err := obstaclesArg(args["obstacles"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var dims [4]int
	for i, key := range []string{"width", "height", "x", "y"} {
		if dims[i], err = intArg(args, key); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	req := service.SimulateRequest{
		Width:     dims[0],
		Height:    dims[1],
		Obstacles: obstacles,
		Start: engine.Placement{
			X:       dims[2],
			Y:       dims[3],
			Heading: heading,
		},
		Commands: stringArg(args, "commands"),
	}

	result, err := s.missions.Simulate(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	withTrace := true
	if v, ok := args["trace"].(bool); ok {
		withTrace = v
	}

	return mcp.NewToolResultText(formatSimulationResult(result, withTrace)), nil
}

func (s *Server) handleRunMission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	missionID := stringArg(args, "mission_id")
	if missionID == "" {
		return mcp.NewToolResultError("mission_id is required"), nil
	}

	result, err := s.missions.RunMission(ctx, missionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSimulationResult(result, true)), nil
}

func (s *Server) handleListMissions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := s.missions.ListMissions(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Available Missions (%d):\n\n", len(infos))
	for _, info := range infos {
		result += fmt.Sprintf("- %s: %s (%dx%d, %d obstacles, %d commands)\n",
			info.MissionID, info.Name, info.Width, info.Height, info.Obstacles, info.Commands)
		if info.Description != "" {
			result += fmt.Sprintf("  %s\n", info.Description)
		}
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Mars Rover - Rules

GRID:
• Coordinates are 1-based: x in [1, width], y in [1, height]
• y grows towards North, x grows towards East
• Edges wrap: leaving one side re-enters from the opposite side

HEADINGS:
• N, E, S, W
• L turns counter-clockwise (N→W→S→E→N), R turns clockwise (N→E→S→W→N)

COMMANDS:
• F moves one cell along the heading, B moves one cell against it
• A count before a letter repeats it: "3F" = "FFF"
• Separators (spaces, commas, semicolons) are ignored

OBSTACLES:
• A move is skipped, leaving the rover exactly as it was, when an obstacle
  sits on the raw move vector itself ((0,1), (0,-1), (1,0) or (-1,0)).
  This raw-vector rule is the baseline and is kept as is, even though it
  ignores where the rover stands.
• This simulator also skips a move whose unwrapped target cell holds an
  obstacle. That candidate-cell check goes beyond the baseline rule, which
  on its own lets a rover drive onto an obstacle inside the grid.
• Turns are never blocked`

	return mcp.NewToolResultText(instructions), nil
}

// Argument helpers

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// intArg reads a required integer argument. JSON numbers arrive as float64,
// so fractional values are rejected rather than truncated.
func intArg(args map[string]interface{}, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %s", key, v)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%s must be an integer, got %T", key, raw)
}

func obstaclesArg(raw interface{}) ([]engine.Position, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("obstacles must be an array of {x, y} objects")
	}

	obstacles := make([]engine.Position, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("obstacle %d must be an {x, y} object", i+1)
		}
		x, err := intArg(obj, "x")
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i+1, err)
		}
		y, err := intArg(obj, "y")
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i+1, err)
		}
		obstacles = append(obstacles, engine.Position{X: x, Y: y})
	}
	return obstacles, nil
}

// Formatting

func formatSimulationResult(result *service.SimulationResult, withTrace bool) string {
	var b strings.Builder
	b.WriteString(report.Summary(result))

	if withTrace && len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, st := range result.Steps {
			b.WriteString(formatStepLine(st))
		}
	}
	return b.String()
}

func formatStepLine(st engine.Step) string {
	line := fmt.Sprintf("  %d. %s %s -> %s", st.Idx, st.Letter, report.FormatRover(st.From), report.FormatRover(st.To))
	if st.Blocked {
		line += " (blocked)"
	} else if st.Wrapped {
		line += " (wrapped)"
	}
	return line + "\n"
}
