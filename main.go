// Command mars-rover drives a simulated rover across a wrapping grid.
//
// It supports four subcommands:
//  1. "run" – simulate an ad-hoc command string on a grid described by flags
//  2. "mission" – run a mission file from the missions directory
//  3. "missions" – list the available mission files
//  4. "mcp" – serve the simulator as MCP tools over stdio
//
// Defaults come from the environment (ROVER_MISSIONS_DIR, ROVER_DEBUG,
// ROVER_MAX_COMMANDS, optionally via a .env file) and can be overridden
// with flags.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mars-rover/mission/config"
	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/mission/service"
	"github.com/wricardo/mars-rover/report"
	"github.com/wricardo/mars-rover/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Mars Rover Simulator"
)

// main loads the environment, builds the CLI and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	if err := newApp(settings).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. settings provide the flag defaults.
func newApp(settings config.Settings) *cli.Command {
	return &cli.Command{
		Name:    "mars-rover",
		Usage:   AppName,
		Version: Version,
		// Obstacles are written as "x,y", so commas must not split slice flags.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "missions-dir",
				Usage: "Directory containing mission JSON files",
				Value: settings.MissionsDir,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: settings.Debug,
			},
			&cli.IntFlag{
				Name:  "max-commands",
				Usage: "Maximum commands executed per simulation",
				Value: settings.MaxCommands,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Simulate a command string on a grid described by flags",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Usage: "Grid width", Value: 5},
					&cli.IntFlag{Name: "height", Usage: "Grid height", Value: 5},
					&cli.IntFlag{Name: "x", Usage: "Starting x (1-based)", Value: 1},
					&cli.IntFlag{Name: "y", Usage: "Starting y (1-based)", Value: 1},
					&cli.StringFlag{Name: "heading", Usage: "Starting heading (N, E, S, W)", Value: "N"},
					&cli.StringFlag{Name: "commands", Aliases: []string{"c"}, Usage: "Command letters, e.g. FFRF or \"3F R 2B\""},
					&cli.StringSliceFlag{Name: "obstacle", Usage: "Obstacle as x,y (repeatable)"},
					&cli.BoolFlag{Name: "trace", Usage: "Print the per-step trace"},
					&cli.BoolFlag{Name: "json", Usage: "Print the result as JSON"},
					&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
				},
				Action: runAction,
			},
			{
				Name:      "mission",
				Usage:     "Run a mission file",
				ArgsUsage: "<mission-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print the result as JSON"},
					&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
				},
				Action: missionAction,
			},
			{
				Name:   "missions",
				Usage:  "List available missions",
				Action: missionsAction,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the simulator as MCP tools over stdio",
				Action: mcpAction,
			},
		},
	}
}

// initializeService wires the mission manager and the mission service.
// The manager is optional for "run"; a missing directory only matters to
// commands that read missions.
func initializeService(cmd *cli.Command, requireMissions bool) (service.MissionService, error) {
	root := cmd.Root()
	debug := root.Bool("debug")
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	var manager service.MissionManager
	missionsDir := root.String("missions-dir")
	m, err := config.NewManager(missionsDir)
	switch {
	case err == nil:
		manager = m
	case requireMissions:
		return nil, fmt.Errorf("failed to create mission manager: %w", err)
	default:
		if debug {
			log.Printf("Missions unavailable: %v", err)
		}
	}

	return service.NewMissionService(manager, service.Options{
		MaxCommands: root.Int("max-commands"),
		Debug:       debug,
	}), nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := initializeService(cmd, false)
	if err != nil {
		return err
	}

	heading, err := engine.ParseHeading(cmd.String("heading"))
	if err != nil {
		return err
	}

	obstacles := make([]engine.Position, 0, len(cmd.StringSlice("obstacle")))
	for _, raw := range cmd.StringSlice("obstacle") {
		p, err := parseObstacle(raw)
		if err != nil {
			return err
		}
		obstacles = append(obstacles, p)
	}

	result, err := svc.Simulate(ctx, service.SimulateRequest{
		Width:     cmd.Int("width"),
		Height:    cmd.Int("height"),
		Obstacles: obstacles,
		Start: engine.Placement{
			X:       cmd.Int("x"),
			Y:       cmd.Int("y"),
			Heading: heading,
		},
		Commands: cmd.String("commands"),
	})
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	switch {
	case cmd.Bool("json"):
		if err := writeJSON(out, result); err != nil {
			return err
		}
	case cmd.Bool("trace"):
		report.WriteTrace(out, result, !cmd.Bool("no-color"))
	default:
		fmt.Fprintln(out, report.FormatPlacement(result.Final))
	}
	return truncationError(result)
}

func missionAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("mission id is required")
	}

	svc, err := initializeService(cmd, true)
	if err != nil {
		return err
	}

	result, err := svc.RunMission(ctx, name)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if cmd.Bool("json") {
		if err := writeJSON(out, result); err != nil {
			return err
		}
		return truncationError(result)
	}
	report.WriteTrace(out, result, !cmd.Bool("no-color"))

	if err := truncationError(result); err != nil {
		return err
	}
	if result.ExpectedMet != nil && !*result.ExpectedMet {
		return fmt.Errorf("mission %s: expected %s, got %s", name,
			report.FormatPlacement(*result.Expected), report.FormatPlacement(result.Final))
	}
	return nil
}

func missionsAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := initializeService(cmd, true)
	if err != nil {
		return err
	}

	infos, err := svc.ListMissions(ctx)
	if err != nil {
		return err
	}

	report.WriteMissions(cmd.Root().Writer, infos)
	return nil
}

// mcpAction serves MCP over stdio. stdout carries the protocol, so logging
// stays on stderr.
func mcpAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := initializeService(cmd, false)
	if err != nil {
		return err
	}

	log.Printf("Starting %s v%s (mode: mcp stdio)", AppName, Version)
	srv := mcp.NewServer(svc, Version)
	if err := server.ServeStdio(srv.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// truncationError reports a run cut short by --max-commands. The final
// placement printed for such a run is not the result of the whole sequence.
func truncationError(result *service.SimulationResult) error {
	if !result.Truncated {
		return nil
	}
	return fmt.Errorf("executed only %d of %d commands (limit %d); raise --max-commands to run them all",
		result.ExecutedCommands, result.RequestedCommands, result.Limit)
}

// parseObstacle parses "x,y" into a position.
func parseObstacle(raw string) (engine.Position, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return engine.Position{}, fmt.Errorf("invalid obstacle %q: expected x,y", raw)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return engine.Position{}, fmt.Errorf("invalid obstacle %q: %w", raw, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return engine.Position{}, fmt.Errorf("invalid obstacle %q: %w", raw, err)
	}
	return engine.Position{X: x, Y: y}, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
