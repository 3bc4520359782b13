// Command analyze prints quick, human-readable heuristics about the mission
// files in the project's missions directory. For every obstacle it reports
// whether it lies inside the grid, which commands hit it as a raw
// displacement, how many grid cells border it, and how often it stopped the
// rover during the mission's own command run.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/wricardo/mars-rover/mission/commands"
	"github.com/wricardo/mars-rover/mission/engine"
)

// ObstacleReport is the analysis of a single obstacle.
type ObstacleReport struct {
	Position     engine.Position
	Inside       bool
	Displacement []string // command/heading pairs whose raw delta equals the obstacle
	Approaches   int      // grid cells one unit move away
	Hits         int      // blocked steps attributed to this obstacle
	Distance     int      // Manhattan distance from the start, ignoring wrap
}

// Live reports whether any move can ever be stopped by the obstacle.
func (o ObstacleReport) Live() bool {
	return len(o.Displacement) > 0 || o.Approaches > 0
}

// MissionAnalysis summarizes one mission file.
type MissionAnalysis struct {
	Name      string
	Width     int
	Height    int
	Commands  int
	Blocked   int
	Wrapped   int
	Final     engine.Rover
	Obstacles []ObstacleReport
}

var units = []engine.Position{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

func main() {
	missionDir := "missions"
	if len(os.Args) > 1 {
		missionDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(missionDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding mission files: %v\n", err)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analysis, err := analyzeFile(file)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printAnalysis(os.Stdout, analysis)
	}
}

func analyzeFile(path string) (*MissionAnalysis, error) {
	mission, err := engine.LoadMissionFile(path)
	if err != nil {
		return nil, err
	}
	cmds, err := commands.Parse(mission.Commands)
	if err != nil {
		return nil, err
	}
	return analyzeMission(mission, cmds)
}

func analyzeMission(mission *engine.MissionConfig, cmds []engine.Command) (*MissionAnalysis, error) {
	mars, err := mission.BuildMars()
	if err != nil {
		return nil, err
	}

	start := mission.Start.Rover()
	steps, final := engine.Trace(mars, start, cmds)

	analysis := &MissionAnalysis{
		Name:     mission.Name,
		Width:    mars.Width(),
		Height:   mars.Height(),
		Commands: len(cmds),
		Final:    final,
	}

	hits := make(map[engine.Position]int)
	for _, s := range steps {
		if s.Wrapped {
			analysis.Wrapped++
		}
		if !s.Blocked {
			continue
		}
		analysis.Blocked++
		// The raw displacement is checked first.
		if mars.IsObstacle(s.Delta) {
			hits[s.Delta]++
		} else {
			hits[s.From.Position.Add(s.Delta)]++
		}
	}

	for _, o := range mars.Obstacles() {
		report := ObstacleReport{
			Position: o,
			Inside:   mars.Contains(o),
			Hits:     hits[o],
			Distance: abs(o.X-start.Position.X) + abs(o.Y-start.Position.Y),
		}
		for _, cmd := range []engine.Command{engine.MoveForward, engine.MoveBackward} {
			for _, h := range engine.Headings {
				if engine.Displacement(cmd, h) == o {
					report.Displacement = append(report.Displacement, cmd.Letter()+h.Letter())
				}
			}
		}
		for _, u := range units {
			if mars.Contains(engine.Position{X: o.X - u.X, Y: o.Y - u.Y}) {
				report.Approaches++
			}
		}
		analysis.Obstacles = append(analysis.Obstacles, report)
	}

	return analysis, nil
}

func printAnalysis(w io.Writer, a *MissionAnalysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", a.Width, a.Height)
	fmt.Fprintf(w, "Commands: %d (blocked %d, wrapped %d)\n", a.Commands, a.Blocked, a.Wrapped)
	fmt.Fprintf(w, "Final: %d:%d:%s\n", a.Final.Position.X, a.Final.Position.Y, a.Final.Heading.Letter())

	if len(a.Obstacles) == 0 {
		fmt.Fprintln(w, "✅ No obstacles")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Obstacle", "Inside", "Displacement", "Approaches", "Hits", "Distance"})
	table.SetBorder(false)
	for _, o := range a.Obstacles {
		disp := "-"
		if len(o.Displacement) > 0 {
			disp = strings.Join(o.Displacement, " ")
		}
		table.Append([]string{
			o.Position.String(),
			strconv.FormatBool(o.Inside),
			disp,
			strconv.Itoa(o.Approaches),
			strconv.Itoa(o.Hits),
			strconv.Itoa(o.Distance),
		})
	}
	table.Render()

	dead := 0
	for _, o := range a.Obstacles {
		if !o.Live() {
			dead++
		}
	}
	if dead > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d obstacles can never block a move\n", dead)
	} else {
		fmt.Fprintln(w, "✅ Every obstacle can block some move")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
