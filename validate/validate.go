// Command validate provides a small CLI that validates mission JSON files in
// a directory (../missions by default). It checks:
//   - JSON structure and required fields
//   - Grid dimensions and start/expected placements inside the grid
//   - Command strings accepted by the command parser
//   - Declared expectations: the mission is simulated and its final placement
//     compared with "expected"
//
// It also reports obstacles that can never block a move.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mars-rover/mission/commands"
	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/report"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages contains informational lines; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

// validateMission loads, checks and simulates a single mission file.
func validateMission(filePath string) ValidationResult {
	result := ValidationResult{
		File:     filepath.Base(filePath),
		Valid:    true,
		Messages: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	mission, err := engine.DecodeMission(data)
	if err != nil {
		result.Valid = false
		if errors.Is(err, engine.ErrInvalidMission) {
			result.Messages = append(result.Messages, err.Error())
		} else {
			result.Messages = append(result.Messages, fmt.Sprintf("Invalid JSON: %v", err))
		}
		return result
	}

	cmds, err := commands.Parse(mission.Commands)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, fmt.Sprintf("Invalid commands: %v", err))
		return result
	}

	mars, err := mission.BuildMars()
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	start := mission.Start.Rover()
	if mars.IsObstacle(start.Position) {
		result.Valid = false
		result.Messages = append(result.Messages, fmt.Sprintf("Rover starts on an obstacle at %s", start.Position))
	}

	final := engine.Run(mars, start, cmds)
	if mission.Expected != nil && engine.PlacementOf(final) != *mission.Expected {
		result.Valid = false
		result.Messages = append(result.Messages, fmt.Sprintf("Expected final %s, simulation ended at %s",
			report.FormatPlacement(*mission.Expected), report.FormatRover(final)))
	}

	if result.Valid {
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Name: %s", mission.Name))
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Grid: %dx%d", mission.Width, mission.Height))
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Commands: %d", len(cmds)))
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Final: %s", report.FormatRover(final)))
		if mission.Expected != nil {
			result.Messages = append(result.Messages, "✓ Expectation met")
		}
		for _, o := range inertObstacles(mars) {
			result.Messages = append(result.Messages, fmt.Sprintf("⚠ Obstacle %s can never block a move", o))
		}
	}

	return result
}

// inertObstacles lists obstacles no move can hit: they are neither a unit
// displacement nor a cell reachable as an unwrapped move target, i.e. they lie
// further than one cell outside the grid.
func inertObstacles(mars *engine.Mars) []engine.Position {
	var inert []engine.Position
	for _, o := range mars.Obstacles() {
		if isUnitDisplacement(o) {
			continue
		}
		if o.X >= 0 && o.X <= mars.Width()+1 && o.Y >= 0 && o.Y <= mars.Height()+1 {
			// Corners of the one-cell border are not reachable by a unit move.
			outsideX := o.X == 0 || o.X == mars.Width()+1
			outsideY := o.Y == 0 || o.Y == mars.Height()+1
			if !(outsideX && outsideY) {
				continue
			}
		}
		inert = append(inert, o)
	}
	return inert
}

func isUnitDisplacement(p engine.Position) bool {
	for _, cmd := range []engine.Command{engine.MoveForward, engine.MoveBackward} {
		for _, h := range engine.Headings {
			if engine.Displacement(cmd, h) == p {
				return true
			}
		}
	}
	return false
}

// main scans a mission directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are invalid.
func main() {
	missionDir := "../missions"
	if len(os.Args) > 1 {
		missionDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(missionDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding mission files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No mission files found in %s\n", missionDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateMission(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Messages {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, msg := range result.Messages {
				fmt.Println("  ❌ " + msg)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All missions are valid!")
	} else {
		fmt.Println("❌ Some missions have errors")
		os.Exit(1)
	}
}
