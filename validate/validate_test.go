package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mars-rover/mission/engine"
)

func writeMission(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mission.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write mission: %v", err)
	}
	return path
}

func TestValidateMission_Valid(t *testing.T) {
	path := writeMission(t, `{
		"name": "Scenario",
		"width": 5,
		"height": 5,
		"start": {"x": 1, "y": 1, "heading": "N"},
		"commands": "FFRF",
		"expected": {"x": 2, "y": 3, "heading": "E"}
	}`)

	result := validateMission(path)
	if !result.Valid {
		t.Fatalf("Expected valid mission, got: %v", result.Messages)
	}
	if result.File != "mission.json" {
		t.Errorf("Expected file name mission.json, got %s", result.File)
	}

	joined := strings.Join(result.Messages, "\n")
	for _, want := range []string{"Name: Scenario", "Grid: 5x5", "Commands: 4", "Final: 2:3:E", "Expectation met"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected messages to contain %q, got:\n%s", want, joined)
		}
	}
}

func TestValidateMission_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "invalid json",
			content: `{"name": "test", invalid json}`,
			wantMsg: "Invalid JSON",
		},
		{
			name:    "missing name",
			content: `{"width": 5, "height": 5, "start": {"x": 1, "y": 1, "heading": "N"}}`,
			wantMsg: "invalid mission",
		},
		{
			name:    "zero width",
			content: `{"name": "m", "width": 0, "height": 5, "start": {"x": 1, "y": 1, "heading": "N"}}`,
			wantMsg: "invalid mission",
		},
		{
			name:    "bad heading",
			content: `{"name": "m", "width": 5, "height": 5, "start": {"x": 1, "y": 1, "heading": "Q"}}`,
			wantMsg: "invalid mission",
		},
		{
			name:    "bad commands",
			content: `{"name": "m", "width": 5, "height": 5, "start": {"x": 1, "y": 1, "heading": "N"}, "commands": "FXF"}`,
			wantMsg: "Invalid commands",
		},
		{
			name:    "start on obstacle",
			content: `{"name": "m", "width": 5, "height": 5, "obstacles": [{"x": 2, "y": 2}], "start": {"x": 2, "y": 2, "heading": "N"}}`,
			wantMsg: "starts on an obstacle",
		},
		{
			name:    "unmet expectation",
			content: `{"name": "m", "width": 5, "height": 5, "start": {"x": 1, "y": 1, "heading": "N"}, "commands": "F", "expected": {"x": 1, "y": 1, "heading": "N"}}`,
			wantMsg: "simulation ended at 1:2:N",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := validateMission(writeMission(t, test.content))
			if result.Valid {
				t.Fatalf("Expected invalid mission")
			}
			joined := strings.Join(result.Messages, "\n")
			if !strings.Contains(joined, test.wantMsg) {
				t.Errorf("Expected message containing %q, got:\n%s", test.wantMsg, joined)
			}
		})
	}
}

func TestValidateMission_MissingFile(t *testing.T) {
	result := validateMission(filepath.Join(t.TempDir(), "nope.json"))
	if result.Valid {
		t.Fatal("Expected missing file to be invalid")
	}
	if !strings.Contains(result.Messages[0], "Failed to read file") {
		t.Errorf("Unexpected message: %s", result.Messages[0])
	}
}

func TestInertObstacles(t *testing.T) {
	mars, err := engine.NewMars(5, 5,
		engine.Position{X: 0, Y: 1},  // unit displacement
		engine.Position{X: 3, Y: 3},  // inside the grid
		engine.Position{X: 6, Y: 2},  // just past the east edge
		engine.Position{X: 0, Y: 0},  // border corner
		engine.Position{X: 9, Y: 9},  // far outside
		engine.Position{X: 3, Y: -1}, // two rows below
	)
	if err != nil {
		t.Fatalf("NewMars failed: %v", err)
	}

	got := inertObstacles(mars)
	want := []engine.Position{{X: 3, Y: -1}, {X: 0, Y: 0}, {X: 9, Y: 9}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d inert obstacles, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("inert[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestValidateMission_ShippedMissions(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "missions", "*.json"))
	if err != nil {
		t.Fatalf("Failed to glob missions: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no mission files found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			result := validateMission(file)
			if !result.Valid {
				t.Errorf("Mission %s is invalid: %v", result.File, result.Messages)
			}
		})
	}
}
