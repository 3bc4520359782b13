package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mars-rover/mission/config"
	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/mission/service"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func testSettings(dir string) config.Settings {
	return config.Settings{MissionsDir: dir, MaxCommands: 500}
}

func runApp(t *testing.T, settings config.Settings, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp(settings)
	app.Writer = &buf
	err := app.Run(context.Background(), append([]string{"mars-rover"}, args...))
	return buf.String(), err
}

func TestRunCommand_Scenarios(t *testing.T) {
	settings := testSettings("/non/existent/path")

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"drive and turn", []string{"run", "--commands", "FFRF"}, "2:3:E"},
		{"wrap y", []string{"run", "-c", "B"}, "1:5:N"},
		{"wrap x", []string{"run", "--x", "5", "--heading", "E", "-c", "F"}, "1:1:E"},
		{"turn left", []string{"run", "-c", "L"}, "1:1:W"},
		{"obstacle", []string{"run", "--heading", "W", "--obstacle", "0,1", "-c", "F"}, "1:1:W"},
		{"no commands", []string{"run"}, "1:1:N"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := runApp(t, settings, test.args...)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if strings.TrimSpace(out) != test.expected {
				t.Errorf("Expected %s, got %q", test.expected, out)
			}
		})
	}
}

func TestRunCommand_JSON(t *testing.T) {
	out, err := runApp(t, testSettings("/non/existent/path"), "run", "--json", "-c", "FF")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var result service.SimulationResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, out)
	}
	if result.Final != (engine.Placement{X: 1, Y: 3, Heading: engine.North}) {
		t.Errorf("Unexpected final %+v", result.Final)
	}
}

func TestRunCommand_Trace(t *testing.T) {
	out, err := runApp(t, testSettings("/non/existent/path"), "run", "--trace", "--no-color", "-c", "B")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "wrapped") || !strings.Contains(out, "Final rover: 1:5:N") {
		t.Errorf("Unexpected trace:\n%s", out)
	}
}

func TestRunCommand_Errors(t *testing.T) {
	settings := testSettings("/non/existent/path")

	tests := []struct {
		name string
		args []string
	}{
		{"bad grid", []string{"run", "--width", "0", "-c", "F"}},
		{"bad heading", []string{"run", "--heading", "Q", "-c", "F"}},
		{"bad commands", []string{"run", "-c", "FXF"}},
		{"bad obstacle", []string{"run", "--obstacle", "1", "-c", "F"}},
		{"start outside grid", []string{"run", "--x", "40", "--y=-3"}},
		{"start past east edge", []string{"run", "--x", "6", "-c", "F"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := runApp(t, settings, test.args...); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestRunCommand_CommandLimit(t *testing.T) {
	settings := testSettings("/non/existent/path")

	out, err := runApp(t, settings, "run", "--height", "1000", "-c", "600F")
	if err == nil {
		t.Fatal("Expected error when the command limit cuts the run short")
	}
	if !strings.Contains(err.Error(), "executed only 500 of 600 commands") {
		t.Errorf("Unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "1:501:N" {
		t.Errorf("Expected partial result 1:501:N, got %q", out)
	}

	out, err = runApp(t, settings, "--max-commands", "1000", "run", "--height", "1000", "-c", "600F")
	if err != nil {
		t.Fatalf("run failed with raised limit: %v", err)
	}
	if strings.TrimSpace(out) != "1:601:N" {
		t.Errorf("Expected 1:601:N, got %q", out)
	}
}

func TestMissionCommands(t *testing.T) {
	dir := t.TempDir()
	mission := `{
		"name": "Wrap",
		"description": "Backward wraps on y",
		"width": 5, "height": 5,
		"start": {"x": 1, "y": 1, "heading": "N"},
		"commands": "B",
		"expected": {"x": 1, "y": 5, "heading": "N"}
	}`
	if err := os.WriteFile(filepath.Join(dir, "wrap.json"), []byte(mission), 0644); err != nil {
		t.Fatal(err)
	}
	failing := strings.Replace(mission, `"y": 5, "heading": "N"}`, `"y": 2, "heading": "N"}`, 1)
	if err := os.WriteFile(filepath.Join(dir, "failing.json"), []byte(failing), 0644); err != nil {
		t.Fatal(err)
	}

	settings := testSettings(dir)

	out, err := runApp(t, settings, "mission", "--no-color", "wrap")
	if err != nil {
		t.Fatalf("mission failed: %v", err)
	}
	if !strings.Contains(out, "Expected: 1:5:N ✓") {
		t.Errorf("Unexpected output:\n%s", out)
	}

	if _, err := runApp(t, settings, "mission", "--no-color", "failing"); err == nil {
		t.Error("Expected error for unmet expectation")
	}

	if _, err := runApp(t, settings, "mission"); err == nil {
		t.Error("Expected error when mission id is missing")
	}

	out, err = runApp(t, settings, "missions")
	if err != nil {
		t.Fatalf("missions failed: %v", err)
	}
	if !strings.Contains(out, "wrap") || !strings.Contains(out, "failing") {
		t.Errorf("Unexpected listing:\n%s", out)
	}

	if _, err := runApp(t, testSettings("/non/existent/path"), "missions"); err == nil {
		t.Error("Expected error for missing missions directory")
	}
}

func TestParseObstacle(t *testing.T) {
	tests := []struct {
		input    string
		expected engine.Position
		wantErr  bool
	}{
		{"0,1", engine.Position{X: 0, Y: 1}, false},
		{" 3 , -2 ", engine.Position{X: 3, Y: -2}, false},
		{"1", engine.Position{}, true},
		{"a,b", engine.Position{}, true},
		{"1,2,3", engine.Position{}, true},
	}

	for _, test := range tests {
		got, err := parseObstacle(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseObstacle(%q): expected error", test.input)
			}
			continue
		}
		if err != nil || got != test.expected {
			t.Errorf("parseObstacle(%q): expected %v, got %v (%v)", test.input, test.expected, got, err)
		}
	}
}
