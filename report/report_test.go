package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/mission/service"
)

func sampleResult() *service.SimulationResult {
	met := false
	expected := engine.Placement{X: 3, Y: 3, Heading: engine.North}
	return &service.SimulationResult{
		Mission:  "sample",
		Width:    5,
		Height:   5,
		Start:    engine.Placement{X: 1, Y: 1, Heading: engine.North},
		Final:    engine.Placement{X: 1, Y: 5, Heading: engine.North},
		Commands: "BF",
		Steps: []engine.Step{
			{Idx: 1, Letter: "B", From: engine.NewRover(1, 1, engine.North), To: engine.NewRover(1, 5, engine.North), Wrapped: true},
			{Idx: 2, Letter: "F", From: engine.NewRover(1, 5, engine.North), To: engine.NewRover(1, 5, engine.North), Blocked: true},
		},
		BlockedCount:      1,
		WrapCount:         1,
		RequestedCommands: 2,
		ExecutedCommands:  2,
		Expected:          &expected,
		ExpectedMet:       &met,
	}
}

func TestFormatRover(t *testing.T) {
	tests := []struct {
		rover    engine.Rover
		expected string
	}{
		{engine.NewRover(2, 3, engine.East), "2:3:E"},
		{engine.NewRover(1, 5, engine.North), "1:5:N"},
		{engine.NewRover(10, 1, engine.West), "10:1:W"},
	}

	for _, test := range tests {
		if got := FormatRover(test.rover); got != test.expected {
			t.Errorf("FormatRover(%s): expected %s, got %s", test.rover, test.expected, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(engine.Placement{X: 2, Y: 3, Heading: engine.South})
	if got != "(2, 3) facing South" {
		t.Errorf("Unexpected description %q", got)
	}
}

func TestSummary(t *testing.T) {
	s := Summary(sampleResult())

	expected := []string{
		"Mission: sample",
		"Grid: 5x5",
		"Start: (1, 1) facing North",
		"Blocked: 1  Wrapped: 1",
		"Final: (1, 5) facing North [1:5:N]",
		"Expected: 3:3:N ✗",
	}
	for _, want := range expected {
		if !strings.Contains(s, want) {
			t.Errorf("Summary missing %q:\n%s", want, s)
		}
	}
}

func TestWriteTrace(t *testing.T) {
	var buf bytes.Buffer
	WriteTrace(&buf, sampleResult(), false)
	out := buf.String()

	for _, want := range []string{"wrapped", "blocked", "1:1:N", "Final rover: 1:5:N"} {
		if !strings.Contains(out, want) {
			t.Errorf("Trace missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTrace_NoSteps(t *testing.T) {
	result := sampleResult()
	result.Steps = nil
	result.Commands = ""

	var buf bytes.Buffer
	WriteTrace(&buf, result, false)
	if strings.Contains(buf.String(), "Final rover") {
		t.Error("Expected no step table for an empty trace")
	}
	if !strings.Contains(buf.String(), "(none)") {
		t.Error("Expected empty command marker")
	}
}

func TestWriteMissions(t *testing.T) {
	var buf bytes.Buffer
	WriteMissions(&buf, nil)
	if !strings.Contains(buf.String(), "No missions found") {
		t.Errorf("Unexpected output %q", buf.String())
	}

	buf.Reset()
	WriteMissions(&buf, []*service.MissionInfo{
		{MissionID: "scenario-1", Name: "Drive", Width: 5, Height: 5, Commands: 4},
	})
	out := buf.String()
	if !strings.Contains(out, "scenario-1") || !strings.Contains(out, "5x5") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}
