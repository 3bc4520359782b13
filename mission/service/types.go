package service

import (
	"github.com/wricardo/mars-rover/mission/engine"
)

// SimulateRequest describes an ad-hoc simulation.
type SimulateRequest struct {
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Obstacles []engine.Position `json:"obstacles,omitempty"`
	Start     engine.Placement  `json:"start"`
	Commands  string            `json:"commands"`
}

// SimulationResult contains the outcome of a simulation
type SimulationResult struct {
	Mission  string           `json:"mission,omitempty"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Start    engine.Placement `json:"start"`
	Final    engine.Placement `json:"final"`
	Commands string           `json:"commands"`

	// Per-step trace
	Steps        []engine.Step `json:"steps,omitempty"`
	BlockedCount int           `json:"blocked_count"`
	WrapCount    int           `json:"wrap_count"`

	RequestedCommands int  `json:"requested_commands"`
	ExecutedCommands  int  `json:"executed_commands"`
	Truncated         bool `json:"truncated,omitempty"`
	Limit             int  `json:"limit,omitempty"`

	// Set only when the mission declares an expected final placement.
	Expected    *engine.Placement `json:"expected,omitempty"`
	ExpectedMet *bool             `json:"expected_met,omitempty"`
}

// MissionInfo provides information about a mission file
type MissionInfo struct {
	Filename    string `json:"filename"`
	MissionID   string `json:"mission_id"` // The identifier to use with RunMission
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Obstacles   int    `json:"obstacles"`
	Commands    int    `json:"commands"`
}
