package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidMission wraps every mission validation failure.
var ErrInvalidMission = errors.New("invalid mission")

var validate = validator.New()

// Placement is a rover position plus heading as written in mission files.
type Placement struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Heading Heading `json:"heading"`
}

// Rover converts the placement into a Rover value.
func (p Placement) Rover() Rover {
	return NewRover(p.X, p.Y, p.Heading)
}

// PlacementOf is the inverse of Placement.Rover.
func PlacementOf(r Rover) Placement {
	return Placement{X: r.Position.X, Y: r.Position.Y, Heading: r.Heading}
}

// MissionConfig represents a mission definition loaded from JSON
type MissionConfig struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Width       int        `json:"width" validate:"min=1,max=10000"`
	Height      int        `json:"height" validate:"min=1,max=10000"`
	Obstacles   []Position `json:"obstacles,omitempty"`
	Start       Placement  `json:"start"`
	Commands    string     `json:"commands"`
	Expected    *Placement `json:"expected,omitempty"`
}

// ValidateMission checks a mission definition for structural correctness.
// Command letters are checked by the command parser, not here.
func ValidateMission(config *MissionConfig) error {
	if config == nil {
		return fmt.Errorf("%w: mission is nil", ErrInvalidMission)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMission, err)
	}

	if !config.Start.Heading.Valid() {
		return fmt.Errorf("%w: start heading %d is not a cardinal direction", ErrInvalidMission, int(config.Start.Heading))
	}

	start := Position{X: config.Start.X, Y: config.Start.Y}
	if start.X < 1 || start.X > config.Width || start.Y < 1 || start.Y > config.Height {
		return fmt.Errorf("%w: start %s is outside the %dx%d grid", ErrInvalidMission, start, config.Width, config.Height)
	}

	if config.Expected != nil {
		if !config.Expected.Heading.Valid() {
			return fmt.Errorf("%w: expected heading %d is not a cardinal direction", ErrInvalidMission, int(config.Expected.Heading))
		}
		exp := Position{X: config.Expected.X, Y: config.Expected.Y}
		if exp.X < 1 || exp.X > config.Width || exp.Y < 1 || exp.Y > config.Height {
			return fmt.Errorf("%w: expected %s is outside the %dx%d grid", ErrInvalidMission, exp, config.Width, config.Height)
		}
	}

	return nil
}

// BuildMars constructs the grid described by the mission.
func (c *MissionConfig) BuildMars() (*Mars, error) {
	return NewMars(c.Width, c.Height, c.Obstacles...)
}

// LoadMissionFile loads and validates a mission from a JSON file
func LoadMissionFile(filename string) (*MissionConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return DecodeMission(data)
}

// DecodeMission parses and validates a JSON mission document.
func DecodeMission(data []byte) (*MissionConfig, error) {
	var config MissionConfig
	if err := json.Unmarshal(data, &config); err != nil {
		if errors.Is(err, ErrInvalidHeading) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMission, err)
		}
		return nil, err
	}

	if err := ValidateMission(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
