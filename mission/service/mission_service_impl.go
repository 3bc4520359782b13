package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/samber/lo"
	"github.com/wricardo/mars-rover/mission/commands"
	"github.com/wricardo/mars-rover/mission/engine"
)

// DefaultMaxCommands is used when Options.MaxCommands is not positive.
const DefaultMaxCommands = 500

var (
	// ErrNoMissions is returned by RunMission when no mission manager is configured.
	ErrNoMissions = errors.New("no mission directory configured")
	// ErrStartOutsideGrid is returned by Simulate when the rover would start off the grid.
	ErrStartOutsideGrid = errors.New("start outside grid")
)

// Options tunes a MissionService.
type Options struct {
	MaxCommands int
	Debug       bool
}

// missionServiceImpl implements the MissionService interface
type missionServiceImpl struct {
	missions    MissionManager
	maxCommands int
	debug       bool
}

// NewMissionService creates a new mission service. missions may be nil, in
// which case only Simulate is usable.
func NewMissionService(missions MissionManager, opts Options) MissionService {
	if opts.MaxCommands <= 0 {
		opts.MaxCommands = DefaultMaxCommands
	}
	return &missionServiceImpl{
		missions:    missions,
		maxCommands: opts.MaxCommands,
		debug:       opts.Debug,
	}
}

// Simulate builds the grid described by req and runs its commands.
func (s *missionServiceImpl) Simulate(ctx context.Context, req SimulateRequest) (*SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mars, err := engine.NewMars(req.Width, req.Height, req.Obstacles...)
	if err != nil {
		return nil, err
	}

	start := engine.Position{X: req.Start.X, Y: req.Start.Y}
	if !mars.Contains(start) {
		return nil, fmt.Errorf("%w: %s is outside the %dx%d grid", ErrStartOutsideGrid, start, mars.Width(), mars.Height())
	}

	if !req.Start.Heading.Valid() {
		return nil, fmt.Errorf("%w: %d", engine.ErrInvalidHeading, int(req.Start.Heading))
	}

	cmds, err := commands.Parse(req.Commands)
	if err != nil {
		return nil, err
	}

	return s.run(mars, req.Start.Rover(), cmds), nil
}

// RunMission loads a mission by name and simulates it.
func (s *missionServiceImpl) RunMission(ctx context.Context, name string) (*SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.missions == nil {
		return nil, ErrNoMissions
	}

	mission, err := s.missions.LoadMission(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission %s: %w", name, err)
	}

	mars, err := mission.BuildMars()
	if err != nil {
		return nil, err
	}

	cmds, err := commands.Parse(mission.Commands)
	if err != nil {
		return nil, fmt.Errorf("mission %s: %w", name, err)
	}

	result := s.run(mars, mission.Start.Rover(), cmds)
	result.Mission = mission.Name

	if mission.Expected != nil {
		expected := *mission.Expected
		met := result.Final == expected
		result.Expected = &expected
		result.ExpectedMet = &met
	}

	return result, nil
}

// ListMissions returns every valid mission in the mission directory.
func (s *missionServiceImpl) ListMissions(ctx context.Context) ([]*MissionInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.missions == nil {
		return nil, ErrNoMissions
	}
	return s.missions.ListMissions()
}

func (s *missionServiceImpl) run(mars *engine.Mars, start engine.Rover, cmds []engine.Command) *SimulationResult {
	requested := len(cmds)
	truncated := false
	if requested > s.maxCommands {
		cmds = cmds[:s.maxCommands]
		truncated = true
	}

	steps, final := engine.Trace(mars, start, cmds)

	result := &SimulationResult{
		Width:             mars.Width(),
		Height:            mars.Height(),
		Start:             engine.PlacementOf(start),
		Final:             engine.PlacementOf(final),
		Commands:          commands.Format(cmds),
		Steps:             steps,
		BlockedCount:      lo.CountBy(steps, func(st engine.Step) bool { return st.Blocked }),
		WrapCount:         lo.CountBy(steps, func(st engine.Step) bool { return st.Wrapped }),
		RequestedCommands: requested,
		ExecutedCommands:  len(cmds),
		Truncated:         truncated,
	}
	if truncated {
		result.Limit = s.maxCommands
	}

	if s.debug {
		log.Printf("simulate %dx%d start=%s final=%s commands=%d blocked=%d wrapped=%d",
			mars.Width(), mars.Height(), start, final, len(cmds), result.BlockedCount, result.WrapCount)
	}

	return result
}
