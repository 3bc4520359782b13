package service

import (
	"context"

	"github.com/wricardo/mars-rover/mission/engine"
)

// MissionService defines all mission-related operations
type MissionService interface {
	Simulate(ctx context.Context, req SimulateRequest) (*SimulationResult, error)
	RunMission(ctx context.Context, name string) (*SimulationResult, error)
	ListMissions(ctx context.Context) ([]*MissionInfo, error)
}

// MissionManager handles mission file loading
type MissionManager interface {
	LoadMission(name string) (*engine.MissionConfig, error)
	ListMissions() ([]*MissionInfo, error)
}
