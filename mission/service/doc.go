// Package service provides the application layer for running rover missions.
//
// The service package sits between the transports (CLI, MCP) and the
// engine. It is stateless: every call builds its own Mars from the request or
// from a mission file, runs the simulation and returns a result snapshot.
//
// Operations:
//   - Simulate: run an ad-hoc command string on an ad-hoc grid
//   - RunMission: load a named mission file and run it, checking its expectation
//   - ListMissions: describe every mission file available
//
// Usage:
//
//	svc := service.NewMissionService(manager, 500)
//	result, err := svc.Simulate(ctx, service.SimulateRequest{
//		Width: 5, Height: 5,
//		Start:    engine.Placement{X: 1, Y: 1, Heading: engine.North},
//		Commands: "FFRF",
//	})
package service
