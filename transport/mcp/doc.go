// Package mcp provides a Model Context Protocol tool server for the Mars rover.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for rover simulations
//   - Text formatting of simulation results
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - simulate: Run a command string on an ad-hoc grid
//   - run_mission: Run a mission file by id
//   - list_missions: List available mission files
//   - rover_instructions: Explain grid, headings, commands and collision rules
//
// Transport:
//
// The server is served over stdio only; it never opens a network listener.
// Every tool call is stateless, so concurrent calls need no coordination.
//
// Usage:
//
//	srv := mcp.NewServer(missionService)
//	if err := server.ServeStdio(srv.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
