// Package config provides mission and process configuration for the rover.
//
// The config package handles:
//   - Loading mission definitions from JSON files
//   - Mission validation and caching
//   - Mission discovery and listing
//   - Process settings from environment variables
//
// Mission Format:
//
// Missions are stored as JSON files in the missions directory. Each mission
// defines the grid size, obstacles, the rover's starting placement, a command
// string and, optionally, the expected final placement.
//
// Usage:
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := config.NewManager(settings.MissionsDir)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mission, err := manager.LoadMission("scenario-1")
package config
