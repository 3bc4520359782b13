package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mars-rover/mission/commands"
	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/mission/service"
)

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrInvalidMission  = errors.New("invalid mission")
)

// Manager handles mission loading and caching
type Manager struct {
	missionDir string
	missions   map[string]*engine.MissionConfig
	mu         sync.RWMutex
}

// NewManager creates a new mission manager
func NewManager(missionDir string) (*Manager, error) {
	info, err := os.Stat(missionDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("mission directory does not exist: %s", missionDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat mission directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("mission path is not a directory: %s", missionDir)
	}

	return &Manager{
		missionDir: missionDir,
		missions:   make(map[string]*engine.MissionConfig),
	}, nil
}

// Dir returns the directory the manager reads from.
func (m *Manager) Dir() string {
	return m.missionDir
}

// LoadMission loads a mission by name
func (m *Manager) LoadMission(name string) (*engine.MissionConfig, error) {
	name = strings.TrimSuffix(name, ".json")
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrMissionNotFound, name)
	}

	m.mu.RLock()
	// Check cache first
	if mission, exists := m.missions[name]; exists {
		m.mu.RUnlock()
		return mission, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if mission, exists := m.missions[name]; exists {
		return mission, nil
	}

	data, err := os.ReadFile(filepath.Join(m.missionDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissionNotFound, name)
		}
		return nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	mission, err := engine.DecodeMission(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMission, name, err)
	}

	// Reject missions whose command string would fail at run time.
	if _, err := commands.Parse(mission.Commands); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMission, name, err)
	}

	m.missions[name] = mission
	return mission, nil
}

// ListMissions returns information about all valid missions, sorted by file name
func (m *Manager) ListMissions() ([]*service.MissionInfo, error) {
	entries, err := os.ReadDir(m.missionDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission directory: %w", err)
	}

	var infos []*service.MissionInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")

		mission, err := m.LoadMission(id)
		if err != nil {
			// Skip invalid missions
			continue
		}

		cmds, _ := commands.Parse(mission.Commands)
		infos = append(infos, &service.MissionInfo{
			Filename:    entry.Name(),
			MissionID:   id,
			Name:        mission.Name,
			Description: mission.Description,
			Width:       mission.Width,
			Height:      mission.Height,
			Obstacles:   len(mission.Obstacles),
			Commands:    len(cmds),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Filename < infos[j].Filename })
	return infos, nil
}

// RefreshCache drops every cached mission so the next load re-reads disk
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missions = make(map[string]*engine.MissionConfig)
}
