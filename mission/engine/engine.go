package engine

import "github.com/samber/lo"

// Step records the effect of one command during a traced run.
type Step struct {
	Idx     int      `json:"idx"`
	Command Command  `json:"-"`
	Letter  string   `json:"command"`
	From    Rover    `json:"from"`
	To      Rover    `json:"to"`
	Blocked bool     `json:"blocked,omitempty"`
	Wrapped bool     `json:"wrapped,omitempty"`
	Delta   Position `json:"delta"`
}

// Run applies commands to rover in order and returns the final rover.
// An empty command slice returns rover unchanged.
func Run(mars *Mars, rover Rover, commands []Command) Rover {
	return lo.Reduce(commands, func(current Rover, cmd Command, _ int) Rover {
		return Execute(mars, current, cmd)
	}, rover)
}

// Trace is Run with a per-command record. Steps are numbered from 1.
func Trace(mars *Mars, rover Rover, commands []Command) ([]Step, Rover) {
	steps := make([]Step, 0, len(commands))
	current := rover

	for i, cmd := range commands {
		next, out := step(mars, current, cmd)
		steps = append(steps, Step{
			Idx:     i + 1,
			Command: cmd,
			Letter:  cmd.Letter(),
			From:    current,
			To:      next,
			Blocked: out.blocked,
			Wrapped: out.wrapped,
			Delta:   Displacement(cmd, current.Heading),
		})
		current = next
	}

	return steps, current
}
