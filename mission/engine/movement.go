package engine

import "fmt"

// Wrap maps an out-of-range position back onto the grid. Each axis wraps
// independently: leaving one edge re-enters from the opposite edge.
func (m *Mars) Wrap(p Position) Position {
	x, y := p.X, p.Y

	if x < 1 {
		x = m.width
	} else if x > m.width {
		x = 1
	}

	if y < 1 {
		y = m.height
	} else if y > m.height {
		y = 1
	}

	return Position{X: x, Y: y}
}

// Normalize returns the rover with its position wrapped onto the grid.
func (m *Mars) Normalize(r Rover) Rover {
	return r.MoveTo(m.Wrap(r.Position))
}

// Displacement returns the unit vector a move command applies for a heading.
// Turn commands have no displacement.
func Displacement(cmd Command, heading Heading) Position {
	switch cmd {
	case MoveForward:
		switch heading {
		case North:
			return Position{X: 0, Y: 1}
		case South:
			return Position{X: 0, Y: -1}
		case East:
			return Position{X: 1, Y: 0}
		case West:
			return Position{X: -1, Y: 0}
		}
	case MoveBackward:
		switch heading {
		case South:
			return Position{X: 0, Y: 1}
		case North:
			return Position{X: 0, Y: -1}
		case West:
			return Position{X: 1, Y: 0}
		case East:
			return Position{X: -1, Y: 0}
		}
	case TurnLeft, TurnRight:
		return Position{}
	default:
		panic(fmt.Sprintf("engine: unknown command %d", int(cmd)))
	}
	panic(fmt.Sprintf("engine: unknown heading %d", int(heading)))
}

// Blocks reports whether a move with displacement delta from the given
// position runs into an obstacle. Both the raw displacement and the
// unwrapped candidate cell are checked against the obstacle set. The raw
// displacement check ignores the rover's position and is kept as is; the
// candidate cell check is an addition on top of it, so obstacles inside the
// grid block the rover too.
func (m *Mars) Blocks(from, delta Position) bool {
	if !m.HasObstacles() {
		return false
	}
	return m.IsObstacle(delta) || m.IsObstacle(from.Add(delta))
}

// Execute applies a single command to the rover and returns the next rover.
func Execute(mars *Mars, rover Rover, cmd Command) Rover {
	next, _ := step(mars, rover, cmd)
	return next
}

// outcome describes what happened to a single command.
type outcome struct {
	blocked bool
	wrapped bool
}

func step(mars *Mars, rover Rover, cmd Command) (Rover, outcome) {
	switch cmd {
	case TurnLeft:
		return mars.Normalize(rover.Face(rover.Heading.TurnLeft())), outcome{}
	case TurnRight:
		return mars.Normalize(rover.Face(rover.Heading.TurnRight())), outcome{}
	case MoveForward, MoveBackward:
		delta := Displacement(cmd, rover.Heading)
		if mars.Blocks(rover.Position, delta) {
			return rover, outcome{blocked: true}
		}
		candidate := rover.Position.Add(delta)
		next := mars.Normalize(rover.MoveTo(candidate))
		return next, outcome{wrapped: !next.Position.Equal(candidate)}
	}
	panic(fmt.Sprintf("engine: unknown command %d", int(cmd)))
}
