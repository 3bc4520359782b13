package engine

import "fmt"

// Heading is one of the four cardinal directions a rover can face.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Command is one instruction understood by the interpreter.
type Command int

const (
	MoveForward Command = iota
	MoveBackward
	TurnLeft
	TurnRight
)

// Position represents x,y coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Equal reports whether both coordinates match.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rover is the moving entity: where it stands and where it faces.
type Rover struct {
	Position Position `json:"position"`
	Heading  Heading  `json:"heading"`
}

// NewRover creates a rover at (x, y) facing heading.
func NewRover(x, y int, heading Heading) Rover {
	return Rover{Position: Position{X: x, Y: y}, Heading: heading}
}

// MoveTo returns a copy of the rover standing at p.
func (r Rover) MoveTo(p Position) Rover {
	return Rover{Position: p, Heading: r.Heading}
}

// Face returns a copy of the rover facing h.
func (r Rover) Face(h Heading) Rover {
	return Rover{Position: r.Position, Heading: h}
}

func (r Rover) String() string {
	return fmt.Sprintf("%s %s", r.Position, r.Heading)
}
