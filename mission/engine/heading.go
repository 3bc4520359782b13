package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidHeading = errors.New("invalid heading")
	ErrInvalidCommand = errors.New("invalid command")
)

// Headings lists every heading in clockwise order starting at North.
var Headings = []Heading{North, East, South, West}

// Commands lists every command the interpreter accepts.
var Commands = []Command{MoveForward, MoveBackward, TurnLeft, TurnRight}

// TurnLeft returns the counter-clockwise neighbour (N→W→S→E→N).
func (h Heading) TurnLeft() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	panic(fmt.Sprintf("engine: unknown heading %d", int(h)))
}

// TurnRight returns the clockwise neighbour (N→E→S→W→N).
func (h Heading) TurnRight() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(fmt.Sprintf("engine: unknown heading %d", int(h)))
}

// Letter returns the single-letter code of the heading.
func (h Heading) Letter() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// MarshalText encodes the heading as its letter so JSON output stays compact.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, int(h))
	}
	return []byte(h.Letter()), nil
}

// UnmarshalText accepts anything ParseHeading accepts.
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// ParseHeading accepts N/E/S/W or the full direction name, case-insensitive.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// Letter returns the single-letter code of the command.
func (c Command) Letter() string {
	switch c {
	case MoveForward:
		return "F"
	case MoveBackward:
		return "B"
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return "?"
}

func (c Command) String() string {
	switch c {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// IsMove reports whether the command displaces the rover.
func (c Command) IsMove() bool {
	return c == MoveForward || c == MoveBackward
}

// ParseCommand maps a single letter (F, B, L, R; any case) to a Command.
func ParseCommand(letter string) (Command, error) {
	switch strings.ToUpper(letter) {
	case "F":
		return MoveForward, nil
	case "B":
		return MoveBackward, nil
	case "L":
		return TurnLeft, nil
	case "R":
		return TurnRight, nil
	}
	return MoveForward, fmt.Errorf("%w: %q", ErrInvalidCommand, letter)
}
