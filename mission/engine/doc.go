// Package engine provides the core simulation logic for the Mars rover.
//
// The engine package implements:
//   - Position, Heading, Command and Rover value types
//   - Mars, an immutable wrapping grid with optional obstacles
//   - Boundary normalization (toroidal wrap-around)
//   - The command interpreter mapping (rover, command) to the next rover
//   - The simulation driver folding the interpreter over a command sequence
//
// Core Types:
//
// Rover is a plain value made of a Position and a Heading. Nothing in this
// package mutates a Rover; every command yields a new value. Mars is built
// once with NewMars and shared read-only by every run that uses it.
//
// Usage:
//
//	mars, err := engine.NewMars(5, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	start := engine.NewRover(1, 1, engine.North)
//	final := engine.Run(mars, start, []engine.Command{
//		engine.MoveForward, engine.MoveForward, engine.TurnRight, engine.MoveForward,
//	})
//	// final == Rover{Position{2, 3}, East}
//
// Collision Rules:
//
// A move is blocked, leaving the rover untouched, when the obstacle set holds
// either the raw unit displacement of the move or the unwrapped candidate
// cell. Turns are never blocked.
package engine
