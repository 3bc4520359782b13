// Package commands turns raw command strings into engine commands.
//
// Accepted input is a sequence of letters F, B, L and R (any case),
// optionally separated by whitespace, commas or semicolons. A letter may be
// prefixed with a repeat count: "3F" is the same as "FFF".
package commands

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/wricardo/mars-rover/mission/engine"
)

// MaxRepeat bounds a single repeat prefix.
const MaxRepeat = 1000

// Program is the parsed form of a command string.
type Program struct {
	Steps []*Step `parser:"@@*"`
}

// Step is one letter with an optional repeat count.
type Step struct {
	Pos    lexer.Position
	Repeat *int   `parser:"@Int?"`
	Letter string `parser:"@Letter"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Letter", Pattern: `[FfBbLlRr]`},
	{Name: "Sep", Pattern: `[\s,;]+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(commandLexer),
	participle.Elide("Sep"),
)

// Parse converts input into an ordered command slice. An empty or
// whitespace-only input yields an empty slice.
func Parse(input string) ([]engine.Command, error) {
	if strings.TrimSpace(input) == "" {
		return []engine.Command{}, nil
	}

	program, err := parser.ParseString("commands", input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidCommand, err)
	}

	return program.Commands()
}

// Commands expands repeat counts into a flat command slice.
func (p *Program) Commands() ([]engine.Command, error) {
	var out []engine.Command
	for _, step := range p.Steps {
		cmd, err := engine.ParseCommand(step.Letter)
		if err != nil {
			return nil, err
		}

		n := 1
		if step.Repeat != nil {
			n = *step.Repeat
		}
		if n < 1 || n > MaxRepeat {
			return nil, fmt.Errorf("%w: repeat count %d at column %d must be between 1 and %d",
				engine.ErrInvalidCommand, n, step.Pos.Column, MaxRepeat)
		}

		for i := 0; i < n; i++ {
			out = append(out, cmd)
		}
	}
	if out == nil {
		out = []engine.Command{}
	}
	return out, nil
}

// Format renders commands back into their compact letter form.
func Format(cmds []engine.Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString(c.Letter())
	}
	return b.String()
}
