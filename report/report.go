// Package report renders rovers and simulation results as text.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/wricardo/mars-rover/mission/engine"
	"github.com/wricardo/mars-rover/mission/service"
)

var (
	blockedStyle = color.New(color.FgRed, color.OpBold)
	wrappedStyle = color.New(color.FgYellow)
	finalStyle   = color.New(color.FgGreen, color.OpBold)
)

// FormatRover renders the compact x:y:H form, e.g. "2:3:E".
func FormatRover(r engine.Rover) string {
	return FormatPlacement(engine.PlacementOf(r))
}

// FormatPlacement renders a placement in the compact x:y:H form.
func FormatPlacement(p engine.Placement) string {
	return fmt.Sprintf("%d:%d:%s", p.X, p.Y, p.Heading.Letter())
}

// Describe renders a placement for humans, e.g. "(2, 3) facing East".
func Describe(p engine.Placement) string {
	return fmt.Sprintf("(%d, %d) facing %s", p.X, p.Y, p.Heading)
}

// Summary returns a multi-line description of a simulation result.
func Summary(result *service.SimulationResult) string {
	s := ""
	if result.Mission != "" {
		s += fmt.Sprintf("Mission: %s\n", result.Mission)
	}
	s += fmt.Sprintf("Grid: %dx%d\n", result.Width, result.Height)
	s += fmt.Sprintf("Start: %s\n", Describe(result.Start))
	s += fmt.Sprintf("Commands: %s (%d executed", displayCommands(result.Commands), result.ExecutedCommands)
	if result.Truncated {
		s += fmt.Sprintf(", truncated from %d at limit %d", result.RequestedCommands, result.Limit)
	}
	s += ")\n"
	s += fmt.Sprintf("Blocked: %d  Wrapped: %d\n", result.BlockedCount, result.WrapCount)
	s += fmt.Sprintf("Final: %s [%s]\n", Describe(result.Final), FormatPlacement(result.Final))

	if result.Expected != nil && result.ExpectedMet != nil {
		if *result.ExpectedMet {
			s += fmt.Sprintf("Expected: %s ✓\n", FormatPlacement(*result.Expected))
		} else {
			s += fmt.Sprintf("Expected: %s ✗ (got %s)\n", FormatPlacement(*result.Expected), FormatPlacement(result.Final))
		}
	}
	return s
}

// WriteTrace prints the summary followed by a per-step table. When colored
// is set, blocked and wrapped steps are highlighted.
func WriteTrace(w io.Writer, result *service.SimulationResult, colored bool) {
	fmt.Fprint(w, Summary(result))
	if len(result.Steps) == 0 {
		return
	}
	fmt.Fprintln(w)

	table := newTable(w)
	table.SetHeader([]string{"#", "Cmd", "From", "To", "Note"})
	for _, st := range result.Steps {
		note := ""
		switch {
		case st.Blocked:
			note = "blocked"
			if colored {
				note = blockedStyle.Render(note)
			}
		case st.Wrapped:
			note = "wrapped"
			if colored {
				note = wrappedStyle.Render(note)
			}
		}
		table.Append([]string{
			strconv.Itoa(st.Idx),
			st.Letter,
			FormatRover(st.From),
			FormatRover(st.To),
			note,
		})
	}
	table.Render()

	final := FormatPlacement(result.Final)
	if colored {
		final = finalStyle.Render(final)
	}
	fmt.Fprintf(w, "\nFinal rover: %s\n", final)
}

// WriteMissions prints one row per mission.
func WriteMissions(w io.Writer, infos []*service.MissionInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No missions found")
		return
	}

	table := newTable(w)
	table.SetHeader([]string{"ID", "Name", "Grid", "Obstacles", "Commands", "Description"})
	table.AppendBulk(lo.Map(infos, func(info *service.MissionInfo, _ int) []string {
		return []string{
			info.MissionID,
			info.Name,
			fmt.Sprintf("%dx%d", info.Width, info.Height),
			strconv.Itoa(info.Obstacles),
			strconv.Itoa(info.Commands),
			info.Description,
		}
	}))
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func displayCommands(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
