// Package console renders listings, help and diagnostics for the terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"steamlibrarian/core"
)

const Banner = "steam-librarian - a utility for moving games between Steam libraries, do not use while Steam is running"

type Printer struct {
	out    io.Writer
	errOut io.Writer

	header lipgloss.Style
	index  lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
}

// NewPrinter styles output only when the writers are terminals.
func NewPrinter(out io.Writer, errOut io.Writer) *Printer {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Printer{
		out:    out,
		errOut: errOut,
		header: outRenderer.NewStyle().Bold(true),
		index:  outRenderer.NewStyle().Foreground(lipgloss.Color("6")),
		err:    errRenderer.NewStyle().Foreground(lipgloss.Color("9")),
		warn:   outRenderer.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, p.warn.Render(msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.errOut, p.err.Render(msg))
}

func (p *Printer) PrintLibraryPaths(libraries core.Libraries) {
	fmt.Fprintln(p.out, p.header.Render("Steam libraries:"))
	for i, path := range libraries {
		fmt.Fprintf(p.out, "  %v: %v\n", p.index.Render(fmt.Sprint(i)), path)
	}
}

func (p *Printer) PrintGames(index int, games []*core.Game) {
	fmt.Fprintln(p.out, p.header.Render(fmt.Sprintf("Games in library %d:", index)))
	for _, game := range games {
		fmt.Fprintf(p.out, "  %v: %v\n", p.index.Render(fmt.Sprint(game.Id)), game.Name)
	}
}

func (p *Printer) PrintHelp(commands []core.Command) {
	fmt.Fprintln(p.out, Banner)
	fmt.Fprintln(p.out, p.header.Render("Available commands:"))

	width := 0
	for _, command := range commands {
		width = max(width, len(command.HelpLabel))
	}

	for _, command := range commands {
		padding := strings.Repeat(" ", width-len(command.HelpLabel)+1)
		fmt.Fprintf(p.out, "  %v:%v%v\n", p.index.Render(command.HelpLabel), padding, command.HelpDescription)
	}
}

func (p *Printer) PrintMovePlan(plan *core.MovePlan) {
	fmt.Fprintf(p.out, "Game to move: %v\n", p.header.Render(plan.Game.Name))
	fmt.Fprintf(p.out, "From: %v\n", plan.SourcePath)
	fmt.Fprintf(p.out, "To: %v\n", plan.TargetPath)
}

func (p *Printer) PrintGameDetails(details *core.GameDetails) {
	fmt.Fprintln(p.out, p.header.Render(fmt.Sprintf("%d: %v", details.Game.Id, details.Game.Name)))
	fmt.Fprintf(p.out, "  Library:      %d (%v)\n", details.LibraryIndex, details.LibraryPath)
	fmt.Fprintf(p.out, "  Install dir:  %v\n", details.DataPath)

	if details.SizeOnDisk > 0 {
		fmt.Fprintf(p.out, "  Size on disk: %v\n", humanize.Bytes(details.SizeOnDisk))
	}
	if details.BuildId != "" {
		fmt.Fprintf(p.out, "  Build:        %v\n", details.BuildId)
	}
	if !details.LastUpdated.IsZero() {
		fmt.Fprintf(p.out, "  Updated:      %v\n", humanize.Time(details.LastUpdated))
	}
}
