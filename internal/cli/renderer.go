package cli

import (
	"fmt"
	"io"

	"dilemma-tactix/internal/bench"
	"dilemma-tactix/internal/events"
	"dilemma-tactix/internal/payoff"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Win, Lose, Draw, Info, Warn, Header, Prompt *color.Color
}{
	Win:    color.New(color.FgGreen),
	Lose:   color.New(color.FgRed),
	Draw:   color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// ColorizeChoice tints a choice label: cooperation green, defection red.
func ColorizeChoice(names payoff.ChoiceNames, c payoff.Choice) string {
	if c == payoff.Defect {
		return C.Lose.Sprint(names.Name(c))
	}
	return C.Win.Sprint(names.Name(c))
}

// RenderGrid writes the payoff grid as a table with player 1 on the rows and
// player 2 on the columns.
func RenderGrid(w io.Writer, grid *payoff.Grid) {
	names := grid.Names()
	low, high := grid.Bounds()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Payoff Grid [%d, %d]", low, high))
	t.AppendHeader(table.Row{"", "Player 2", "Player 2"}, table.RowConfig{AutoMerge: true})
	t.AppendHeader(table.Row{"Player 1", ColorizeChoice(names, payoff.Cooperate), ColorizeChoice(names, payoff.Defect)})
	for _, mine := range payoff.Choices {
		row := table.Row{ColorizeChoice(names, mine)}
		for _, theirs := range payoff.Choices {
			row = append(row, grid.PayoffFor(mine, theirs).String())
		}
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	t.Render()

	if grid.IsClassicDilemma() {
		C.Info.Fprintln(w, "This grid is a classic Prisoner's Dilemma (T > R > P > S).")
	}
}

// RenderReport writes a bench report table.
func RenderReport(w io.Writer, r *bench.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Bench: %d matches × %d rounds", r.Matches, r.Rounds))
	t.AppendHeader(table.Row{"", "A: " + string(r.A), "B: " + string(r.B)})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Total", r.TotalA, r.TotalB},
		{"Wins", r.WinsA, r.WinsB},
		{"Draws", r.Draws, r.Draws},
		{"Mean / match", r.MeanA.StringFixed(3), r.MeanB.StringFixed(3)},
		{"Mean / round", r.PerRoundA.StringFixed(3), r.PerRoundB.StringFixed(3)},
		{"Min", r.MinA, r.MinB},
		{"Max", r.MaxA, r.MaxB},
	})
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// MatchRenderer implements the events.Listener interface to print match progress.
type MatchRenderer struct {
	Out   io.Writer
	names payoff.ChoiceNames
	a, b  string
}

// HandleEvent is the central dispatcher for rendering events.
func (r *MatchRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GridReadyEvent:
		r.names = event.Grid.Names()
		r.a, r.b = event.PlayerA, event.PlayerB
		C.Header.Fprintf(r.Out, "--- %s vs %s: %d rounds ---\n", r.a, r.b, event.Rounds)
		RenderGrid(r.Out, event.Grid)
	case events.RoundStartEvent:
		C.Header.Fprintf(r.Out, "\n--- Round %d ---\n", event.Round)
	case events.RoundPlayedEvent:
		C.Info.Fprintf(r.Out, "%s chose %s, %s chose %s -> %s\n",
			r.a, ColorizeChoice(r.names, event.ChoiceA),
			r.b, ColorizeChoice(r.names, event.ChoiceB),
			event.Pair)
		fmt.Fprintf(r.Out, "Score: %s %d, %s %d\n", r.a, event.TotalA, r.b, event.TotalB)
	case events.MatchOverEvent:
		r.renderResult(event)
	}
}

func (r *MatchRenderer) renderResult(event events.MatchOverEvent) {
	C.Header.Fprintln(r.Out, "\n--- MATCH OVER ---")
	C.Info.Fprintf(r.Out, "Final score after %d rounds: %s %d, %s %d\n",
		event.Rounds, r.a, event.ScoreA, r.b, event.ScoreB)
	if event.Winner == "" {
		C.Draw.Fprintln(r.Out, "It's a draw.")
		return
	}
	C.Win.Fprintf(r.Out, "%s wins!\n", event.Winner)
}
