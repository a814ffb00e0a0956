package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	engine "github.com/jason-s-yu/rummy/engine"
	"github.com/jason-s-yu/rummy/engine/agent"
	"github.com/logrusorgru/aurora"
)

// Tracer prints a line per game event. Hook it up with
// game.OnEvent = tracer.Event.
type Tracer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTracer writes to out, colouring output when color is true.
func NewTracer(out io.Writer, color bool) *Tracer {
	return &Tracer{out: out, au: aurora.NewAurora(color)}
}

// Event renders ev.
func (t *Tracer) Event(ev engine.Event) {
	au := t.au
	switch ev.Type {
	case engine.EventRound:
		fmt.Fprintf(t.out, "%s\n", au.Faint(fmt.Sprintf("-- round, %d turns left --", ev.TurnsLeft)))
	case engine.EventPick:
		fmt.Fprintf(t.out, "%s picks %s from the %s%s\n",
			au.Bold(ev.Player), au.Cyan(ev.Card), ev.Source, t.reward(ev.Reward))
	case engine.EventDrop:
		fmt.Fprintf(t.out, "%s drops %s%s\n", au.Bold(ev.Player), au.Yellow(ev.Card), t.reward(ev.Reward))
	case engine.EventMeld:
		fmt.Fprintf(t.out, "%s melds %s\n", au.Bold(ev.Player), au.Green(joinCards(ev.Cards)))
	case engine.EventReshuffle:
		fmt.Fprintf(t.out, "%s\n", au.Magenta("pile shuffled back into the deck"))
	case engine.EventWin:
		fmt.Fprintf(t.out, "%s wins with %d turns left\n", au.Green(au.Bold(ev.Player)), ev.TurnsLeft)
	}
}

func (t *Tracer) reward(r int) string {
	switch {
	case r > 0:
		return fmt.Sprintf(" (%s)", t.au.Green(fmt.Sprintf("%+d", r)))
	case r < 0:
		return fmt.Sprintf(" (%s)", t.au.Red(fmt.Sprintf("%+d", r)))
	}
	return ""
}

func joinCards(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// PrintPolicy lists the positive entries of the table, highest value first,
// as "state pick/drop value" rows. limit <= 0 prints them all.
func PrintPolicy(w io.Writer, table *agent.ValueTable, limit int, color bool) {
	au := aurora.NewAurora(color)
	entries := table.Positive()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, au.Faint("no positive action values"))
		return
	}

	fmt.Fprintf(w, "%-12s %-5s %-5s %s\n", "state", "pick", "drop", "value")
	for _, e := range entries {
		s := agent.IndexToState(e.Index)
		fmt.Fprintf(w, "%-12s %-5s %-5d %s\n",
			fmt.Sprintf("%d %d %d %d", s[0], s[1], s[2], s[3]),
			engine.PickAction(e.Pick), e.Drop,
			au.Green(fmt.Sprintf("%.2f", e.Value)))
	}
}

// PrintSummary writes a one-line result for a training or evaluation run.
func PrintSummary(w io.Writer, label string, res agent.TrainResult, color bool) {
	au := aurora.NewAurora(color)
	rate := fmt.Sprintf("%.1f%%", 100*res.WinRate())
	fmt.Fprintf(w, "%s: %d episodes, %d learner wins, win rate %s\n",
		au.Bold(label), res.Episodes, res.Wins, au.Cyan(rate))
}
