package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/render"
	"github.com/san-kum/intseq/internal/seq"
)

const offsetStep = 0.05

var policies = []boundary.Policy{boundary.Clamp, boundary.Wrap, boundary.Bounce, boundary.None}

// Viewer is a Bubble Tea model that re-renders the sequence whenever a
// setting changes.
type Viewer struct {
	seq           seq.Sequence
	cfg           render.Config
	canvas        *render.Canvas
	err           error
	took          time.Duration
	theme         int
	braille       bool
	width, height int
}

func NewViewer(s seq.Sequence, cfg render.Config) Viewer {
	v := Viewer{seq: s, cfg: cfg, width: 80, height: 24}
	v.rerender()
	return v
}

func (v *Viewer) rerender() {
	start := time.Now()
	v.canvas, v.err = render.Render(v.seq, v.cfg)
	v.took = time.Since(start)
}

// Config is the render configuration currently shown.
func (v Viewer) Config() render.Config { return v.cfg }

func (v Viewer) Canvas() *render.Canvas { return v.canvas }

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "m":
		v.cfg.Mode = cycleMode(v.cfg.Mode, 1)
	case "M":
		v.cfg.Mode = cycleMode(v.cfg.Mode, -1)
	case "b":
		v.cfg.Boundary = nextPolicy(v.cfg.Boundary)
	case "+", "=":
		v.cfg.Rule++
	case "-", "_":
		v.cfg.Rule--
	case "]":
		v.cfg.ColorOffset = math.Min(1, roundStep(v.cfg.ColorOffset+offsetStep))
	case "[":
		v.cfg.ColorOffset = math.Max(0, roundStep(v.cfg.ColorOffset-offsetStep))
	case "p":
		v.braille = !v.braille
		return v, nil
	case "t":
		v.theme = (v.theme + 1) % len(Themes)
		return v, nil
	default:
		return v, nil
	}
	v.rerender()
	return v, nil
}

func roundStep(x float64) float64 {
	return math.Round(x/offsetStep) * offsetStep
}

func cycleMode(m render.Mode, dir int) render.Mode {
	modes := render.Modes()
	for i, x := range modes {
		if x == m {
			return modes[(i+dir+len(modes))%len(modes)]
		}
	}
	return modes[0]
}

func nextPolicy(p boundary.Policy) boundary.Policy {
	for i, x := range policies {
		if x == p {
			return policies[(i+1)%len(policies)]
		}
	}
	return policies[0]
}

func (v Viewer) View() string {
	th := Themes[v.theme]
	label := lipgloss.NewStyle().Foreground(th.Label)
	value := lipgloss.NewStyle().Foreground(th.Value).Bold(true)
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	var b strings.Builder
	b.WriteString("\n  " + GradientText("INTSEQ", th.TitleFrom, th.TitleTo) + "  " +
		muted.Render(fmt.Sprintf("%d values", len(v.seq))) + "\n")
	b.WriteString("  " + SparklineChart(v.seq, max(v.width-4, 8)) + "\n\n")

	// Leave room for the header and the status lines.
	cols := max(min(v.width-4, 2*(v.height-8)), 8)
	switch {
	case v.err != nil:
		b.WriteString("  " + lipgloss.NewStyle().Foreground(th.Error).Render(v.err.Error()) + "\n")
	case v.braille:
		b.WriteString(indent(Braille(v.canvas.Image(), cols, 0.1), "  "))
	default:
		b.WriteString(indent(HalfBlock(v.canvas.Image(), cols), "  "))
	}

	field := func(name, val string) string {
		return label.Render(name+" ") + value.Render(val)
	}
	b.WriteString("\n  " + strings.Join([]string{
		field("mode", v.cfg.Mode.String()),
		field("boundary", v.cfg.Boundary.String()),
		field("rule", fmt.Sprintf("%d", v.cfg.Rule)),
		field("offset", fmt.Sprintf("%.2f", v.cfg.ColorOffset)),
		field("time", v.took.Round(time.Microsecond).String()),
	}, "  ") + "\n")
	b.WriteString("  " + Separator(max(v.width-4, 8), th.Muted) + "\n")
	b.WriteString("  " + muted.Render("m/M mode  b boundary  +/- rule  [/] offset  p preview  t theme  q quit") + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(prefix + l)
	}
	return b.String()
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(s seq.Sequence, cfg render.Config) error {
	_, err := tea.NewProgram(NewViewer(s, cfg), tea.WithAltScreen()).Run()
	return err
}
