package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/trace"
	"go.uber.org/zap"
)

const frameInterval = time.Second / 60

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model owns the bars, the playback session and the scheduler that mutates
// them. The displayed heights change only through playback.
type Model struct {
	cfg        *config.Config
	algorithms []sorting.Algorithm
	rng        *rand.Rand
	log        *zap.Logger
	now        func() time.Time

	sched    *playback.Scheduler
	bars     playback.Bars
	selected string
	palette  playback.Palette
	counts   trace.Counts
	theme    Theme
	showHelp bool
	width    int
}

func NewModel(cfg *config.Config, registry *sorting.Registry, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:        cfg,
		algorithms: registry.Ordered(),
		rng:        rand.New(rand.NewSource(seed)),
		log:        log,
		now:        time.Now,
		sched: playback.New(playback.Config{
			Delay:  cfg.Delay(),
			Flash:  cfg.Flash(),
			Settle: cfg.Settle(),
		}, log.Named("playback")),
		palette: DefaultPalette,
		theme:   GetTheme(cfg.Theme),
		width:   80,
	}
	m.regenerate()

	if cfg.Algorithm != "" {
		if a, err := registry.Get(cfg.Algorithm); err == nil {
			m.selectAlgorithm(a.Name)
		} else {
			log.Warn("ignoring configured algorithm", zap.Error(err))
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", "r":
			m.regenerate()
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(m.algorithms) {
				m.selectAlgorithm(m.algorithms[idx].Name)
			}
		case "enter", " ", "p":
			m.play()
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		m.sched.Tick(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// regenerate draws a new random sequence unless a playback is in progress.
func (m *Model) regenerate() {
	if m.sched.Playing() {
		return
	}
	seq := trace.Random(m.rng, m.cfg.Bars, m.cfg.MinValue, m.cfg.MaxValue)
	m.bars = playback.NewBars(seq, m.palette.Normal)
	m.counts = trace.Counts{}
	m.log.Debug("sequence generated", zap.Int("bars", len(seq)))
}

func (m *Model) selectAlgorithm(name string) {
	if m.sched.Playing() {
		return
	}
	m.selected = name
	m.palette = PaletteFor(name)
	m.bars.PaintAll(m.palette.Normal)
}

func (m *Model) play() {
	if m.sched.Playing() || m.selected == "" {
		return
	}
	var alg sorting.Algorithm
	for _, a := range m.algorithms {
		if a.Name == m.selected {
			alg = a
		}
	}
	if alg.Generate == nil {
		return
	}

	tr := alg.Generate(trace.Sequence(m.bars.Heights()))
	m.counts = trace.CountSteps(tr)
	m.sched.Start(m.now(), tr, m.bars, m.palette)
	m.log.Info("playing", zap.String("algorithm", alg.Name), zap.Int("steps", len(tr)))
}

func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title).Render("SORTING VISUALIZER")

	buttons := make([]string, 0, len(m.algorithms))
	for i, a := range m.algorithms {
		bg := m.theme.Button
		if a.Name == m.selected {
			bg = lipgloss.Color(m.palette.Normal)
		}
		label := fmt.Sprintf("%d %s", i+1, a.Label)
		buttons = append(buttons, buttonStyle.Background(bg).Foreground(m.theme.Text).Render(label))
	}

	bars := panelStyle.Render(RenderBars(m.bars, m.cfg.Height, m.cfg.MaxValue))

	var s strings.Builder
	s.WriteString(title + "\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...) + "\n\n")
	s.WriteString(bars + "\n")
	s.WriteString(m.statusLine() + "\n")

	if m.counts.Total() > 0 {
		s.WriteString(labelStyle.Render("Compares") + valueStyle.Render(fmt.Sprint(m.counts.Compares)) + "\n")
		s.WriteString(labelStyle.Render("Swaps") + valueStyle.Render(fmt.Sprint(m.counts.Swaps)) + "\n")
		s.WriteString(labelStyle.Render("Overwrites") + valueStyle.Render(fmt.Sprint(m.counts.Overwrites)) + "\n")
	}

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true)
	if m.showHelp {
		s.WriteString(hint.Render(`
1-4    select algorithm
N      generate new array
Enter  play
T      cycle theme
?      toggle help
Q      quit`))
	} else {
		s.WriteString(hint.Render("\n1-4:Algorithm N:New Enter:Play T:Theme ?:Help Q:Quit"))
	}
	return s.String()
}

func (m Model) statusLine() string {
	if !m.sched.Playing() {
		status := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Idle).Render("IDLE")
		if m.selected == "" {
			status += valueStyle.Render("  select an algorithm")
		}
		return status
	}
	applied, total := m.sched.Progress()
	pct := 1.0
	if total > 0 {
		pct = float64(applied) / float64(total)
	}
	status := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Playing).Render("PLAYING")
	return fmt.Sprintf("%s %s %d/%d", status, ProgressBar(pct, 30, m.theme.Progress), applied, total)
}

// Run starts the interactive program.
func Run(cfg *config.Config, log *zap.Logger) error {
	p := tea.NewProgram(NewModel(cfg, sorting.NewRegistry(), log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
