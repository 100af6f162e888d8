package viz

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/san-kum/stardrift/internal/export"
	"github.com/san-kum/stardrift/internal/game"
	"github.com/san-kum/stardrift/internal/input"
)

const (
	// DefaultHold is how long a key counts as held after its last repeat.
	// Terminals report no key releases.
	DefaultHold = 500 * time.Millisecond

	defaultFPS = 30
	maxElapsed = 0.25
	// lookStep is the arrow-key look increment as a fraction of the height.
	lookStep = 0.02

	minCols = 10
	minRows = 4
)

const bindings = `mouse / arrows   look (after grab)
click / space    grab look
esc              release look
w / s            forward / back
r                restart
t                cycle theme
p                save screenshot (svg)
?                toggle this help
q                quit`

type TickMsg time.Time

type mousePos struct {
	x, y int
	seen bool
}

// Model is the bubbletea program that drives a session in real time.
type Model struct {
	sess *game.Session
	r    *Renderer
	log  zerolog.Logger

	fps      int
	hold     time.Duration
	clock    func() time.Time
	held     map[input.Key]time.Time
	last     time.Time
	mouse    mousePos
	showHelp bool
}

// NewModel wires a session to its renderer. The session must have been
// created with r as its presenter.
func NewModel(sess *game.Session, r *Renderer, fps int, log zerolog.Logger) Model {
	if fps <= 0 {
		fps = defaultFPS
	}
	return Model{
		sess:  sess,
		r:     r,
		log:   log,
		fps:   fps,
		hold:  DefaultHold,
		clock: time.Now,
		held:  make(map[input.Key]time.Time),
	}
}

// Run starts the program on the terminal and blocks until it quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update translates terminal messages into session events and steps the
// session on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.r.Resize(max(msg.Width-hudWidth-3, minCols), max(msg.Height-1, minRows))
		m.sess.Draw(m.r.Window())
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		now := time.Time(msg)
		m.releaseExpired(now)
		var elapsed float64
		if !m.last.IsZero() {
			elapsed = min(now.Sub(m.last).Seconds(), maxElapsed)
		}
		m.last = now
		m.sess.Update(float32(elapsed))
		m.sess.Draw(m.r.Window())
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.log.Info().Float32("time", m.sess.Time()).Str("state", m.sess.State().String()).Msg("quit")
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		m.r.SetTheme(NextTheme(m.r.Theme().Name))
	case "p":
		m.screenshot()
	case " ", "space", "enter":
		m.send(input.Event{Type: input.MouseButtonDown})
	case "up":
		m.look(0, -lookStep)
	case "down":
		m.look(0, lookStep)
	case "left":
		m.look(-lookStep, 0)
	case "right":
		m.look(lookStep, 0)
	default:
		if k, ok := keyFor(msg); ok {
			m.press(k)
		}
	}
	return m, nil
}

// keyFor maps a terminal key to a game key.
func keyFor(msg tea.KeyMsg) (input.Key, bool) {
	switch msg.String() {
	case "esc":
		return input.KeyEscape, true
	case "w", "W":
		return input.KeyW, true
	case "s", "S":
		return input.KeyS, true
	case "a", "A":
		return input.KeyA, true
	case "d", "D":
		return input.KeyD, true
	case "r", "R":
		return input.KeyR, true
	}
	return input.KeyNone, false
}

// press sends a key down on the first report and extends the hold on
// repeats. Restart acts on the key-down itself, so every R report is
// forwarded.
func (m *Model) press(k input.Key) {
	if k == input.KeyEscape {
		m.send(input.Event{Type: input.KeyDown, Key: k})
		m.send(input.Event{Type: input.KeyUp, Key: k})
		return
	}
	if _, ok := m.held[k]; !ok || k == input.KeyR {
		m.send(input.Event{Type: input.KeyDown, Key: k})
	}
	m.held[k] = m.clock().Add(m.hold)
}

func (m *Model) releaseExpired(now time.Time) {
	for k, deadline := range m.held {
		if !now.Before(deadline) {
			m.send(input.Event{Type: input.KeyUp, Key: k})
			delete(m.held, k)
		}
	}
}

// look synthesizes relative mouse motion of dx, dy window heights.
func (m *Model) look(dx, dy float32) {
	h := float32(m.r.Window().Height)
	m.send(input.Event{Type: input.MouseMotion, XRel: dx * h, YRel: dy * h})
}

// handleMouse turns absolute cell positions into relative motion in dots.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.send(input.Event{Type: input.MouseButtonDown})
		}
	case tea.MouseActionMotion:
		if m.mouse.seen {
			dx, dy := msg.X-m.mouse.x, msg.Y-m.mouse.y
			if dx != 0 || dy != 0 {
				m.send(input.Event{Type: input.MouseMotion, XRel: float32(dx * 2), YRel: float32(dy * 4)})
			}
		}
		m.mouse = mousePos{x: msg.X, y: msg.Y, seen: true}
	}
}

func (m *Model) send(evt input.Event) {
	if m.sess.HandleEvent(evt, m.r.Window()) && evt.Type != input.MouseMotion {
		m.log.Debug().Int("type", int(evt.Type)).Str("key", evt.Key.String()).Msg("input")
	}
}

// screenshot writes the canvas to an SVG file in the working directory.
func (m *Model) screenshot() {
	path := fmt.Sprintf("stardrift_%d.svg", m.clock().Unix())
	if err := os.WriteFile(path, []byte(export.CanvasToSVG(m.r.Canvas(), 4)), 0644); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("screenshot")
		return
	}
	m.log.Info().Str("path", path).Msg("screenshot saved")
}

// View renders the current frame, with the key bindings on top when toggled.
func (m Model) View() string {
	view := m.r.View()
	if m.showHelp {
		return m.r.styles.Overlay.Render(bindings) + "\n" + view
	}
	return view
}
