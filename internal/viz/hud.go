package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stardrift/internal/game"
	"github.com/san-kum/stardrift/internal/input"
)

const historyCapacity = 300

type hud struct {
	time     float32
	bodies   int
	dominant string
	distance float32
	state    game.State
	help     string
	banners  []string
}

// Renderer is a game.Presenter that draws frames onto a braille canvas with
// a HUD panel beside it.
type Renderer struct {
	canvas  *Canvas
	styles  Styles
	hud     hud
	history []float64
	lastT   float32
	drawn   bool
}

func NewRenderer(cols, rows int, theme Theme) *Renderer {
	return &Renderer{
		canvas:  NewCanvas(cols, rows),
		styles:  NewStyles(theme),
		history: make([]float64, 0, historyCapacity),
	}
}

func (r *Renderer) Resize(cols, rows int) { r.canvas.Resize(cols, rows) }

// Window is the drawable size in dots, which is what the session normalizes
// mouse motion against.
func (r *Renderer) Window() input.WindowSize {
	w, h := r.canvas.Dots()
	return input.WindowSize{Width: w, Height: h}
}

func (r *Renderer) Theme() Theme       { return r.styles.Theme }
func (r *Renderer) SetTheme(t Theme)   { r.styles = NewStyles(t) }
func (r *Renderer) Canvas() *Canvas    { return r.canvas }
func (r *Renderer) History() []float64 { return r.history }

// Present implements game.Presenter.
func (r *Renderer) Present(f game.Frame) {
	r.canvas.Clear()
	drawScene(r.canvas, f)

	r.hud = hud{
		time:     f.Time,
		bodies:   len(f.Bodies),
		dominant: f.DominantName,
		distance: f.OriginDistance,
		state:    f.State,
		help:     f.Help,
		banners:  append([]string(nil), f.Banners...),
	}

	// Redraws of the same frame do not extend the history.
	if !r.drawn || f.Time != r.lastT {
		r.history = append(r.history, float64(f.OriginDistance))
		if len(r.history) > historyCapacity {
			r.history = r.history[1:]
		}
		r.lastT = f.Time
		r.drawn = true
	}
}

// View renders the canvas and the HUD panel.
func (r *Renderer) View() string {
	st := r.styles
	canvasView := st.Canvas.Render(r.canvas.String())

	var s strings.Builder
	s.WriteString(st.Header.Render("STARDRIFT") + "\n")
	s.WriteString(st.Label.Render("State") + st.Value.Render(strings.ToUpper(r.hud.state.String())) + "\n")
	s.WriteString(st.Label.Render("Time") + st.Value.Render(fmt.Sprintf("%.2fs", r.hud.time)) + "\n")
	s.WriteString(st.Label.Render("Bodies") + st.Value.Render(fmt.Sprintf("%d", r.hud.bodies)) + "\n")
	dominant := r.hud.dominant
	if dominant == "" {
		dominant = "-"
	}
	s.WriteString(st.Label.Render("Dominant") + st.Value.Render(dominant) + "\n")
	s.WriteString(st.Label.Render("Distance") + st.Value.Render(fmt.Sprintf("%.1f / %.0f", r.hud.distance, game.EscapeDistance)) + "\n")
	s.WriteString(st.ProgressBar(float64(r.hud.distance)/game.EscapeDistance, hudWidth-4) + "\n")

	if len(r.history) > 1 {
		chart := asciigraph.Plot(r.history,
			asciigraph.Height(4),
			asciigraph.Width(hudWidth-12),
			asciigraph.Caption("origin distance"))
		s.WriteString("\n" + st.Graph.Render(chart) + "\n")
	}

	for _, b := range r.hud.banners {
		style := st.Escape
		if b == game.CrashBanner {
			style = st.Crash
		}
		s.WriteString("\n" + style.Render(b) + "\n")
	}

	s.WriteString("\n" + st.Separator(hudWidth-4) + "\n")
	s.WriteString(st.Help.Width(hudWidth - 4).Render(r.hud.help))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.Panel.Render(s.String()))
}
