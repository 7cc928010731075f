package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/avik-so/lorenzlab/internal/dynamo"
)

const (
	liveWidth       = 70
	liveHeight      = 22
	zHistoryLength  = 240
	stepsPerFrame   = 8
	paramAdjustStep = 0.5
)

type TickMsg time.Time

// LiveModel steps a field in real time and draws the X-Z projection of the
// trajectory on a braille canvas, with live σ/r/b adjustment.
type LiveModel struct {
	f      dynamo.Field
	integ  dynamo.Integrator
	name   string
	dt     float64
	x      dynamo.State
	x0     dynamo.State
	t      float64
	zHist  []float64
	canvas *Canvas

	// adaptive projection bounds, grown as the trajectory explores
	minX, maxX float64
	minZ, maxZ float64

	params   map[string]float64
	keys     []string
	selected int
	running  bool
}

func NewLive(f dynamo.Field, integ dynamo.Integrator, x0 dynamo.State, dt float64, name string) LiveModel {
	params := make(map[string]float64)
	if c, ok := f.(dynamo.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return LiveModel{
		f:       f,
		integ:   integ,
		name:    name,
		dt:      dt,
		x:       x0.Clone(),
		x0:      x0.Clone(),
		zHist:   make([]float64, 0, zHistoryLength),
		canvas:  NewCanvas(liveWidth, liveHeight),
		minX:    -1, maxX: 1,
		minZ:    0, maxZ: 1,
		params:  params,
		keys:    keys,
		running: true,
	}
}

func (m LiveModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			if len(m.keys) > 0 {
				m.selected = (m.selected + 1) % len(m.keys)
			}
		case "+", "=":
			m.adjustParam(paramAdjustStep)
		case "-", "_":
			m.adjustParam(-paramAdjustStep)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *LiveModel) reset() {
	m.x = m.x0.Clone()
	m.t = 0
	m.zHist = m.zHist[:0]
	m.canvas.Clear()
	m.minX, m.maxX = -1, 1
	m.minZ, m.maxZ = 0, 1
}

func (m *LiveModel) adjustParam(delta float64) {
	if len(m.keys) == 0 {
		return
	}
	c, ok := m.f.(dynamo.Configurable)
	if !ok {
		return
	}
	key := m.keys[m.selected]
	v := m.params[key] + delta
	if err := c.SetParam(key, v); err == nil {
		m.params[key] = v
	}
}

func (m *LiveModel) step() {
	for i := 0; i < stepsPerFrame; i++ {
		m.x = m.x.Add(m.integ.Increment(m.f, m.x, m.dt))
		m.t += m.dt

		if !m.x.IsValid() {
			m.running = false
			return
		}

		m.growBounds()
		m.plotPoint()

		m.zHist = append(m.zHist, m.x[2])
		if len(m.zHist) > zHistoryLength {
			m.zHist = m.zHist[1:]
		}
	}
}

func (m *LiveModel) growBounds() {
	grew := false
	if m.x[0] < m.minX {
		m.minX = m.x[0]
		grew = true
	}
	if m.x[0] > m.maxX {
		m.maxX = m.x[0]
		grew = true
	}
	if m.x[2] < m.minZ {
		m.minZ = m.x[2]
		grew = true
	}
	if m.x[2] > m.maxZ {
		m.maxZ = m.x[2]
		grew = true
	}
	// Rescaling invalidates previously plotted pixels; start a fresh trail.
	if grew {
		m.canvas.Clear()
	}
}

func (m *LiveModel) plotPoint() {
	subW := float64(liveWidth*2 - 1)
	subH := float64(liveHeight*4 - 1)
	px := int((m.x[0] - m.minX) / (m.maxX - m.minX) * subW)
	py := int(subH) - int((m.x[2]-m.minZ)/(m.maxZ-m.minZ)*subH)
	m.canvas.Set(px, py)
}

func (m LiveModel) View() string {
	var sb strings.Builder

	status := "running"
	if !m.running {
		status = "paused"
	}
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s  t=%.2f  [%s]", m.name, m.t, status)))
	sb.WriteRune('\n')
	sb.WriteString(m.canvas.String())

	if len(m.zHist) >= 2 {
		sb.WriteString(graphStyle.Render(asciigraph.Plot(m.zHist,
			asciigraph.Height(6),
			asciigraph.Width(liveWidth),
			asciigraph.Caption("z"),
		)))
		sb.WriteRune('\n')
	}

	if len(m.keys) > 0 {
		parts := make([]string, 0, len(m.keys))
		for i, k := range m.keys {
			entry := fmt.Sprintf("%s=%.3f", k, m.params[k])
			if i == m.selected {
				entry = "[" + entry + "]"
			}
			parts = append(parts, entry)
		}
		sb.WriteString(valueStyle.Render(strings.Join(parts, "  ")))
		sb.WriteRune('\n')
	}

	sb.WriteString(helpStyle.Render("space pause · r reset · tab select param · +/- adjust · q quit"))
	sb.WriteRune('\n')
	return sb.String()
}

// RunLive starts the interactive attractor view and blocks until exit.
func RunLive(f dynamo.Field, integ dynamo.Integrator, x0 dynamo.State, dt float64, name string) error {
	p := tea.NewProgram(NewLive(f, integ, x0, dt, name))
	_, err := p.Run()
	return err
}
