package main

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quintinfsmith/wrecked"
)

// Model drives the demo's compositor tree through bubbletea's update loop,
// the way the teacher's own Model drives its immediate-mode UI: a frame
// ticker repaints on a schedule, window-size messages resize the root, and
// the q / ctrl+c key presses quit (examples/bubbletea-demo/model.go).
type Model struct {
	mgr   *wrecked.RectManager
	layer *compositorLayer

	header, box, footer wrecked.ID

	width, height int
	tick          int
	quitting      bool
}

// frameTickMsg drives the ~20 FPS repaint loop, the same role the
// teacher's frameTickMsg plays.
type frameTickMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func newModel() *Model {
	mgr := wrecked.New(wrecked.Config{Width: 80, Height: 24})
	return &Model{mgr: mgr, layer: &compositorLayer{m: mgr}}
}

func (m *Model) Init() tea.Cmd {
	return frameTick()
}

// layoutWindows (re)builds the rect tree for the current terminal size.
// Called once a WindowSizeMsg has arrived, and again on every resize.
func (m *Model) layoutWindows() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.mgr.Resize(wrecked.RootID, m.width, m.height)

	if m.header == 0 {
		m.mgr.SetBgColor(wrecked.RootID, wrecked.Blue)

		m.header, _ = m.mgr.Create(wrecked.RootID, m.width, 1)
		m.mgr.SetBgColor(m.header, wrecked.Cyan)
		m.mgr.SetFgColor(m.header, wrecked.Black)

		boxW, boxH := 20, 5
		m.box, _ = m.mgr.Create(wrecked.RootID, boxW, boxH)
		m.mgr.SetBgColor(m.box, wrecked.White|wrecked.Bright)
		m.mgr.SetFgColor(m.box, wrecked.Black)

		m.footer, _ = m.mgr.Create(wrecked.RootID, m.width, 1)
		m.mgr.SetBgColor(m.footer, wrecked.Cyan)
		m.mgr.SetFgColor(m.footer, wrecked.Black)
		m.mgr.SetPosition(m.footer, 0, m.height-1)
		return
	}

	m.mgr.Resize(m.header, m.width, 1)
	m.mgr.Resize(m.footer, m.width, 1)
	m.mgr.SetPosition(m.footer, 0, m.height-1)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutWindows()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case frameTickMsg:
		m.tick++
		m.animate()
		return m, frameTick()
	}
	return m, nil
}

// animate bounces the box rect back and forth across the root and redraws
// the header/footer text, then recomposes the root so View's layer has
// fresh cells to read.
func (m *Model) animate() {
	if m.header == 0 {
		return
	}

	boxW := 20
	travel := m.width - boxW
	if travel < 1 {
		travel = 1
	}
	period := travel * 2
	phase := m.tick % period
	x := phase
	if phase >= travel {
		x = period - phase
	}
	m.mgr.SetPosition(m.box, x, m.height/2-2)

	m.mgr.SetString(m.header, 1, 0, " wrecked demo — a retained-mode terminal compositor")
	m.mgr.ClearCharacters(m.box)
	m.mgr.SetString(m.box, 2, 2, "bouncing rect")

	m.mgr.SetString(m.footer, 1, 0, fmt.Sprintf(" q/ctrl+c to quit  ·  tick %d", m.tick))

	m.mgr.Render(wrecked.RootID)
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.layer)
	v.AltScreen = true
	return v
}
