package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err       error
	storm     *storm
	spin      spinner.Model
	progress  counters
	tearDowns int32
	occupied  bool
	done      bool
}

type tickMsg time.Time

type stormDoneMsg struct {
	err error
}

func newInspectorModel(sc Scenario) *inspectorModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &inspectorModel{
		storm: newStorm(sc),
		spin:  sp,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startStorm, tick())
}

func (m *inspectorModel) startStorm() tea.Msg {
	return stormDoneMsg{err: m.storm.run()}
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tickMsg:
		m.progress, m.tearDowns, m.occupied = m.storm.snapshot()
		if m.done {
			return m, nil
		}
		return m, tick()

	case stormDoneMsg:
		m.done = true
		m.err = msg.err
		m.progress, m.tearDowns, m.occupied = m.storm.snapshot()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	sc := m.storm.scenario

	s := titleStyle.Render("static-ptr clone/drop storm") + "\n\n"
	s += fmt.Sprintf("%s %d goroutines × %d clones, payload %q\n\n",
		labelStyle.Render("scenario:"), sc.Goroutines, sc.Clones, sc.Payload)

	s += fmt.Sprintf("%s %s\n", labelStyle.Render("clones:   "),
		valueStyle.Render(fmt.Sprintf("%d", m.progress.Clones)))
	s += fmt.Sprintf("%s %s\n", labelStyle.Render("drops:    "),
		valueStyle.Render(fmt.Sprintf("%d", m.progress.Drops)))
	s += fmt.Sprintf("%s %s\n", labelStyle.Render("teardowns:"),
		valueStyle.Render(fmt.Sprintf("%d", m.tearDowns)))
	s += fmt.Sprintf("%s %v\n\n", labelStyle.Render("occupied: "), m.occupied)

	switch {
	case !m.done:
		s += m.spin.View() + " storm running...\n"
	case m.err != nil:
		s += errorStyle.Render(fmt.Sprintf("failed: %v", m.err)) + "\n"
	case m.tearDowns == 1 && !m.occupied:
		s += okStyle.Render("done: exactly one teardown, slot empty") + "\n"
	default:
		s += errorStyle.Render(fmt.Sprintf(
			"violation: %d teardowns, occupied=%v", m.tearDowns, m.occupied)) + "\n"
	}

	s += helpStyle.Render("\nq to quit")
	return s
}

func runInteractive(sc Scenario) error {
	p := tea.NewProgram(newInspectorModel(sc))
	_, err := p.Run()
	return err
}
