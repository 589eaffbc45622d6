package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velvetfox/riceup/internal/sequencer"
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepWarned
	stepFailed
)

type stepState struct {
	name   string
	status stepStatus
	err    error
}

type eventMsg struct {
	ev sequencer.Event
	ok bool
}

type logMsg struct {
	line string
	ok   bool
}

// Model renders sequencer progress: a step list driven by the runner's event
// channel and a tail of the collaborator log lines.
type Model struct {
	styles  Styles
	spinner spinner.Model
	steps   []stepState
	logs    []string
	events  <-chan sequencer.Event
	lines   <-chan string
	done    bool
}

func NewModel(stepNames []string, events <-chan sequencer.Event, lines <-chan string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	steps := make([]stepState, len(stepNames))
	for i, name := range stepNames {
		steps[i] = stepState{name: name, status: stepPending}
	}

	return Model{
		styles:  NewStyles(GruvboxTheme()),
		spinner: sp,
		steps:   steps,
		events:  events,
		lines:   lines,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent(), m.waitForLog())
}

func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		return eventMsg{ev: ev, ok: ok}
	}
}

func (m Model) waitForLog() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.lines
		return logMsg{line: line, ok: ok}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case eventMsg:
		if !msg.ok {
			m.done = true
			return m, tea.Quit
		}
		m.apply(msg.ev)
		return m, m.waitForEvent()

	case logMsg:
		if !msg.ok {
			return m, nil
		}
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > 64 {
			m.logs = m.logs[len(m.logs)-64:]
		}
		return m, m.waitForLog()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) apply(ev sequencer.Event) {
	if ev.Index < 0 || ev.Index >= len(m.steps) {
		return
	}
	switch ev.Kind {
	case sequencer.EventStarted:
		m.steps[ev.Index].status = stepRunning
	case sequencer.EventSucceeded:
		m.steps[ev.Index].status = stepDone
	case sequencer.EventWarned:
		m.steps[ev.Index].status = stepWarned
		m.steps[ev.Index].err = ev.Err
	case sequencer.EventFailed:
		m.steps[ev.Index].status = stepFailed
		m.steps[ev.Index].err = ev.Err
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("riceup"))
	b.WriteString("\n")

	for _, step := range m.steps {
		switch step.status {
		case stepPending:
			b.WriteString(m.styles.Subtle.Render("  ○ " + step.name))
		case stepRunning:
			b.WriteString(fmt.Sprintf("  %s %s", m.spinner.View(), m.styles.Normal.Render(step.name)))
		case stepDone:
			b.WriteString(m.styles.Success.Render("  ✓ " + step.name))
		case stepWarned:
			b.WriteString(m.styles.Warning.Render(fmt.Sprintf("  ⚠ %s (%v)", step.name, step.err)))
		case stepFailed:
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("  ✗ %s (%v)", step.name, step.err)))
		}
		b.WriteString("\n")
	}

	if len(m.logs) > 0 && !m.done {
		b.WriteString("\n")
		maxLines := 8
		start := 0
		if len(m.logs) > maxLines {
			start = len(m.logs) - maxLines
		}
		for _, line := range m.logs[start:] {
			b.WriteString(m.styles.Subtle.Render("  " + line))
			b.WriteString("\n")
		}
	}

	return b.String()
}
