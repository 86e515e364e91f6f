package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyleLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	progressStyleDone  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	progressStyleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	progressStyleStep  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// maxVisibleSteps bounds the step log under the bar.
const maxVisibleSteps = 5

// ========================================
// Bubbletea Progress Model
// ========================================

// progressModel draws a bar for the fixes applied so far plus a short log
// of the most recent ones.
type progressModel struct {
	label  string
	total  int
	steps  []string
	done   bool
	err    error
	narrow bool
}

func (m *progressModel) applied() int { return len(m.steps) }

func (m *progressModel) Init() tea.Cmd {
	return nil
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.narrow = msg.Width < 80
	case stepMsg:
		m.steps = append(m.steps, string(msg))
	case totalMsg:
		m.total = int(msg)
	case finishMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *progressModel) View() string {
	counter := fmt.Sprintf("%d/%d", m.applied(), m.total)

	if m.done {
		if m.err != nil {
			return progressStyleFail.Render(fmt.Sprintf("✗ %s failed after %s: %v", m.label, counter, m.err))
		}
		return progressStyleDone.Render(fmt.Sprintf("✓ %s done (%s)", m.label, counter))
	}

	var b strings.Builder
	b.WriteString(progressStyleLabel.Render(m.label))
	b.WriteString("\n")
	b.WriteString(renderBar(m.applied(), m.total, m.narrow))
	b.WriteString(" " + counter)

	start := 0
	if len(m.steps) > maxVisibleSteps {
		start = len(m.steps) - maxVisibleSteps
	}
	for _, s := range m.steps[start:] {
		if s == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(progressStyleStep.Render("  ✓ " + s))
	}
	return b.String()
}

func renderBar(n, total int, narrow bool) string {
	width := 40
	if narrow {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = min(n*width/total, width)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// ========================================
// Bubbletea Messages
// ========================================

type stepMsg string

type totalMsg int

type finishMsg struct {
	err error
}

// ========================================
// BubbleteaProgressTracker Implementation
// ========================================

// BubbleteaProgressTracker drives progressModel from the fix executor.
type BubbleteaProgressTracker struct {
	program *tea.Program
	exited  chan struct{}
}

// NewBubbleteaProgressTracker starts the bar in the background.
func NewBubbleteaProgressTracker(total int, label string) *BubbleteaProgressTracker {
	t := &BubbleteaProgressTracker{
		program: tea.NewProgram(&progressModel{label: label, total: total}),
		exited:  make(chan struct{}),
	}
	go func() {
		defer close(t.exited)
		_, _ = t.program.Run()
	}()
	return t
}

// Increment records one applied fix.
func (t *BubbleteaProgressTracker) Increment(message string) {
	t.program.Send(stepMsg(message))
}

// SetTotal sets the number of fixes expected.
func (t *BubbleteaProgressTracker) SetTotal(total int) {
	t.program.Send(totalMsg(total))
}

// Complete draws the final line and waits for the program to exit.
func (t *BubbleteaProgressTracker) Complete() {
	t.finish(nil)
}

// Fail draws err as the final line and waits for the program to exit.
func (t *BubbleteaProgressTracker) Fail(err error) {
	t.finish(err)
}

func (t *BubbleteaProgressTracker) finish(err error) {
	t.program.Send(finishMsg{err: err})
	select {
	case <-t.exited:
	case <-time.After(time.Second):
	}
}

// ========================================
// Text Progress (Non-TTY)
// ========================================

// TextProgressTracker prints one line per applied fix.
type TextProgressTracker struct {
	w       io.Writer
	label   string
	total   int
	applied int
}

// NewTextProgressTracker creates a text tracker writing to stdout.
func NewTextProgressTracker(total int, label string) *TextProgressTracker {
	return newTextProgressTracker(os.Stdout, total, label)
}

func newTextProgressTracker(w io.Writer, total int, label string) *TextProgressTracker {
	fmt.Fprintf(w, "%s: %d to apply\n", label, total)
	return &TextProgressTracker{w: w, label: label, total: total}
}

// Increment prints the applied fix.
func (t *TextProgressTracker) Increment(message string) {
	t.applied++
	line := fmt.Sprintf("  [%d/%d]", t.applied, t.total)
	if message != "" {
		line += " " + message
	}
	fmt.Fprintln(t.w, line)
}

// SetTotal sets the number of fixes expected.
func (t *TextProgressTracker) SetTotal(total int) {
	t.total = total
}

// Complete prints the summary line.
func (t *TextProgressTracker) Complete() {
	if t.applied < t.total {
		fmt.Fprintf(t.w, "✓ %s: %d/%d done, %d not applied\n", t.label, t.applied, t.total, t.total-t.applied)
		return
	}
	fmt.Fprintf(t.w, "✓ %s: %d/%d done\n", t.label, t.applied, t.total)
}

// Fail prints err.
func (t *TextProgressTracker) Fail(err error) {
	fmt.Fprintf(t.w, "✗ %s: failed after %d/%d - %v\n", t.label, t.applied, t.total, err)
}

// ========================================
// No-Op Progress (Quiet/JSON)
// ========================================

// NoOpProgressTracker does nothing (for quiet/JSON/testing modes)
type NoOpProgressTracker struct{}

// NewNoOpProgressTracker creates a new no-op progress tracker
func NewNoOpProgressTracker() *NoOpProgressTracker {
	return &NoOpProgressTracker{}
}

// Increment does nothing (no-op implementation).
func (t *NoOpProgressTracker) Increment(_ string) {}

// SetTotal does nothing (no-op implementation).
func (t *NoOpProgressTracker) SetTotal(_ int) {}

// Complete does nothing (no-op implementation).
func (t *NoOpProgressTracker) Complete() {}

// Fail does nothing (no-op implementation).
func (t *NoOpProgressTracker) Fail(_ error) {}
