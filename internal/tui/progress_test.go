package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNoOpProgressTracker(_ *testing.T) {
	tracker := NewNoOpProgressTracker()

	// Should not panic
	tracker.Increment("Created vercel.json configuration")
	tracker.SetTotal(5)
	tracker.Complete()
	tracker.Fail(errors.New("disk full"))
}

func TestTextProgressTracker(t *testing.T) {
	tests := []struct {
		name  string
		steps []string
		want  []string
	}{
		{
			name:  "all applied",
			steps: []string{"Created netlify.toml configuration", ""},
			want: []string{
				"Applying fixes: 2 to apply",
				"[1/2] Created netlify.toml configuration",
				"[2/2]\n",
				"✓ Applying fixes: 2/2 done\n",
			},
		},
		{
			name:  "some not applied",
			steps: []string{"Created vercel.json configuration"},
			want:  []string{"✓ Applying fixes: 1/2 done, 1 not applied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tracker := newTextProgressTracker(&buf, 2, "Applying fixes")
			for _, s := range tt.steps {
				tracker.Increment(s)
			}
			tracker.Complete()

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q, got: %q", want, buf.String())
				}
			}
		})
	}
}

func TestTextProgressTracker_DefaultsToStdout(t *testing.T) {
	output := captureStdout(func() {
		NewTextProgressTracker(5, "Applying fixes").Fail(errors.New("permission denied"))
	})
	if !strings.Contains(output, "failed after 0/5 - permission denied") {
		t.Errorf("missing failure line, got: %q", output)
	}
}

func TestProgressModel_Update(t *testing.T) {
	t.Run("window size", func(t *testing.T) {
		m := &progressModel{total: 5}
		updated, cmd := m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
		if cmd != nil {
			t.Error("expected nil cmd")
		}
		if !updated.(*progressModel).narrow {
			t.Error("60 columns should switch to the narrow bar")
		}
	})

	t.Run("step", func(t *testing.T) {
		m := &progressModel{total: 5}
		updated, _ := m.Update(stepMsg("Fixed package.json scripts"))
		model := updated.(*progressModel)
		if model.applied() != 1 || model.steps[0] != "Fixed package.json scripts" {
			t.Errorf("model = %+v", model)
		}
	})

	t.Run("set total", func(t *testing.T) {
		m := &progressModel{total: 5}
		updated, _ := m.Update(totalMsg(3))
		if updated.(*progressModel).total != 3 {
			t.Errorf("total = %d, want 3", updated.(*progressModel).total)
		}
	})

	t.Run("finish quits", func(t *testing.T) {
		testErr := errors.New("write failed")
		m := &progressModel{total: 5}
		updated, cmd := m.Update(finishMsg{err: testErr})
		model := updated.(*progressModel)
		if !model.done || model.err != testErr || cmd == nil {
			t.Errorf("model = %+v, cmd nil = %v", model, cmd == nil)
		}
	})
}

func TestProgressModel_View(t *testing.T) {
	steps := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("fix %d", i+1)
		}
		return out
	}

	tests := []struct {
		name    string
		model   progressModel
		want    []string
		notWant []string
	}{
		{"in progress", progressModel{total: 5, steps: steps(2), label: "Applying fixes"}, []string{"Applying fixes", "2/5", "✓ fix 2"}, nil},
		{"narrow", progressModel{total: 5, steps: steps(5), label: "x", narrow: true}, []string{"5/5"}, nil},
		{"zero total", progressModel{label: "x"}, []string{"0/0"}, nil},
		{"over total", progressModel{total: 1, steps: steps(3), label: "x"}, []string{"3/1"}, nil},
		{"log is bounded", progressModel{total: 7, steps: steps(7), label: "x"}, []string{"fix 3", "fix 7"}, []string{"fix 2\n"}},
		{"done", progressModel{total: 5, steps: steps(5), label: "Applying fixes", done: true}, []string{"Applying fixes done (5/5)"}, nil},
		{"failed", progressModel{total: 5, label: "Applying fixes", done: true, err: errors.New("disk full")}, []string{"failed after 0/5", "disk full"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.model
			view := m.View() + "\n"
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("View() missing %q, got: %q", want, view)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(view, nw) {
					t.Errorf("View() should not contain %q, got: %q", nw, view)
				}
			}
		})
	}
}
