package tui

import (
	"strings"
	"testing"

	"github.com/EmundoT/deployfix/internal/core"
)

var _ core.UICallback = (*TUICallback)(nil)

func TestTUICallback_Messages(t *testing.T) {
	cb := NewTUICallback(false)

	tests := []struct {
		name string
		fn   func()
		want []string
	}{
		{"error", func() { cb.ShowError("Write failed", "vercel.json: permission denied") }, []string{"Write failed", "permission denied"}},
		{"success", func() { cb.ShowSuccess("Build successful!") }, []string{"Build successful!"}},
		{"warning", func() { cb.ShowWarning("Ignoring .deployfix.yml", "bad timeout") }, []string{"Ignoring .deployfix.yml", "bad timeout"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(tt.fn)
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q, got: %q", want, output)
				}
			}
		})
	}
}

func TestTUICallback_AutoApprove(t *testing.T) {
	cb := NewTUICallback(true)
	if !cb.IsAutoApprove() {
		t.Error("IsAutoApprove() = false, want true")
	}
	// --yes must never open a prompt
	if !cb.AskConfirmation("Apply fixes?", "5 fixes will be written") {
		t.Error("AskConfirmation() should approve when auto-approve is set")
	}

	if NewTUICallback(false).IsAutoApprove() {
		t.Error("IsAutoApprove() = true without --yes")
	}
}

func TestTUICallback_Basics(t *testing.T) {
	cb := NewTUICallback(false)

	if got := cb.StyleTitle("Analysis Results"); !strings.Contains(got, "Analysis Results") {
		t.Errorf("StyleTitle() = %q", got)
	}
	if cb.GetOutputMode() != core.OutputNormal {
		t.Errorf("GetOutputMode() = %v, want normal", cb.GetOutputMode())
	}
	if err := cb.EmitEvent(core.Event{Level: core.EventInfo, Message: "x"}); err != nil {
		t.Errorf("EmitEvent() error = %v", err)
	}
}
