package core

// UICallback decouples the engine from how results reach the user.
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	StyleTitle(title string) string
	StartProgress(total int, label string) ProgressTracker

	GetOutputMode() OutputMode
	IsAutoApprove() bool
	EmitEvent(ev Event) error
}

// ProgressTracker reports progress of a multi-step operation.
type ProgressTracker interface {
	Increment(message string)
	SetTotal(total int)
	Complete()
	Fail(err error)
}

// SilentUICallback is a no-op implementation (for testing/CI).
// It approves every confirmation so engine runs are not blocked.
type SilentUICallback struct{}

func (s *SilentUICallback) ShowError(title, message string)        {}
func (s *SilentUICallback) ShowSuccess(message string)             {}
func (s *SilentUICallback) ShowWarning(title, message string)      {}
func (s *SilentUICallback) AskConfirmation(title, msg string) bool { return true }
func (s *SilentUICallback) StyleTitle(title string) string         { return title }
func (s *SilentUICallback) StartProgress(total int, label string) ProgressTracker {
	return noopProgress{}
}
func (s *SilentUICallback) GetOutputMode() OutputMode { return OutputQuiet }
func (s *SilentUICallback) IsAutoApprove() bool       { return true }
func (s *SilentUICallback) EmitEvent(ev Event) error  { return nil }

type noopProgress struct{}

func (noopProgress) Increment(string) {}
func (noopProgress) SetTotal(int)     {}
func (noopProgress) Complete()        {}
func (noopProgress) Fail(error)       {}
