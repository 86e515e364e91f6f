package core

// OutputMode controls how output is displayed
type OutputMode int

// OutputMode constants define available output formatting modes.
const (
	OutputNormal OutputMode = iota // styled or plain text
	OutputQuiet                    // errors only
	OutputJSON                     // one CLIResponse document on stdout
)

// String returns the flag that selects the mode.
func (m OutputMode) String() string {
	switch m {
	case OutputQuiet:
		return "quiet"
	case OutputJSON:
		return "json"
	default:
		return "normal"
	}
}

// NonInteractiveFlags carries --yes, --quiet and --json.
type NonInteractiveFlags struct {
	Yes  bool
	Mode OutputMode
}

// Event levels.
const (
	EventError   = "error"
	EventWarning = "warning"
	EventInfo    = "info"
)

// Event is a diagnostic emitted while a run is in progress. In JSON mode
// events are written to stderr one per line, so stdout carries nothing but
// the final CLIResponse.
type Event struct {
	Level   string `json:"level"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}
