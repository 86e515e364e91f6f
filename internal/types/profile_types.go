package types

import "strings"

// Profile is the optional per-project configuration read from .deployfix.yml.
// Zero values mean "use the default".
type Profile struct {
	Workers int          `yaml:"workers,omitempty"`
	Verify  VerifyConfig `yaml:"verify,omitempty"`
}

// VerifyConfig controls the post-remediation build check.
type VerifyConfig struct {
	// Enabled is a pointer so an absent key keeps verification on.
	Enabled *bool `yaml:"enabled,omitempty"`
	// Command is split on whitespace; the first field is the executable.
	// Quotes are not interpreted. Use Args when an argument contains spaces.
	Command string `yaml:"command,omitempty"`
	// Args is the executable and its arguments, passed through unchanged.
	// It takes precedence over Command.
	Args []string `yaml:"args,omitempty"`
	// Timeout is a Go duration string such as "300s" or "5m".
	Timeout string `yaml:"timeout,omitempty"`
}

// VerifyEnabled reports whether verification should run.
func (p Profile) VerifyEnabled() bool {
	return p.Verify.Enabled == nil || *p.Verify.Enabled
}

// CommandLine returns the verification argv, or nil when none is configured.
func (v VerifyConfig) CommandLine() []string {
	if len(v.Args) > 0 {
		return v.Args
	}
	return strings.Fields(v.Command)
}
