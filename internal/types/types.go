// Package types defines data structures for deployfix analysis, remediation and configuration.
package types

import (
	"fmt"
	"strings"
)

// FrameworkKind identifies the web framework a project is built with.
type FrameworkKind int

// FrameworkKind constants. Unknown is the zero value.
const (
	FrameworkUnknown FrameworkKind = iota
	FrameworkNextJS
	FrameworkReact
	FrameworkVue
)

var frameworkNames = map[FrameworkKind]string{
	FrameworkUnknown: "unknown",
	FrameworkNextJS:  "nextjs",
	FrameworkReact:   "react",
	FrameworkVue:     "vue",
}

// String returns the lowercase framework identifier (e.g. "nextjs").
func (k FrameworkKind) String() string {
	if name, ok := frameworkNames[k]; ok {
		return name
	}
	return frameworkNames[FrameworkUnknown]
}

// ParseFrameworkKind maps an identifier back to a FrameworkKind.
// Unrecognized identifiers map to FrameworkUnknown.
func ParseFrameworkKind(s string) FrameworkKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range frameworkNames {
		if name == s {
			return kind
		}
	}
	return FrameworkUnknown
}

// MarshalText implements encoding.TextMarshaler so JSON and YAML carry the identifier.
func (k FrameworkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FrameworkKind) UnmarshalText(text []byte) error {
	*k = ParseFrameworkKind(string(text))
	return nil
}

// BuildConfigStatus describes next.config.js.
// When Exists is false the flags are all false and Issues holds a single absence entry.
type BuildConfigStatus struct {
	Exists               bool     `json:"exists"`
	HasStaticExport      bool     `json:"has_static_export"`
	HasTrailingSlash     bool     `json:"has_trailing_slash"`
	HasUnoptimizedImages bool     `json:"has_unoptimized_images"`
	Issues               []string `json:"issues"`
}

// DependencyStatus describes package.json and its required scripts.
type DependencyStatus struct {
	PackageManifestExists bool     `json:"package_manifest_exists"`
	Issues                []string `json:"issues"`
}

// DeploymentFilesStatus records which platform configurations are present.
// It reports state, not problems.
type DeploymentFilesStatus struct {
	Netlify    bool `json:"netlify_toml"`
	Vercel     bool `json:"vercel_json"`
	CIWorkflow bool `json:"github_workflow"`
}

// Analysis is the complete, read-only result of inspecting a project.
type Analysis struct {
	Root            string                `json:"root"`
	Framework       FrameworkKind         `json:"framework"`
	BuildConfig     BuildConfigStatus     `json:"build_config"`
	Routing         []string              `json:"routing_issues"`
	Dependencies    DependencyStatus      `json:"dependency_issues"`
	StaticExport    []string              `json:"static_export_issues"`
	DeploymentFiles DeploymentFilesStatus `json:"deployment_files"`
}

// TotalIssues counts every issue string across all categories.
func (a *Analysis) TotalIssues() int {
	return len(a.BuildConfig.Issues) + len(a.Routing) + len(a.Dependencies.Issues) + len(a.StaticExport)
}

// HasIssues reports whether any category recorded an issue.
func (a *Analysis) HasIssues() bool {
	return a.TotalIssues() > 0
}

// CategorySummary is a (name, issue count) pair used for report rendering.
type CategorySummary struct {
	Name   string
	Issues int
}

// Summaries returns the issue count of every category, in analysis order.
func (a *Analysis) Summaries() []CategorySummary {
	return []CategorySummary{
		{Name: "build_config", Issues: len(a.BuildConfig.Issues)},
		{Name: "routing_issues", Issues: len(a.Routing)},
		{Name: "dependency_issues", Issues: len(a.Dependencies.Issues)},
		{Name: "static_export_issues", Issues: len(a.StaticExport)},
	}
}

// FixCategory identifies one remediation policy. The numeric order is the report order.
type FixCategory int

// FixCategory constants in fixed evaluation order.
const (
	FixBuildConfig FixCategory = iota
	FixRouting
	FixNetlify
	FixVercel
	FixManifest
)

// AllFixCategories lists every category in evaluation order.
var AllFixCategories = []FixCategory{FixBuildConfig, FixRouting, FixNetlify, FixVercel, FixManifest}

var fixCategoryNames = [...]string{
	FixBuildConfig: "build-config",
	FixRouting:     "routing",
	FixNetlify:     "netlify",
	FixVercel:      "vercel",
	FixManifest:    "manifest",
}

// String returns the category name (e.g. "build-config").
func (c FixCategory) String() string {
	if c < 0 || int(c) >= len(fixCategoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return fixCategoryNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c FixCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *FixCategory) UnmarshalText(text []byte) error {
	for i, name := range fixCategoryNames {
		if name == string(text) {
			*c = FixCategory(i)
			return nil
		}
	}
	return fmt.Errorf("unknown fix category %q", text)
}

// FixFailure records a category whose write failed.
type FixFailure struct {
	Category FixCategory `json:"category"`
	Path     string      `json:"path"`
	Err      string      `json:"error"`
}

// PlannedFix is a fix that a dry run would apply.
type PlannedFix struct {
	Category    FixCategory `json:"category"`
	Description string      `json:"description"`
	Paths       []string    `json:"paths"`
}

// FixReport is the outcome of one remediation run.
// Success is true iff FixesApplied is non-empty.
type FixReport struct {
	FixesApplied []string     `json:"fixes_applied"`
	Success      bool         `json:"success"`
	Failures     []FixFailure `json:"failures,omitempty"`
	Planned      []PlannedFix `json:"planned,omitempty"`
	DryRun       bool         `json:"dry_run,omitempty"`
}

// VerificationResult is the outcome of an external build check.
type VerificationResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Duration string `json:"duration,omitempty"`
}

// RunResult bundles everything one CLI run produced.
type RunResult struct {
	RunID        string              `json:"run_id"`
	Analysis     *Analysis           `json:"analysis"`
	Fixes        *FixReport          `json:"fixes,omitempty"`
	Verification *VerificationResult `json:"verification,omitempty"`
}
