package core

import "strings"

// ConfigMarker names a setting the build config must carry.
type ConfigMarker int

// ConfigMarker constants.
const (
	MarkerStaticExport ConfigMarker = iota
	MarkerTrailingSlash
	MarkerUnoptimizedImages
)

// ConfigMatcher decides whether raw next.config.js text carries a marker.
// SubstringMatcher is the only backend today; a structured parser can replace it
// without changing BuildConfigStatus.
type ConfigMatcher interface {
	Has(content string, marker ConfigMarker) bool
}

// SubstringMatcher matches markers by exact substring, so a semantically equal
// but differently formatted setting (single quotes, extra spaces) is reported missing.
type SubstringMatcher struct {
	patterns map[ConfigMarker]string
}

// NewSubstringMatcher returns the matcher for the canonical marker spellings.
func NewSubstringMatcher() *SubstringMatcher {
	return &SubstringMatcher{
		patterns: map[ConfigMarker]string{
			MarkerStaticExport:      `output: "export"`,
			MarkerTrailingSlash:     `trailingSlash: true`,
			MarkerUnoptimizedImages: `unoptimized: true`,
		},
	}
}

// Has implements ConfigMatcher.
func (m *SubstringMatcher) Has(content string, marker ConfigMarker) bool {
	pattern, ok := m.patterns[marker]
	if !ok {
		return false
	}
	return strings.Contains(content, pattern)
}

// sourcePattern is one static-export incompatibility found by plain text search.
type sourcePattern struct {
	// all substrings must be present
	needles  []string
	issueFmt string
}

var staticExportPatterns = []sourcePattern{
	{needles: []string{"useRouter", "push("}, issueFmt: IssueClientRoutingFmt},
	{needles: []string{"getServerSideProps"}, issueFmt: IssueServerSidePropsFmt},
}

func (p sourcePattern) matches(content string) bool {
	for _, n := range p.needles {
		if !strings.Contains(content, n) {
			return false
		}
	}
	return true
}
