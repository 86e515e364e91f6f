package core

import (
	"path/filepath"

	"github.com/EmundoT/deployfix/internal/types"
)

// frameworkRule maps a predicate over the project to a framework.
// Rules are evaluated in order; the first match wins.
type frameworkRule struct {
	name  string
	kind  types.FrameworkKind
	match func(p *projectView) bool
}

// projectView gives rules lazy, cached access to the files they inspect.
type projectView struct {
	root     string
	fs       FileSystem
	manifest *packageManifest
	loaded   bool
}

func (p *projectView) has(rel string) bool {
	return exists(p.fs, filepath.Join(p.root, rel))
}

// packageManifest returns nil when package.json is missing or unparsable.
func (p *projectView) packageManifest() *packageManifest {
	if p.loaded {
		return p.manifest
	}
	p.loaded = true
	data, err := p.fs.ReadFile(filepath.Join(p.root, ManifestFile))
	if err != nil {
		return nil
	}
	m, err := parsePackageManifest(data)
	if err != nil {
		return nil
	}
	p.manifest = m
	return m
}

func dependsOn(name string) func(p *projectView) bool {
	return func(p *projectView) bool {
		m := p.packageManifest()
		return m != nil && m.hasDependency(name)
	}
}

var frameworkRules = []frameworkRule{
	{name: "next-config-marker", kind: types.FrameworkNextJS, match: func(p *projectView) bool { return p.has(NextConfigFile) }},
	{name: "next-dependency", kind: types.FrameworkNextJS, match: dependsOn(DepNext)},
	{name: "react-dependency", kind: types.FrameworkReact, match: dependsOn(DepReact)},
	{name: "vue-dependency", kind: types.FrameworkVue, match: dependsOn(DepVue)},
}

// DetectFramework classifies the project by the first matching rule.
// Missing or malformed manifests yield FrameworkUnknown.
func DetectFramework(fsys FileSystem, root string) types.FrameworkKind {
	kind, _ := detectFramework(fsys, root)
	return kind
}

func detectFramework(fsys FileSystem, root string) (types.FrameworkKind, string) {
	view := &projectView{root: root, fs: fsys}
	for _, rule := range frameworkRules {
		if rule.match(view) {
			return rule.kind, rule.name
		}
	}
	return types.FrameworkUnknown, ""
}
