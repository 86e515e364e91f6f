package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// CanonicalScripts are merged into package.json, in this order.
var CanonicalScripts = []ScriptEntry{
	{Name: "build", Command: "next build"},
	{Name: "start", Command: "next start"},
	{Name: "export", Command: "next build && next export"},
	{Name: "deploy:netlify", Command: "npm run build && netlify deploy --prod --dir=out"},
	{Name: "deploy:vercel", Command: "npm run build && vercel --prod"},
}

// ScriptEntry is one package.json script.
type ScriptEntry struct {
	Name    string
	Command string
}

// packageManifest is the lenient view of package.json the inspector needs.
// Fields that fail to decode are left empty instead of failing the whole manifest.
type packageManifest struct {
	Dependencies    map[string]json.RawMessage
	DevDependencies map[string]json.RawMessage
	Scripts         map[string]json.RawMessage
}

// parsePackageManifest decodes package.json. Only a non-object top level is an error.
func parsePackageManifest(data []byte) (*packageManifest, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	if top == nil {
		return nil, errors.New("top-level value is not an object")
	}

	m := &packageManifest{}
	decodeObject(top["dependencies"], &m.Dependencies)
	decodeObject(top["devDependencies"], &m.DevDependencies)
	decodeObject(top["scripts"], &m.Scripts)
	return m, nil
}

func decodeObject(raw json.RawMessage, dst *map[string]json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		*dst = nil
	}
}

// hasDependency checks the runtime and development namespaces together.
func (m *packageManifest) hasDependency(name string) bool {
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// orderedObject is a JSON object that remembers key order, so a rewritten
// package.json keeps the layout its authors chose.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]json.RawMessage)}
}

// parseOrderedObject decodes a single JSON object, rejecting trailing data.
func parseOrderedObject(data []byte) (*orderedObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("top-level value is not an object")
	}

	obj := newOrderedObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		obj.Set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level object")
	}
	return obj, nil
}

// Get returns the raw value for key.
func (o *orderedObject) Get(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set replaces key in place, or appends it when new.
func (o *orderedObject) Set(key string, value json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Marshal renders the object with two-space indentation and a trailing newline.
func (o *orderedObject) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.writeTo(&buf, ""); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (o *orderedObject) writeTo(buf *bytes.Buffer, indent string) error {
	if len(o.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}
	inner := indent + "  "
	buf.WriteString("{\n")
	for i, key := range o.keys {
		k, err := marshalNoEscape(key)
		if err != nil {
			return err
		}
		buf.WriteString(inner)
		buf.Write(k)
		buf.WriteString(": ")
		if err := json.Indent(buf, o.values[key], inner, "  "); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}
		if i < len(o.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteByte('}')
	return nil
}

// marshalNoEscape encodes v without HTML escaping, so "&&" in scripts stays readable.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// mergeScripts returns manifest data with CanonicalScripts merged into its
// scripts object. Unrelated scripts and top-level fields keep their order and values.
// A nil or empty manifest yields a new manifest holding only the scripts.
func mergeScripts(manifest []byte) ([]byte, error) {
	root := newOrderedObject()
	if len(bytes.TrimSpace(manifest)) > 0 {
		parsed, err := parseOrderedObject(manifest)
		if err != nil {
			return nil, err
		}
		root = parsed
	}

	scripts := newOrderedObject()
	if raw, ok := root.Get("scripts"); ok {
		if parsed, err := parseOrderedObject(raw); err == nil {
			scripts = parsed
		}
	}

	for _, s := range CanonicalScripts {
		cmd, err := marshalNoEscape(s.Command)
		if err != nil {
			return nil, err
		}
		scripts.Set(s.Name, cmd)
	}

	var scriptsBuf bytes.Buffer
	if err := scripts.writeTo(&scriptsBuf, ""); err != nil {
		return nil, err
	}
	root.Set("scripts", scriptsBuf.Bytes())

	return root.Marshal()
}
