package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// generatedHeader is written at the top of every emitted locale file. The
// text is kept identical to what earlier generator versions wrote so
// regenerated files do not churn.
const generatedHeader = `# This file was automatically generated by the Evolution Generator.
# The Evolution Generator is used to automate the creation of consistent, reliable code.
# Any changes made to this file will be overwritten.

`

const ymlExt = ".yml"

// yamlStyle carries the serialization settings for locale files. One value
// is constructed per run and passed explicitly to the registry and every
// store it creates.
type yamlStyle struct {
	indent    int // block indentation of emitted YAML
	foldWidth int // values longer than this many runes render folded
}

func defaultYAMLStyle() yamlStyle {
	return yamlStyle{indent: 4, foldWidth: 76}
}

// storeEntry is one path/value pair of a locale file. folded records the
// rendering decision made when the value was set or loaded; it never
// changes the value content.
type storeEntry struct {
	path   string
	value  string
	folded bool
}

// translationStore holds the translations of one (language, section) locale
// file in insertion order. Mutations set the modified flag; save without it
// is a no-op, so untouched files keep their timestamps.
type translationStore struct {
	path     string
	style    yamlStyle
	entries  []storeEntry
	byPath   map[string]int
	modified bool
}

func newTranslationStore(path string, style yamlStyle) *translationStore {
	return &translationStore{path: path, style: style, byPath: make(map[string]int)}
}

// needsFolding reports whether a value renders as a folded block scalar:
// multi-line values and values longer than the configured width do. Width
// counts runes, not bytes, so accented text folds at the same visual
// length as plain ASCII.
func (s *translationStore) needsFolding(value string) bool {
	return strings.Contains(value, "\n") || utf8.RuneCountInString(value) > s.style.foldWidth
}

// put records a value under path. An existing entry keeps its position.
func (s *translationStore) put(path, value string) {
	e := storeEntry{path: path, value: value, folded: s.needsFolding(value)}
	if i, ok := s.byPath[path]; ok {
		s.entries[i] = e
		return
	}
	s.byPath[path] = len(s.entries)
	s.entries = append(s.entries, e)
}

// value returns the current value stored under path.
func (s *translationStore) value(path string) (string, bool) {
	i, ok := s.byPath[path]
	if !ok {
		return "", false
	}
	return s.entries[i].value, true
}

// load reads the backing file into the store, preserving the file's key
// order. The file must hold a flat mapping of scalar values; anything else
// is a FileFormatError, which aborts the run.
func (s *translationStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &FileFormatError{Path: s.path, Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &FileFormatError{Path: s.path, Err: errors.New("empty document")}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &FileFormatError{Path: s.path, Err: errors.New("document is not a mapping")}
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]
		if valNode.Kind != yaml.ScalarNode {
			return &FileFormatError{Path: s.path, Err: fmt.Errorf("value of %q is not a scalar", keyNode.Value)}
		}
		s.put(keyNode.Value, valNode.Value)
	}
	return nil
}

// add merges one translation into the store. An existing value wins unless
// overwrite is set. The name placeholder is always rewritten; notation
// transformation is skipped when keepMarkdown is set.
func (s *translationStore) add(path, value string, overwrite, keepMarkdown bool) {
	if _, ok := s.byPath[path]; ok && !overwrite {
		return
	}
	value = rewritePlaceholders(value)
	if !keepMarkdown {
		value = replaceNotations(value)
	}
	s.put(path, value)
	s.modified = true
}

// save writes the store back to its file when modified, creating parent
// directories as needed.
func (s *translationStore) save() error {
	if !s.modified {
		return nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range s.entries {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.path}
		valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.value}
		if e.folded {
			valNode.Style = yaml.FoldedStyle
		}
		mapping.Content = append(mapping.Content, keyNode, valNode)
	}

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(s.style.indent)
	if err := enc.Encode(mapping); err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	log.Infof("Generated %s", filepath.ToSlash(s.path))
	return nil
}
