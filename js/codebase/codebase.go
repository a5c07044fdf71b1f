// Package codebase maintains an aggregated documentation model over a
// directory of JavaScript sources and keeps it current as files change.
package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/extdoc/js"
	"github.com/dhamidi/extdoc/js/doc"
)

// Codebase caches file contents and re-aggregates the class model
// whenever a file is added, changed or removed. Aggregation is
// order-sensitive, so files are always ingested in path order to keep
// merge results stable across edits.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	classes []*js.Class
}

// FileInfo is one cached source file.
type FileInfo struct {
	Path    string
	Content []byte
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll loads every .js file under the root directory.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".js" {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files[path] = &FileInfo{Path: path, Content: content}
	c.rebuildLocked()
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
	c.rebuildLocked()
}

// rebuildLocked re-parses every cached file into a fresh aggregation.
// Node records are mutated while aggregating, so each rebuild starts
// from pristine parses instead of reusing earlier node objects.
func (c *Codebase) rebuildLocked() {
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	agg := js.NewAggregator()
	for _, path := range paths {
		f := c.files[path]
		agg.Ingest(doc.NewSource(f.Path, f.Content))
	}
	agg.Finalize()
	c.classes = agg.Classes()
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// AllClasses returns the aggregated classes in first-sighting order.
func (c *Codebase) AllClasses() []*js.Class {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.classes
}

// FindClass looks a class up by its name or one of its alternate names.
func (c *Codebase) FindClass(name string) *js.Class {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cls := range c.classes {
		if cls.Name == name {
			return cls
		}
		for _, alt := range cls.AlternateClassNames {
			if alt == name {
				return cls
			}
		}
	}
	return nil
}

// CompletionsFor returns completion items for the members of the named
// class, as offered after typing "ClassName.".
func (c *Codebase) CompletionsFor(className string) []CompletionItem {
	cls := c.FindClass(className)
	if cls == nil {
		return nil
	}

	var items []CompletionItem
	for _, tag := range js.MemberTags {
		for _, m := range cls.Members[tag] {
			items = append(items, completionItem(m))
		}
		for _, m := range cls.Statics[tag] {
			items = append(items, completionItem(m))
		}
	}
	return items
}

type CompletionKind int

const (
	CompletionKindMethod CompletionKind = iota
	CompletionKindField
	CompletionKindEvent
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

func completionItem(m *js.Member) CompletionItem {
	switch m.Tag {
	case js.TagMethod:
		return CompletionItem{
			Label:      m.Name,
			Kind:       CompletionKindMethod,
			Detail:     methodSignature(m),
			InsertText: methodInsert(m),
		}
	case js.TagEvent:
		return CompletionItem{
			Label:      m.Name,
			Kind:       CompletionKindEvent,
			Detail:     methodSignature(m),
			InsertText: m.Name,
		}
	default:
		return CompletionItem{
			Label:      m.Name,
			Kind:       CompletionKindField,
			Detail:     m.Type,
			InsertText: m.Name,
		}
	}
}

func methodSignature(m *js.Member) string {
	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, p.Type+" "+p.Name)
	}
	return m.Name + "(" + strings.Join(params, ", ") + ")"
}

func methodInsert(m *js.Member) string {
	if len(m.Params) == 0 {
		return m.Name + "()"
	}
	placeholders := make([]string, 0, len(m.Params))
	for i, p := range m.Params {
		name := p.Name
		if name == "" {
			name = p.Type
		}
		placeholders = append(placeholders, "${"+itoa(i+1)+":"+name+"}")
	}
	return m.Name + "(" + strings.Join(placeholders, ", ") + ")"
}

func itoa(i int) string {
	return string(rune('0' + i))
}
