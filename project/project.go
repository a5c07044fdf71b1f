// Package project locates and describes a documentation project: the
// extdoc.json configuration plus the JavaScript sources it points at.
package project

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigFile is the project configuration file name.
const ConfigFile = "extdoc.json"

// Project is one documentation project.
type Project struct {
	// Title is shown in generated output. Defaults to the root
	// directory's base name.
	Title string `json:"title"`

	// Sources lists the directories (or single files) to document,
	// relative to the root directory. Defaults to ["src"].
	Sources []string `json:"sources"`

	// Output is the directory generated documentation is written to.
	Output string `json:"output"`

	RootDir string `json:"-"`
}

// Load reads the project in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads extdoc.json under rootDir. A missing configuration
// file is not an error: the project falls back to documenting the src
// directory, or the root itself when there is no src.
func LoadFrom(rootDir string) (*Project, error) {
	p := &Project{RootDir: rootDir}

	content, err := os.ReadFile(filepath.Join(rootDir, ConfigFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(content, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	if p.Title == "" {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			abs = rootDir
		}
		p.Title = filepath.Base(abs)
	}
	if len(p.Sources) == 0 {
		p.Sources = []string{defaultSource(rootDir)}
	}
	if p.Output == "" {
		p.Output = "docs"
	}
	return p, nil
}

func defaultSource(rootDir string) string {
	if info, err := os.Stat(filepath.Join(rootDir, "src")); err == nil && info.IsDir() {
		return "src"
	}
	return "."
}

// SourcePaths returns the configured source entries resolved against
// the root directory.
func (p *Project) SourcePaths() []string {
	paths := make([]string, 0, len(p.Sources))
	for _, src := range p.Sources {
		if filepath.IsAbs(src) {
			paths = append(paths, src)
			continue
		}
		paths = append(paths, filepath.Join(p.RootDir, src))
	}
	return paths
}

// OutputPath returns the output directory resolved against the root
// directory.
func (p *Project) OutputPath() string {
	if filepath.IsAbs(p.Output) {
		return p.Output
	}
	return filepath.Join(p.RootDir, p.Output)
}

// Files returns every .js file of the project in sorted order, so that
// aggregation sees the sources in a stable sequence. Source entries
// naming a single file are included as-is.
func (p *Project) Files() ([]string, error) {
	var files []string
	for _, src := range p.SourcePaths() {
		info, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src, err)
		}
		if !info.IsDir() {
			files = append(files, src)
			continue
		}
		err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasSuffix(path, ".js") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", src, err)
		}
	}
	sort.Strings(files)
	return files, nil
}
