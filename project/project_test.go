package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "extdoc.json"),
		`{"title": "My Framework", "sources": ["lib", "ext"], "output": "build/docs"}`)

	p, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "My Framework" {
		t.Errorf("title: got %q", p.Title)
	}
	if len(p.Sources) != 2 || p.Sources[0] != "lib" {
		t.Errorf("sources: got %v", p.Sources)
	}
	if p.OutputPath() != filepath.Join(dir, "build/docs") {
		t.Errorf("output: got %q", p.OutputPath())
	}
}

func TestLoadFromDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.js"), "")

	p, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != filepath.Base(dir) {
		t.Errorf("title: got %q", p.Title)
	}
	if len(p.Sources) != 1 || p.Sources[0] != "src" {
		t.Errorf("sources: got %v", p.Sources)
	}
	if p.Output != "docs" {
		t.Errorf("output: got %q", p.Output)
	}
}

func TestLoadFromWithoutSrcUsesRoot(t *testing.T) {
	dir := t.TempDir()
	p, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Sources) != 1 || p.Sources[0] != "." {
		t.Errorf("sources: got %v", p.Sources)
	}
}

func TestLoadFromRejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "extdoc.json"), "{not json")

	if _, err := LoadFrom(dir); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "b.js"), "")
	writeFile(t, filepath.Join(dir, "src", "a.js"), "")
	writeFile(t, filepath.Join(dir, "src", "sub", "c.js"), "")
	writeFile(t, filepath.Join(dir, "src", "readme.txt"), "")

	p, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	files, err := p.Files()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.js" || filepath.Base(files[1]) != "b.js" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestFilesSingleFileSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ext.js"), "")
	writeFile(t, filepath.Join(dir, "extdoc.json"), `{"sources": ["ext.js"]}`)

	p, err := LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	files, err := p.Files()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "ext.js" {
		t.Errorf("files: %v", files)
	}
}
