package codebase

import (
	"testing"

	"github.com/dhamidi/extdoc/js"
)

const panelSource = `/**
 * A panel.
 * @class Ext.Panel
 * @extends Ext.Container
 * @alternateClassName Ext.PanelView
 */
/**
 * Shows the panel.
 * @method show
 * @param {Boolean} animate Whether to animate.
 */
`

func TestUpdateFileAggregates(t *testing.T) {
	c := New(".")
	c.UpdateFile("panel.js", []byte(panelSource))

	cls := c.FindClass("Ext.Panel")
	if cls == nil {
		t.Fatal("class not aggregated")
	}
	if !cls.HasMethod("show") {
		t.Error("member not attached")
	}
}

func TestFindClassByAlternateName(t *testing.T) {
	c := New(".")
	c.UpdateFile("panel.js", []byte(panelSource))

	if c.FindClass("Ext.PanelView") == nil {
		t.Error("alternate class name not resolved")
	}
}

func TestRemoveFileRebuilds(t *testing.T) {
	c := New(".")
	c.UpdateFile("panel.js", []byte(panelSource))
	c.RemoveFile("panel.js")

	if c.FindClass("Ext.Panel") != nil {
		t.Error("removed file still contributes classes")
	}
}

func TestUpdateFileDoesNotAccumulate(t *testing.T) {
	c := New(".")
	c.UpdateFile("panel.js", []byte(panelSource))
	c.UpdateFile("panel.js", []byte(panelSource))

	cls := c.FindClass("Ext.Panel")
	if got := len(cls.Members[js.TagMethod]); got != 1 {
		t.Errorf("expected 1 method after re-update, got %d", got)
	}
}

func TestCompletionsFor(t *testing.T) {
	c := New(".")
	c.UpdateFile("panel.js", []byte(panelSource))

	items := c.CompletionsFor("Ext.Panel")
	if len(items) != 1 {
		t.Fatalf("expected 1 completion, got %d", len(items))
	}
	item := items[0]
	if item.Label != "show" || item.Kind != CompletionKindMethod {
		t.Errorf("item: %+v", item)
	}
	if item.InsertText != "show(${1:animate})" {
		t.Errorf("insert text: got %q", item.InsertText)
	}
	if item.Detail != "show(Boolean animate)" {
		t.Errorf("detail: got %q", item.Detail)
	}
}

func TestClassBeforeDot(t *testing.T) {
	content := []byte("var p = Ext.Panel.\n")
	if got := classBeforeDot(content, 0, 18); got != "Ext.Panel" {
		t.Errorf("got %q, want Ext.Panel", got)
	}
	if got := classBeforeDot(content, 0, 5); got != "" {
		t.Errorf("no dot before cursor, got %q", got)
	}
}

func TestIdentAt(t *testing.T) {
	content := []byte("new Ext.Panel({});\n")
	if got := identAt(content, 0, 8); got != "Ext.Panel" {
		t.Errorf("got %q, want Ext.Panel", got)
	}
}
