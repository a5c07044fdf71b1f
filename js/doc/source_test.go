package doc

import (
	"testing"

	"github.com/dhamidi/extdoc/js"
)

func drain(t *testing.T, src js.NodeSource) []js.Node {
	t.Helper()
	var nodes []js.Node
	for {
		n, ok := src.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, n)
	}
}

func TestSourceYieldsFileOrder(t *testing.T) {
	content := []byte("/**\n" +
		" * A panel.\n" +
		" * @class Ext.Panel\n" +
		" * @extends Ext.Container\n" +
		" */\n" +
		"Ext.Panel = Ext.extend(Ext.Container, {\n" +
		"    /**\n" +
		"     * @cfg {String} title The title.\n" +
		"     */\n" +
		"    title: 'untitled',\n" +
		"});\n")

	nodes := drain(t, NewSource("panel.js", content))
	if len(nodes) != 2 {
		t.Fatalf("expected class and cfg, got %d nodes", len(nodes))
	}

	cls, ok := nodes[0].(*js.Class)
	if !ok {
		t.Fatal("first node must be the class")
	}
	if cls.Name != "Ext.Panel" || cls.Doc != "A panel." {
		t.Errorf("class: %+v", cls)
	}
	if cls.Filename != "panel.js" || cls.Line != 1 {
		t.Errorf("location: %q:%d", cls.Filename, cls.Line)
	}
	if !cls.LegacyInit {
		t.Error("Ext.extend code must mark the class as legacy style")
	}

	cfg, ok := nodes[1].(*js.Member)
	if !ok || cfg.Tag != js.TagCfg || cfg.Name != "title" {
		t.Fatalf("second node: %+v", nodes[1])
	}
	if cfg.Default != "'untitled'" {
		t.Errorf("default: got %q", cfg.Default)
	}
}

func TestSourceLineNumbers(t *testing.T) {
	content := []byte("// header\n\n\n/** @class Foo */\n")
	nodes := drain(t, NewSource("foo.js", content))
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	if cls := nodes[0].(*js.Class); cls.Line != 4 {
		t.Errorf("line: got %d, want 4", cls.Line)
	}
}

func TestSourceModernClassIsNotLegacy(t *testing.T) {
	content := []byte("/** @class Foo */\nExt.define('Foo', {});\n")
	nodes := drain(t, NewSource("foo.js", content))
	if cls := nodes[0].(*js.Class); cls.LegacyInit {
		t.Error("Ext.define code must not mark the class as legacy")
	}
}
