package doc

import "testing"

func TestNormalizeOptionalBrackets(t *testing.T) {
	out := NormalizeOptional("[foo=42]", "Something")
	if !out.Optional {
		t.Error("expected optional")
	}
	if out.Name != "foo" {
		t.Errorf("name: got %q, want foo", out.Name)
	}
	if out.Default != "42" {
		t.Errorf("default: got %q, want 42", out.Default)
	}
	if out.Doc != "Something" {
		t.Errorf("doc: got %q, want Something", out.Doc)
	}
	if out.Type != "Number" {
		t.Errorf("type: got %q, want Number", out.Type)
	}
}

func TestNormalizeOptionalBracketsWithoutDefault(t *testing.T) {
	out := NormalizeOptional("[foo]", "Something")
	if !out.Optional || out.Name != "foo" || out.Default != "" {
		t.Errorf("got %+v, want optional foo without default", out)
	}
}

func TestNormalizeOptionalRubbishDefault(t *testing.T) {
	out := NormalizeOptional("[foo=!haa]", "Something")
	if !out.Optional {
		t.Error("bracket marker still makes the parameter optional")
	}
	if out.Default != "" {
		t.Errorf("default: got %q, want none", out.Default)
	}
}

func TestNormalizeOptionalInvalidArrayDefault(t *testing.T) {
	out := NormalizeOptional("[foo=[ho, ho]]", "Something")
	if out.Default != "" {
		t.Errorf("default: got %q, want none", out.Default)
	}
}

func TestNormalizeOptionalTrailingText(t *testing.T) {
	out := NormalizeOptional("[foo=7 and me too]", "Something")
	if out.Default != "7" {
		t.Errorf("default: got %q, want 7", out.Default)
	}
}

func TestNormalizeOptionalWord(t *testing.T) {
	out := NormalizeOptional("foo", "(optional) Something")
	if !out.Optional {
		t.Error("expected optional")
	}
	if out.Default != "" {
		t.Errorf("default: got %q, want none", out.Default)
	}
	if out.Doc != "Something" {
		t.Errorf("doc: got %q, want marker stripped", out.Doc)
	}
}

func TestNormalizeOptionalWordCaseInsensitive(t *testing.T) {
	out := NormalizeOptional("foo", "(Optional) Something")
	if !out.Optional || out.Doc != "Something" {
		t.Errorf("got %+v, want optional with stripped marker", out)
	}
}

func TestNormalizeOptionalNotTriggered(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"foo", "optional Something"},
		{"foo", "An optional thing"},
		{"foo", "Something which may be (optional) later"},
		{"foo", "Something"},
	}

	for _, c := range cases {
		t.Run(c.doc, func(t *testing.T) {
			out := NormalizeOptional(c.name, c.doc)
			if out.Optional {
				t.Error("expected not optional")
			}
			if out.Doc != c.doc {
				t.Errorf("doc rewritten: got %q, want %q", out.Doc, c.doc)
			}
			if out.Name != c.name {
				t.Errorf("name rewritten: got %q", out.Name)
			}
		})
	}
}
