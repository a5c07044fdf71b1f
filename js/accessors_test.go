package js

import "testing"

func TestSynthesizeAccessors(t *testing.T) {
	cls := NewClass("Ext.Panel")
	cfg := NewMember(TagCfg, "title")
	cfg.Type = "String"
	cls.Add(cfg)

	SynthesizeAccessors([]*Class{cls})

	getter := cls.Member("getTitle")
	if getter == nil || getter.Tag != TagMethod {
		t.Fatal("getter not synthesized")
	}
	if getter.Type != "String" {
		t.Errorf("getter type: got %q", getter.Type)
	}

	setter := cls.Member("setTitle")
	if setter == nil || setter.Tag != TagMethod {
		t.Fatal("setter not synthesized")
	}
	if len(setter.Params) != 1 {
		t.Fatalf("setter params: got %d", len(setter.Params))
	}
	if p := setter.Params[0]; p.Name != "title" || p.Type != "String" {
		t.Errorf("setter param: got %+v", p)
	}
}

func TestSynthesizeAccessorsKeepsHandWritten(t *testing.T) {
	cls := NewClass("Ext.Panel")
	cls.Add(NewMember(TagCfg, "title"))
	manual := NewMember(TagMethod, "setTitle")
	manual.Doc = "Hand-written setter."
	cls.Add(manual)

	SynthesizeAccessors([]*Class{cls})

	count := 0
	for _, m := range cls.Members[TagMethod] {
		if m.Name == "setTitle" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one setTitle, got %d", count)
	}
	if cls.Member("setTitle").Doc != "Hand-written setter." {
		t.Error("hand-written method must win over the synthesized one")
	}
	if cls.Member("getTitle") == nil {
		t.Error("getter still synthesized for the same cfg")
	}
}
