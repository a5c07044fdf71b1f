package js

import "testing"

func member(tag Tag, name, owner string) *Member {
	m := NewMember(tag, name)
	m.Owner = owner
	return m
}

func ingest(t *testing.T, a *Aggregator, nodes ...Node) {
	t.Helper()
	if err := a.Ingest(NewSliceSource(nodes...)); err != nil {
		t.Fatalf("ingest: %v", err)
	}
}

func TestIngestCurrentClassAdoptsMembers(t *testing.T) {
	a := NewAggregator()
	ingest(t, a,
		NewClass("Ext.Panel"),
		NewMember(TagCfg, "title"),
		NewMember(TagMethod, "show"),
	)

	cls := a.Registry().Get("Ext.Panel")
	if cls == nil {
		t.Fatal("class not registered")
	}
	if len(cls.Members[TagCfg]) != 1 || len(cls.Members[TagMethod]) != 1 {
		t.Errorf("members not adopted: %+v", cls.Members)
	}
	if cls.Members[TagCfg][0].Owner != "Ext.Panel" {
		t.Error("adopted member must be owned by the current class")
	}
	if len(a.Orphans()) != 0 {
		t.Errorf("no orphans expected, got %d", len(a.Orphans()))
	}
}

func TestCurrentClassDoesNotLeakAcrossUnits(t *testing.T) {
	a := NewAggregator()
	ingest(t, a, NewClass("Ext.Panel"))
	ingest(t, a, NewMember(TagMethod, "stray"))

	cls := a.Registry().Get("Ext.Panel")
	if len(cls.Members[TagMethod]) != 0 {
		t.Error("member of a later unit must not attach to the previous unit's class")
	}
	if len(a.Orphans()) != 1 {
		t.Fatalf("expected the member pooled, got %d orphans", len(a.Orphans()))
	}
}

func TestExplicitOwnerBeatsCurrentClass(t *testing.T) {
	a := NewAggregator()
	ingest(t, a,
		NewClass("Ext.Button"),
		NewClass("Ext.Panel"),
		member(TagMethod, "press", "Ext.Button"),
	)

	if !a.Registry().Get("Ext.Button").HasMethod("press") {
		t.Error("member must attach to its explicit owner")
	}
	if a.Registry().Get("Ext.Panel").HasMethod("press") {
		t.Error("current class must not claim an explicitly owned member")
	}
}

func TestForwardReferenceResolvesOnDeclaration(t *testing.T) {
	a := NewAggregator()
	ingest(t, a, member(TagMethod, "show", "Ext.Panel"))
	if len(a.Orphans()) != 1 {
		t.Fatalf("member must wait in the pool, got %d orphans", len(a.Orphans()))
	}

	ingest(t, a, NewClass("Ext.Panel"))
	if len(a.Orphans()) != 0 {
		t.Error("declaring the owner must drain the pool")
	}
	if !a.Registry().Get("Ext.Panel").HasMethod("show") {
		t.Error("pooled member not attached to its owner")
	}
}

func TestFinalizeCreatesPlaceholderOwners(t *testing.T) {
	a := NewAggregator()
	ingest(t, a,
		member(TagMethod, "show", "Ext.Missing"),
		member(TagCfg, "width", "Ext.Missing"),
	)

	a.Finalize()

	cls := a.Registry().Get("Ext.Missing")
	if cls == nil {
		t.Fatal("placeholder class not created")
	}
	if cls.Doc != "" {
		t.Errorf("placeholder doc: got %q, want empty", cls.Doc)
	}
	if !cls.HasMethod("show") || len(cls.Members[TagCfg]) != 1 {
		t.Errorf("pooled members not attached: %+v", cls.Members)
	}
	if len(a.Orphans()) != 0 {
		t.Errorf("pool must be empty, got %d", len(a.Orphans()))
	}
}

func TestFinalizeGlobalBucket(t *testing.T) {
	a := NewAggregator()
	ingest(t, a, NewMember(TagMethod, "namespace"))

	a.Finalize()

	cls := a.Registry().Get(GlobalClassName)
	if cls == nil {
		t.Fatal("global bucket not created")
	}
	if cls.Doc != GlobalClassDoc {
		t.Errorf("global doc: got %q", cls.Doc)
	}
	if !cls.HasMethod("namespace") {
		t.Error("ownerless member not attached to the global bucket")
	}
}

func TestFinalizeSkipsGlobalBucketWhenEmpty(t *testing.T) {
	a := NewAggregator()
	ingest(t, a, NewClass("Ext.Panel"))

	a.Finalize()

	if a.Registry().Get(GlobalClassName) != nil {
		t.Error("global bucket must only exist when members need it")
	}
}

func TestFinalizeIsIdempotent(t *testing.T) {
	a := NewAggregator()
	ingest(t, a, NewMember(TagMethod, "f"))

	a.Finalize()
	before := len(a.Registry().Get(GlobalClassName).Members[TagMethod])
	a.Finalize()
	after := len(a.Registry().Get(GlobalClassName).Members[TagMethod])

	if before != after {
		t.Errorf("second finalize changed state: %d -> %d", before, after)
	}
}

func TestIngestRejectsUntaggedMember(t *testing.T) {
	a := NewAggregator()
	if err := a.Ingest(NewSliceSource(&Member{Name: "broken"})); err == nil {
		t.Fatal("expected an error for a member without a kind")
	}
}

func TestMergeAcrossUnits(t *testing.T) {
	a := NewAggregator()

	first := NewClass("Ext.Panel")
	first.Doc = "The panel."
	ingest(t, a, first, NewMember(TagCfg, "title"))

	second := NewClass("Ext.Panel")
	ingest(t, a, second, NewMember(TagMethod, "show"))

	classes := a.Classes()
	if len(classes) != 1 {
		t.Fatalf("expected one merged class, got %d", len(classes))
	}
	cls := classes[0]
	if cls != first {
		t.Error("first-seen record must stay resident")
	}
	if len(cls.Members[TagCfg]) != 1 || !cls.HasMethod("show") {
		t.Errorf("members: %+v", cls.Members)
	}
}

func TestUnitOrderDoesNotAffectResolution(t *testing.T) {
	build := func(units ...[]Node) *Aggregator {
		a := NewAggregator()
		for _, unit := range units {
			ingest(t, a, unit...)
		}
		a.Finalize()
		return a
	}

	declFirst := build(
		[]Node{NewClass("Ext.Bar")},
		[]Node{member(TagMethod, "poke", "Ext.Bar")},
	)
	declLast := build(
		[]Node{member(TagMethod, "poke", "Ext.Bar")},
		[]Node{NewClass("Ext.Bar")},
	)

	for _, a := range []*Aggregator{declFirst, declLast} {
		cls := a.Registry().Get("Ext.Bar")
		if cls == nil || !cls.HasMethod("poke") {
			t.Fatal("member must end up on Ext.Bar regardless of unit order")
		}
		if len(a.Orphans()) != 0 {
			t.Error("pool must be empty after finalize")
		}
	}
}

func TestResultOrder(t *testing.T) {
	a := NewAggregator()
	ingest(t, a, NewClass("A"), NewClass("B"))
	ingest(t, a, member(TagMethod, "m", "C"))

	result := a.Result()
	if len(result) != 3 {
		t.Fatalf("expected 2 classes and 1 orphan, got %d nodes", len(result))
	}
	if _, ok := result[2].(*Member); !ok {
		t.Error("orphans must trail the class list")
	}

	a.Finalize()
	result = a.Result()
	if len(result) != 3 {
		t.Fatalf("after finalize: got %d nodes", len(result))
	}
	if _, ok := result[2].(*Class); !ok {
		t.Error("finalize turns the orphan's owner into a class")
	}
}
