package js

// Registry owns every class record for the lifetime of one aggregation
// session. Classes are kept in first-sighting order; looking up and
// registering happens by name.
type Registry struct {
	classes []*Class
	byName  map[string]*Class
}

// NewRegistry returns an empty class registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Class),
	}
}

// AddClass registers a class declaration. When the name is unseen the
// record is stored as-is and created is true. When a class with the
// same name already exists, the new declaration is merged into the
// existing record and created is false. Either way the resident record
// is returned.
func (r *Registry) AddClass(cls *Class) (resident *Class, created bool) {
	if old, ok := r.byName[cls.Name]; ok {
		merge(old, cls)
		return old, false
	}
	r.classes = append(r.classes, cls)
	r.byName[cls.Name] = cls
	return cls, true
}

// Placeholder synthesizes a minimal class record for an owner that was
// never explicitly declared and registers it.
func (r *Registry) Placeholder(name, doc string) (*Class, bool) {
	cls := NewClass(name)
	cls.Doc = doc
	return r.AddClass(cls)
}

// Get returns the class registered under name, or nil.
func (r *Registry) Get(name string) *Class {
	return r.byName[name]
}

// Classes returns the registered classes in first-sighting order. The
// returned slice is the registry's own; callers must not reorder it.
func (r *Registry) Classes() []*Class {
	return r.classes
}

// merge folds a re-declaration into the original record. Scalars keep
// the old value when already set, lists concatenate old-then-new, and
// xtype lists union per key.
//
// Only cfg and method member lists are carried over; property, event
// and static members of the new declaration are left behind. This
// asymmetry exists to support a standalone constructor or config doc
// block that is later matched up with the full class declaration, and
// is kept as-is: generalizing it would change output for existing
// documentation sets.
func merge(old, cls *Class) {
	if old.Extends == "" {
		old.Extends = cls.Extends
	}
	old.Singleton = old.Singleton || cls.Singleton
	old.Private = old.Private || cls.Private
	old.Protected = old.Protected || cls.Protected
	old.LegacyInit = old.LegacyInit || cls.LegacyInit

	old.Mixins = append(old.Mixins, cls.Mixins...)
	old.AlternateClassNames = append(old.AlternateClassNames, cls.AlternateClassNames...)
	for key, xtypes := range cls.Xtypes {
		old.Xtypes[key] = append(old.Xtypes[key], xtypes...)
	}

	if old.Doc == "" {
		old.Doc = cls.Doc
	}
	if old.Filename == "" {
		old.Filename = cls.Filename
		old.Line = cls.Line
	}

	for _, tag := range []Tag{TagCfg, TagMethod} {
		for _, m := range cls.Members[tag] {
			old.Add(m)
		}
	}
}
