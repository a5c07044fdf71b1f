package js

import "strings"

// SynthesizeAccessors appends getter and setter method nodes for every
// cfg of the given classes. It is a post-finalize convenience pass over
// the closed registry; classes that already document a method with the
// generated name keep their hand-written version.
func SynthesizeAccessors(classes []*Class) {
	for _, cls := range classes {
		for _, cfg := range cls.Members[TagCfg] {
			if cfg.Name == "" {
				continue
			}
			suffix := upperFirst(cfg.Name)
			if getter := "get" + suffix; !cls.HasMethod(getter) {
				cls.Add(accessorGetter(getter, cfg))
			}
			if setter := "set" + suffix; !cls.HasMethod(setter) {
				cls.Add(accessorSetter(setter, cfg))
			}
		}
	}
}

func accessorGetter(name string, cfg *Member) *Member {
	m := NewMember(TagMethod, name)
	m.Doc = "Returns the value of " + cfg.Name + "."
	m.Type = cfg.Type
	return m
}

func accessorSetter(name string, cfg *Member) *Member {
	m := NewMember(TagMethod, name)
	m.Doc = "Sets the value of " + cfg.Name + "."
	param := NewMember(TagParam, cfg.Name)
	param.Type = cfg.Type
	param.Doc = "The new value."
	m.Params = append(m.Params, param)
	return m
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
