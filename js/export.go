package js

// Export shapes mirror the in-memory model with stable field names for
// JSON and YAML output. Empty lists and flags are omitted so exported
// documents stay readable.

// ClassExport is the serializable form of a class record.
type ClassExport struct {
	Tag                 string            `json:"tag" yaml:"tag"`
	Name                string            `json:"name" yaml:"name"`
	Doc                 string            `json:"doc,omitempty" yaml:"doc,omitempty"`
	Extends             string            `json:"extends,omitempty" yaml:"extends,omitempty"`
	Mixins              []string          `json:"mixins,omitempty" yaml:"mixins,omitempty"`
	AlternateClassNames []string          `json:"alternateClassNames,omitempty" yaml:"alternateClassNames,omitempty"`
	Singleton           bool              `json:"singleton,omitempty" yaml:"singleton,omitempty"`
	Private             bool              `json:"private,omitempty" yaml:"private,omitempty"`
	Protected           bool              `json:"protected,omitempty" yaml:"protected,omitempty"`
	Xtypes              map[string][]string `json:"xtypes,omitempty" yaml:"xtypes,omitempty"`
	Cfgs                []MemberExport    `json:"cfg,omitempty" yaml:"cfg,omitempty"`
	Properties          []MemberExport    `json:"property,omitempty" yaml:"property,omitempty"`
	Methods             []MemberExport    `json:"method,omitempty" yaml:"method,omitempty"`
	Events              []MemberExport    `json:"event,omitempty" yaml:"event,omitempty"`
	Statics             map[string][]MemberExport `json:"statics,omitempty" yaml:"statics,omitempty"`
	Filename            string            `json:"filename,omitempty" yaml:"filename,omitempty"`
	Line                int               `json:"line,omitempty" yaml:"line,omitempty"`
}

// MemberExport is the serializable form of a member node.
type MemberExport struct {
	Tag      string         `json:"tag" yaml:"tag"`
	Name     string         `json:"name" yaml:"name"`
	Owner    string         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Static   bool           `json:"static,omitempty" yaml:"static,omitempty"`
	Doc      string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	Type     string         `json:"type,omitempty" yaml:"type,omitempty"`
	Optional bool           `json:"optional,omitempty" yaml:"optional,omitempty"`
	Default  string         `json:"default,omitempty" yaml:"default,omitempty"`
	Required bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Params   []MemberExport `json:"params,omitempty" yaml:"params,omitempty"`
}

// ExportClasses converts the aggregated class list to its serializable
// form, preserving order.
func ExportClasses(classes []*Class) []ClassExport {
	out := make([]ClassExport, 0, len(classes))
	for _, cls := range classes {
		out = append(out, exportClass(cls))
	}
	return out
}

// ExportNode converts a single node; used when dumping raw node
// streams for diagnostics.
func ExportNode(n Node) any {
	switch n := n.(type) {
	case *Class:
		return exportClass(n)
	case *Member:
		return exportMember(n)
	}
	return nil
}

func exportClass(cls *Class) ClassExport {
	out := ClassExport{
		Tag:                 string(TagClass),
		Name:                cls.Name,
		Doc:                 cls.Doc,
		Extends:             cls.Extends,
		Mixins:              cls.Mixins,
		AlternateClassNames: cls.AlternateClassNames,
		Singleton:           cls.Singleton,
		Private:             cls.Private,
		Protected:           cls.Protected,
		Filename:            cls.Filename,
		Line:                cls.Line,
	}
	if len(cls.Xtypes) > 0 {
		out.Xtypes = cls.Xtypes
	}
	out.Cfgs = exportMembers(cls.Members[TagCfg])
	out.Properties = exportMembers(cls.Members[TagProperty])
	out.Methods = exportMembers(cls.Members[TagMethod])
	out.Events = exportMembers(cls.Members[TagEvent])
	for _, tag := range MemberTags {
		if members := exportMembers(cls.Statics[tag]); members != nil {
			if out.Statics == nil {
				out.Statics = make(map[string][]MemberExport)
			}
			out.Statics[string(tag)] = members
		}
	}
	return out
}

func exportMembers(members []*Member) []MemberExport {
	if len(members) == 0 {
		return nil
	}
	out := make([]MemberExport, 0, len(members))
	for _, m := range members {
		out = append(out, exportMember(m))
	}
	return out
}

func exportMember(m *Member) MemberExport {
	return MemberExport{
		Tag:      string(m.Tag),
		Name:     m.Name,
		Owner:    m.Owner,
		Static:   m.Static,
		Doc:      m.Doc,
		Type:     m.Type,
		Optional: m.Optional,
		Default:  m.Default,
		Required: m.Required,
		Params:   exportMembers(m.Params),
	}
}
