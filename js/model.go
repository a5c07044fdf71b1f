package js

// Tag identifies the kind of a documentation node.
type Tag string

const (
	TagClass    Tag = "class"
	TagCfg      Tag = "cfg"
	TagMethod   Tag = "method"
	TagProperty Tag = "property"
	TagEvent    Tag = "event"
	TagParam    Tag = "param"
)

// MemberTags lists the member kinds a class keeps, in render order.
var MemberTags = []Tag{TagCfg, TagProperty, TagMethod, TagEvent}

// GlobalClassName is the synthesized class that collects ownerless
// top-level members.
const GlobalClassName = "global"

// GlobalClassDoc is the description of the global bucket class.
const GlobalClassDoc = "Global variables and functions."

// Class is a documented class declaration. A class is created on the
// first sighting of its name; later declarations with the same name are
// merged into the original record.
type Class struct {
	Name                string
	Doc                 string
	Extends             string
	Mixins              []string
	AlternateClassNames []string
	Singleton           bool
	Private             bool
	Protected           bool

	// LegacyInit is set when the code defining the class uses the
	// legacy Ext.extend style instead of Ext.define.
	LegacyInit bool

	// Xtypes maps a component category (usually "widget") to the
	// xtype aliases registered under it.
	Xtypes map[string][]string

	Members map[Tag][]*Member
	Statics map[Tag][]*Member

	Filename string
	Line     int
}

// NewClass returns an empty class record with initialized member maps.
func NewClass(name string) *Class {
	return &Class{
		Name:    name,
		Xtypes:  make(map[string][]string),
		Members: newMemberMap(),
		Statics: newMemberMap(),
	}
}

func newMemberMap() map[Tag][]*Member {
	m := make(map[Tag][]*Member, len(MemberTags))
	for _, tag := range MemberTags {
		m[tag] = nil
	}
	return m
}

// Add attaches a member to this class, claiming ownership. Static
// members go into Statics, everything else into Members.
func (c *Class) Add(m *Member) {
	m.Owner = c.Name
	if m.Static {
		c.Statics[m.Tag] = append(c.Statics[m.Tag], m)
		return
	}
	c.Members[m.Tag] = append(c.Members[m.Tag], m)
}

// Member returns the first member with the given name in any kind, or
// nil. Statics are not searched.
func (c *Class) Member(name string) *Member {
	for _, tag := range MemberTags {
		for _, m := range c.Members[tag] {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

// HasMethod reports whether a non-static method with the given name is
// documented on this class.
func (c *Class) HasMethod(name string) bool {
	for _, m := range c.Members[TagMethod] {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Member is a documented class member: a cfg option, method, property,
// event, or a parameter nested under a method or event.
type Member struct {
	Tag    Tag
	Name   string
	Owner  string
	Static bool
	Doc    string

	// Type is the documented type name, "Object" when undeclared.
	Type string

	// Optional and Default apply to params and cfgs; Default holds the
	// raw literal text from the source, including quotes.
	Optional bool
	Default  string

	// Required applies to cfgs only.
	Required bool

	// Params holds the nested parameter list of a method or event.
	Params []*Member
}

// DefaultType is assumed for members that do not declare a type.
const DefaultType = "Object"

// NewMember returns a member of the given kind with the default type.
func NewMember(tag Tag, name string) *Member {
	return &Member{Tag: tag, Name: name, Type: DefaultType}
}
