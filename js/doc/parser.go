package doc

import (
	"regexp"
	"strings"

	"github.com/dhamidi/extdoc/js"
)

// Parse parses one documentation comment's interior, plus the source
// code chunk following it, into documentation nodes: at most one class
// node (always first) and any number of member nodes.
//
// The code chunk is consulted for best-effort inference only: a cfg
// default value, or the name of an implicitly documented member.
func Parse(comment, code string) []js.Node {
	p := &parser{code: code}
	for _, sec := range splitSections(cleanComment(comment)) {
		p.section(sec)
	}
	return p.finish()
}

type section struct {
	tag  string   // tag name without '@'; empty for the description
	rest string   // text after the tag word on the same line
	body []string // following lines, up to the next tag
}

type parser struct {
	code    string
	cls     *js.Class
	members []*js.Member
	cur     *js.Member // receives @param, @type, @static, etc.
	lead    string     // untagged description before the first tag
	owner   string     // explicit @member owner
	static  bool       // pending @static seen before any member tag
}

func (p *parser) section(sec section) {
	switch sec.tag {
	case "":
		p.lead = joinDoc(sec.rest, sec.body)

	case "class":
		name, rest := readWord(sec.rest)
		if p.cls == nil && name != "" {
			p.cls = js.NewClass(name)
			p.cls.Doc = joinDoc(rest, sec.body)
		}

	case "extends":
		name, _ := readWord(sec.rest)
		if p.cls != nil && p.cls.Extends == "" {
			p.cls.Extends = name
		}

	case "mixins", "mixin":
		if p.cls != nil {
			p.cls.Mixins = append(p.cls.Mixins, readNames(sec.rest)...)
		}

	case "alternateClassName":
		if p.cls != nil {
			p.cls.AlternateClassNames = append(p.cls.AlternateClassNames, readNames(sec.rest)...)
		}

	case "xtype":
		name, _ := readWord(sec.rest)
		if p.cls != nil && name != "" {
			p.cls.Xtypes["widget"] = append(p.cls.Xtypes["widget"], name)
		}

	case "singleton":
		if p.cls != nil {
			p.cls.Singleton = true
		}
	case "private":
		if p.cls != nil {
			p.cls.Private = true
		}
	case "protected":
		if p.cls != nil {
			p.cls.Protected = true
		}

	case "cfg":
		p.newMember(js.TagCfg, sec)
	case "property":
		p.newMember(js.TagProperty, sec)
	case "method":
		p.newMember(js.TagMethod, sec)
	case "event":
		p.newMember(js.TagEvent, sec)

	case "param":
		p.param(sec)

	case "member":
		name, _ := readWord(sec.rest)
		p.owner = name

	case "static":
		if p.cur != nil {
			p.cur.Static = true
		} else {
			p.static = true
		}

	case "type":
		typ, rest := readType(sec.rest)
		if typ == "" {
			typ, _ = readWord(rest)
		}
		if p.cur != nil && typ != "" {
			p.cur.Type = typ
		}

	case "required":
		if p.cur != nil && p.cur.Tag == js.TagCfg {
			p.cur.Required = true
		}

	default:
		// Unknown tags stay visible as documentation text.
		text := joinDoc("@"+sec.tag+" "+sec.rest, sec.body)
		p.appendDoc(text)
	}
}

func (p *parser) newMember(tag js.Tag, sec section) {
	typ, rest := readType(sec.rest)
	name, rest := readName(rest)

	m := js.NewMember(tag, name)
	opt := NormalizeOptional(name, joinDoc(rest, sec.body))
	m.Name = opt.Name
	m.Doc = opt.Doc
	m.Optional = opt.Optional
	m.Default = opt.Default
	m.Type = pickType(typ, opt.Type)
	if p.static {
		m.Static = true
		p.static = false
	}

	p.members = append(p.members, m)
	p.cur = m
}

func (p *parser) param(sec section) {
	if p.cur == nil {
		// A @param with no preceding member tag documents a function;
		// name it from the code when possible.
		m := js.NewMember(js.TagMethod, functionName(p.code))
		m.Doc = p.lead
		p.lead = ""
		p.members = append(p.members, m)
		p.cur = m
	}

	typ, rest := readType(sec.rest)
	name, rest := readName(rest)

	pm := js.NewMember(js.TagParam, name)
	opt := NormalizeOptional(name, joinDoc(rest, sec.body))
	pm.Name = opt.Name
	pm.Doc = opt.Doc
	pm.Optional = opt.Optional
	pm.Default = opt.Default
	pm.Type = pickType(typ, opt.Type)

	p.cur.Params = append(p.cur.Params, pm)
}

func (p *parser) appendDoc(text string) {
	if text == "" {
		return
	}
	switch {
	case p.cur != nil:
		p.cur.Doc = joinDoc(p.cur.Doc, []string{text})
	case p.cls != nil:
		p.cls.Doc = joinDoc(p.cls.Doc, []string{text})
	default:
		p.lead = joinDoc(p.lead, []string{text})
	}
}

func (p *parser) finish() []js.Node {
	// A comment with only a description documents whatever the code
	// that follows it declares.
	if p.cls == nil && len(p.members) == 0 {
		if p.lead == "" {
			return nil
		}
		m := p.implicitMember()
		if m == nil {
			return nil
		}
		p.members = append(p.members, m)
	}

	// The leading description belongs to the first node.
	if p.lead != "" {
		if p.cls != nil {
			if p.cls.Doc == "" {
				p.cls.Doc = p.lead
			}
		} else if len(p.members) > 0 && p.members[0].Doc == "" {
			p.members[0].Doc = p.lead
		}
	}

	// A lone cfg comment inherits its default from the code that
	// follows it when no inline default was written.
	if p.cls == nil && len(p.members) == 1 {
		m := p.members[0]
		if m.Tag == js.TagCfg && m.Default == "" {
			if v, typ, ok := inferDefault(p.code); ok {
				m.Default = v
				m.Type = pickType(m.Type, typ)
			}
		}
	}

	var nodes []js.Node
	if p.cls != nil {
		nodes = append(nodes, p.cls)
	}
	for _, m := range p.members {
		if m.Owner == "" {
			m.Owner = p.owner
		}
		if p.cls != nil && m.Owner == "" {
			m.Owner = p.cls.Name
		}
		nodes = append(nodes, m)
	}
	return nodes
}

// implicitMember builds a member node for a tagless comment from the
// shape of the following code: a function becomes a method, a plain
// assignment a property. Unrecognizable code drops the comment.
func (p *parser) implicitMember() *js.Member {
	if name := functionName(p.code); name != "" {
		m := js.NewMember(js.TagMethod, name)
		m.Doc = p.lead
		p.lead = ""
		if p.static {
			m.Static = true
		}
		return m
	}
	if name := assignName(p.code); name != "" {
		m := js.NewMember(js.TagProperty, name)
		m.Doc = p.lead
		p.lead = ""
		if p.static {
			m.Static = true
		}
		if v, typ, ok := inferDefault(p.code); ok {
			m.Default = v
			m.Type = pickType(m.Type, typ)
		}
		return m
	}
	return nil
}

// pickType keeps a declared type and falls back to the inferred one;
// "Object" counts as undeclared because it is the generic default.
func pickType(declared, inferred string) string {
	if declared != "" && declared != js.DefaultType {
		return declared
	}
	if inferred != "" {
		return inferred
	}
	return js.DefaultType
}

var (
	reFunctionDecl = regexp.MustCompile(`^\s*function\s+([A-Za-z_$][\w$]*)\s*\(`)
	reFunctionProp = regexp.MustCompile(`^\s*(?:var\s+)?([A-Za-z_$][\w$.]*)\s*[:=]\s*function\b`)
	reAssign       = regexp.MustCompile(`^\s*(?:var\s+)?([A-Za-z_$][\w$.]*)\s*[:=]`)
)

func functionName(code string) string {
	if m := reFunctionDecl.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	if m := reFunctionProp.FindStringSubmatch(code); m != nil {
		return lastSegment(m[1])
	}
	return ""
}

func assignName(code string) string {
	if m := reAssign.FindStringSubmatch(code); m != nil {
		return lastSegment(m[1])
	}
	return ""
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// inferDefault extracts a literal default from code shaped like
// `foo: <literal>` or `this.foo = <literal>`.
func inferDefault(code string) (string, string, bool) {
	m := reAssign.FindStringSubmatchIndex(code)
	if m == nil {
		return "", "", false
	}
	return ScanDefault(code[m[1]:])
}

// cleanComment strips the per-line " * " prefix convention from a
// comment interior.
func cleanComment(comment string) []string {
	lines := strings.Split(comment, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			trimmed = trimmed[1:]
			trimmed = strings.TrimPrefix(trimmed, " ")
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}

// splitSections groups cleaned comment lines into the untagged leading
// description plus one section per @tag line.
func splitSections(lines []string) []section {
	var sections []section
	current := section{}
	for i, line := range lines {
		if tag, rest, ok := tagLine(line); ok {
			if i > 0 || current.rest != "" || len(current.body) > 0 {
				sections = append(sections, current)
			}
			current = section{tag: tag, rest: rest}
			continue
		}
		if current.tag == "" && current.rest == "" && len(current.body) == 0 {
			current.rest = line
			continue
		}
		current.body = append(current.body, line)
	}
	sections = append(sections, current)
	return sections
}

func tagLine(line string) (tag, rest string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < 2 || trimmed[0] != '@' || !isIdentStart(trimmed[1]) {
		return "", "", false
	}
	end := 1
	for end < len(trimmed) && isIdentPart(trimmed[end]) {
		end++
	}
	return trimmed[1:end], strings.TrimLeft(trimmed[end:], " \t"), true
}

// readType reads a balanced {Type} group.
func readType(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, "{") {
		return "", s
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:]
			}
		}
	}
	return "", s
}

// readName reads a member or parameter name, keeping a [bracketed]
// group intact so the optionality marker survives until normalization.
func readName(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if strings.HasPrefix(s, "[") {
		depth := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					return s[:i+1], s[i+1:]
				}
			}
		}
	}
	return readWord(s)
}

func readWord(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	for end < len(s) && s[end] != ' ' && s[end] != '\t' {
		end++
	}
	return s[:end], s[end:]
}

func readNames(s string) []string {
	var names []string
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		if field != "" {
			names = append(names, field)
		}
	}
	return names
}

func joinDoc(first string, body []string) string {
	parts := make([]string, 0, len(body)+1)
	if strings.TrimSpace(first) != "" {
		parts = append(parts, strings.TrimRight(first, " \t"))
	}
	for _, line := range body {
		parts = append(parts, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
