package doc

import "strings"

// Optional is the result of normalizing a parameter's optionality
// markers.
type Optional struct {
	Name     string
	Doc      string
	Optional bool

	// Default holds the raw literal text of an inline default written
	// inside the bracket marker, empty when absent or unparseable.
	Default string

	// Type is inferred from the default literal's shape, may be empty.
	Type string
}

// NormalizeOptional detects the two optionality markers, in priority
// order: a name wrapped in [brackets], optionally with an inline
// =default, and the word "(optional)" immediately at the start of the
// description. The marker is stripped from the rewritten name and
// description.
//
// A bare "optional" without parentheses, or a "(optional)" appearing
// later in the description, marks nothing.
func NormalizeOptional(name, docText string) Optional {
	if inner, ok := bracketed(name); ok {
		out := Optional{Doc: docText, Optional: true}
		if eq := strings.IndexByte(inner, '='); eq >= 0 {
			out.Name = strings.TrimSpace(inner[:eq])
			if v, typ, ok := ScanDefault(inner[eq+1:]); ok {
				out.Default = v
				out.Type = typ
			}
		} else {
			out.Name = strings.TrimSpace(inner)
		}
		return out
	}

	trimmed := strings.TrimLeft(docText, " \t")
	const marker = "(optional)"
	if len(trimmed) >= len(marker) && strings.EqualFold(trimmed[:len(marker)], marker) {
		rest := strings.TrimLeft(trimmed[len(marker):], " \t")
		return Optional{Name: name, Doc: rest, Optional: true}
	}

	return Optional{Name: name, Doc: docText}
}

func bracketed(name string) (string, bool) {
	if len(name) >= 2 && name[0] == '[' && name[len(name)-1] == ']' {
		return name[1 : len(name)-1], true
	}
	return "", false
}
