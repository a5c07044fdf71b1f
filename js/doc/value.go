// Package doc parses Ext-style documentation comments into js nodes.
//
// Besides the @tag grammar it implements the two best-effort helpers
// used while constructing nodes: inferring a literal default value from
// the source code following a comment, and normalizing optional
// parameter markers.
package doc

import "strings"

// ScanDefault scans the beginning of src for a single literal
// expression and returns its exact source text plus the type name
// implied by its shape (String, Boolean, Number, Object, Array,
// RegExp). Leading whitespace and a leading colon are skipped.
//
// Only recognizable literal shapes are accepted; anything else yields
// ok=false. This is deliberate: default extraction matches free-form
// source text, and no default beats a wrong one. Trailing text after a
// valid literal is ignored, so the longest valid prefix wins.
func ScanDefault(src string) (value, typ string, ok bool) {
	s := &valueScanner{src: src}
	s.skipSpace()
	if s.peek() == ':' {
		s.pos++
		s.skipSpace()
	}
	if v, ok := s.scanCSSPrefix(); ok {
		return v, "String", true
	}
	return s.scanLiteral(false)
}

// valueScanner is a single-expression tokenizer over raw source text.
type valueScanner struct {
	src string
	pos int
}

func (s *valueScanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *valueScanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *valueScanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// cssPrefixIdiom is the framework expression conventionally prepended
// to CSS class names; its runtime value is the literal "x-".
const cssPrefixIdiom = "Ext.baseCSSPrefix"

// scanCSSPrefix rewrites `Ext.baseCSSPrefix + 'foo'` into the string
// literal the expression evaluates to at runtime, e.g. `'x-foo'`.
func (s *valueScanner) scanCSSPrefix() (string, bool) {
	if !strings.HasPrefix(s.src[s.pos:], cssPrefixIdiom) {
		return "", false
	}
	save := s.pos
	s.pos += len(cssPrefixIdiom)
	s.skipSpace()
	if s.peek() != '+' {
		s.pos = save
		return "", false
	}
	s.pos++
	s.skipSpace()
	quote := s.peek()
	if quote != '\'' && quote != '"' {
		s.pos = save
		return "", false
	}
	lit, _, ok := s.scanString()
	if !ok {
		s.pos = save
		return "", false
	}
	return string(quote) + "x-" + lit[1:], true
}

// scanLiteral recognizes one literal shape. Inside arrays and objects
// (nested=true) bare identifiers are rejected so that expressions like
// [ho, ho] do not pass as defaults; only keyword literals remain valid.
func (s *valueScanner) scanLiteral(nested bool) (string, string, bool) {
	switch ch := s.peek(); {
	case ch == '\'' || ch == '"':
		return s.scanString()
	case ch == '/':
		return s.scanRegex()
	case ch >= '0' && ch <= '9':
		return s.scanNumber()
	case ch == '-' && s.peekAt(1) >= '0' && s.peekAt(1) <= '9':
		return s.scanNumber()
	case ch == '[':
		return s.scanArray()
	case ch == '{':
		return s.scanObject()
	case isIdentStart(ch):
		return s.scanIdent(nested)
	}
	return "", "", false
}

func (s *valueScanner) scanString() (string, string, bool) {
	start := s.pos
	quote := s.src[s.pos]
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case quote:
			s.pos++
			return s.src[start:s.pos], "String", true
		default:
			s.pos++
		}
	}
	return "", "", false
}

func (s *valueScanner) scanRegex() (string, string, bool) {
	start := s.pos
	s.pos++ // opening slash
	inClass := false
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case '[':
			inClass = true
			s.pos++
		case ']':
			inClass = false
			s.pos++
		case '\n':
			return "", "", false
		case '/':
			if inClass {
				s.pos++
				continue
			}
			s.pos++
			for s.pos < len(s.src) && isFlagLetter(s.src[s.pos]) {
				s.pos++
			}
			return s.src[start:s.pos], "RegExp", true
		default:
			s.pos++
		}
	}
	return "", "", false
}

func (s *valueScanner) scanNumber() (string, string, bool) {
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}
	return s.src[start:s.pos], "Number", true
}

func (s *valueScanner) scanArray() (string, string, bool) {
	start := s.pos
	s.pos++ // [
	s.skipSpace()
	if s.peek() == ']' {
		s.pos++
		return s.src[start:s.pos], "Array", true
	}
	for {
		if _, _, ok := s.scanLiteral(true); !ok {
			return "", "", false
		}
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.pos++
			s.skipSpace()
		case ']':
			s.pos++
			return s.src[start:s.pos], "Array", true
		default:
			return "", "", false
		}
	}
}

func (s *valueScanner) scanObject() (string, string, bool) {
	start := s.pos
	s.pos++ // {
	s.skipSpace()
	if s.peek() == '}' {
		s.pos++
		return s.src[start:s.pos], "Object", true
	}
	for {
		switch ch := s.peek(); {
		case ch == '\'' || ch == '"':
			if _, _, ok := s.scanString(); !ok {
				return "", "", false
			}
		case isIdentStart(ch):
			s.scanIdentName()
		default:
			return "", "", false
		}
		s.skipSpace()
		if s.peek() != ':' {
			return "", "", false
		}
		s.pos++
		s.skipSpace()
		if _, _, ok := s.scanLiteral(true); !ok {
			return "", "", false
		}
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.pos++
			s.skipSpace()
		case '}':
			s.pos++
			return s.src[start:s.pos], "Object", true
		default:
			return "", "", false
		}
	}
}

// scanIdent accepts true/false as Boolean, null and undefined as typed
// Object, and at the top level any dotted identifier path (for defaults
// like Ext.emptyFn) without inferring a type.
func (s *valueScanner) scanIdent(nested bool) (string, string, bool) {
	start := s.pos
	s.scanIdentName()
	for !nested && s.peek() == '.' && isIdentStart(s.peekAt(1)) {
		s.pos++
		s.scanIdentName()
	}
	word := s.src[start:s.pos]
	switch word {
	case "true", "false":
		return word, "Boolean", true
	case "null", "undefined":
		return word, "Object", true
	}
	if nested {
		return "", "", false
	}
	return word, "", true
}

func (s *valueScanner) scanIdentName() {
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isFlagLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}
