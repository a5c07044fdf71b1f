// Package lexer splits JavaScript source into documentation chunks:
// each /** ... */ comment paired with the code that follows it.
//
// The scan is best-effort and never fails. Strings, regex literals and
// ordinary comments are skipped so that comment markers inside them are
// not mistaken for documentation.
package lexer

// Chunk is one documentation comment and its trailing code.
type Chunk struct {
	// Doc is the comment interior, without the /** and */ markers.
	Doc string

	// Code is the raw source following the comment, up to the next
	// documentation comment. Used for default-value and name
	// inference.
	Code string

	// Line is the 1-based line number of the comment opener.
	Line int
}

// Lexer scans one source file.
type Lexer struct {
	input []byte
	pos   int
	line  int

	// prev is the last significant byte seen in code, used to decide
	// whether a slash starts a regex literal or a division.
	prev byte
}

// New returns a lexer over the given source.
func New(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Chunks scans the whole input. Code before the first documentation
// comment carries no documentation and is discarded.
func (l *Lexer) Chunks() []Chunk {
	var chunks []Chunk
	l.scanCode()
	for l.atDocComment() {
		line := l.line
		doc := l.scanDocComment()
		code := l.scanCode()
		chunks = append(chunks, Chunk{Doc: doc, Code: code, Line: line})
	}
	return chunks
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

func (l *Lexer) atDocComment() bool {
	return l.peek() == '/' && l.peekAt(1) == '*' && l.peekAt(2) == '*' &&
		l.peekAt(3) != '/'
}

// scanDocComment consumes a /** ... */ comment and returns its
// interior. An unterminated comment runs to the end of input.
func (l *Lexer) scanDocComment() string {
	l.advance() // /
	l.advance() // *
	l.advance() // *
	start := l.pos
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekAt(1) == '/' {
			doc := string(l.input[start:l.pos])
			l.advance()
			l.advance()
			return doc
		}
		l.advance()
	}
	return string(l.input[start:])
}

// scanCode consumes source until the next documentation comment and
// returns it verbatim.
func (l *Lexer) scanCode() string {
	start := l.pos
	l.prev = 0
	for l.pos < len(l.input) && !l.atDocComment() {
		ch := l.peek()
		switch {
		case ch == '\'' || ch == '"' || ch == '`':
			l.skipString(ch)
			l.prev = ch
		case ch == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case ch == '/' && l.peekAt(1) == '*':
			l.skipBlockComment()
		case ch == '/' && l.regexAllowed():
			l.skipRegex()
			l.prev = '/'
		default:
			l.advance()
			if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
				l.prev = ch
			}
		}
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) skipString(quote byte) {
	l.advance()
	for l.pos < len(l.input) {
		switch l.peek() {
		case '\\':
			l.advance()
			l.advance()
		case quote:
			l.advance()
			return
		default:
			l.advance()
		}
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() {
	l.advance()
	l.advance()
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// regexAllowed reports whether a slash at the current position can
// begin a regex literal: after a value (identifier, number, closing
// bracket, string) it is a division instead.
func (l *Lexer) regexAllowed() bool {
	switch {
	case l.prev == 0:
		return true
	case l.prev == ')' || l.prev == ']':
		return false
	case l.prev >= '0' && l.prev <= '9':
		return false
	case l.prev == '_' || l.prev == '$':
		return false
	case l.prev >= 'a' && l.prev <= 'z' || l.prev >= 'A' && l.prev <= 'Z':
		return false
	case l.prev == '\'' || l.prev == '"' || l.prev == '`':
		return false
	}
	return true
}

func (l *Lexer) skipRegex() {
	l.advance() // opening slash
	inClass := false
	for l.pos < len(l.input) {
		switch l.peek() {
		case '\\':
			l.advance()
			l.advance()
		case '[':
			inClass = true
			l.advance()
		case ']':
			inClass = false
			l.advance()
		case '\n':
			// Not a regex after all; stop rather than eat the file.
			return
		case '/':
			l.advance()
			if !inClass {
				return
			}
		default:
			l.advance()
		}
	}
}
