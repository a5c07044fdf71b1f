package doc

import (
	"os"
	"strings"

	"github.com/dhamidi/extdoc/js"
	"github.com/dhamidi/extdoc/js/lexer"
)

// Source produces the documentation nodes of one JavaScript file, in
// file order. It implements js.NodeSource: nodes are parsed chunk by
// chunk as the consumer advances, and the sequence is consumed exactly
// once.
type Source struct {
	filename string
	chunks   []lexer.Chunk
	queue    []js.Node
}

// NewSource lexes content into documentation chunks for lazy parsing.
func NewSource(filename string, content []byte) *Source {
	return &Source{
		filename: filename,
		chunks:   lexer.New(content).Chunks(),
	}
}

// OpenSource reads and lexes the file at path.
func OpenSource(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(path, content), nil
}

// Next returns the next documentation node, parsing further chunks on
// demand.
func (s *Source) Next() (js.Node, bool) {
	for {
		if len(s.queue) > 0 {
			n := s.queue[0]
			s.queue = s.queue[1:]
			return n, true
		}
		if len(s.chunks) == 0 {
			return nil, false
		}
		chunk := s.chunks[0]
		s.chunks = s.chunks[1:]
		s.queue = s.parseChunk(chunk)
	}
}

func (s *Source) parseChunk(chunk lexer.Chunk) []js.Node {
	nodes := Parse(chunk.Doc, chunk.Code)
	for _, n := range nodes {
		cls, ok := n.(*js.Class)
		if !ok {
			continue
		}
		cls.Filename = s.filename
		cls.Line = chunk.Line
		if strings.Contains(chunk.Code, "Ext.extend(") {
			cls.LegacyInit = true
		}
	}
	return nodes
}
