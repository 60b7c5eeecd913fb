// Package scan splits raw manifest text into lines and whitespace-delimited
// fields, preserving byte offsets into the original buffer for diagnostics.
// It owns no semantics and never fails: malformed lines are handed to the
// grammar layer unchanged.
package scan

// Line is one source line, without its terminator.
type Line struct {
	// Offset is the byte offset of the first character of the line.
	Offset int

	// Text is the line content, excluding the `\n` or `\r\n` terminator.
	Text string

	// Terminated reports whether the line ended with a newline rather
	// than running into end of input.
	Terminated bool
}

// Field is one whitespace-delimited token within a line.
type Field struct {
	// Offset is the byte offset of the field in the original buffer.
	Offset int

	// Text is the field content. It contains no whitespace.
	Text string
}

// End returns the byte offset just past the field.
func (f Field) End() int { return f.Offset + len(f.Text) }

// Scanner yields the lines of a buffer one at a time. A Scanner is bound
// to one buffer; create a new one to rescan.
type Scanner struct {
	src string
	pos int
}

// New returns a Scanner over src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next line. The second result is false once the input is
// exhausted. Both `\n` and `\r\n` terminators are recognised.
func (s *Scanner) Next() (Line, bool) {
	if s.pos >= len(s.src) {
		return Line{}, false
	}
	start := s.pos
	for s.pos < len(s.src) {
		if s.src[s.pos] == '\n' {
			text := s.src[start:s.pos]
			if len(text) > 0 && text[len(text)-1] == '\r' {
				text = text[:len(text)-1]
			}
			s.pos++
			return Line{Offset: start, Text: text, Terminated: true}, true
		}
		s.pos++
	}
	return Line{Offset: start, Text: s.src[start:], Terminated: false}, true
}

// Fields splits the line into whitespace-delimited fields, each carrying
// its byte offset. Leading, trailing and repeated whitespace is tolerated.
func (l Line) Fields() []Field {
	var fields []Field
	i := 0
	for i < len(l.Text) {
		for i < len(l.Text) && isSpace(l.Text[i]) {
			i++
		}
		start := i
		for i < len(l.Text) && !isSpace(l.Text[i]) {
			i++
		}
		if i > start {
			fields = append(fields, Field{
				Offset: l.Offset + start,
				Text:   l.Text[start:i],
			})
		}
	}
	return fields
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
