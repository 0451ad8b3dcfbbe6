package ds9

import (
	"strings"
)

// physicalLine is one logical input line after continuation joining
type physicalLine struct {
	num  int // line number of the first physical line
	text string
}

// splitLines breaks input into lines, joining lines that end in a
// backslash with the line that follows
func splitLines(input string) []physicalLine {
	raw := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")

	var lines []physicalLine
	var pending strings.Builder
	start := 0
	for i, line := range raw {
		if pending.Len() == 0 {
			start = i + 1
		}
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.HasSuffix(trimmed, "\\") {
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteByte(' ')
			continue
		}
		pending.WriteString(line)
		lines = append(lines, physicalLine{num: start, text: pending.String()})
		pending.Reset()
	}
	if pending.Len() > 0 {
		lines = append(lines, physicalLine{num: start, text: pending.String()})
	}
	return lines
}

// scanner tracks nesting while walking a statement. Quotes only count once
// the metadata '#' has been seen, since '"' marks arcseconds in the shape part.
type scanner struct {
	depth   int  // parentheses
	brace   bool // inside {...}
	quote   byte // active quote character
	inMeta  bool
	topHash int // index of the first top-level '#', or -1
}

func (s *scanner) step(i int, c byte) (topLevel bool) {
	switch {
	case s.quote != 0:
		if c == s.quote {
			s.quote = 0
		}
		return false
	case s.brace:
		if c == '}' {
			s.brace = false
		}
		return false
	}
	switch c {
	case '{':
		s.brace = true
		return false
	case '"', '\'':
		if s.inMeta {
			s.quote = c
			return false
		}
	case '(':
		s.depth++
		return false
	case ')':
		if s.depth > 0 {
			s.depth--
		}
		return false
	case '#':
		if s.depth == 0 && !s.inMeta {
			s.inMeta = true
			s.topHash = i
		}
	}
	return s.depth == 0
}

// splitStatements splits a line on top-level ';' separators
func splitStatements(line string) []string {
	var out []string
	sc := scanner{topHash: -1}
	last := 0
	for i := 0; i < len(line); i++ {
		if sc.step(i, line[i]) && line[i] == ';' {
			out = append(out, line[last:i])
			last = i + 1
			sc = scanner{topHash: -1}
		}
	}
	return append(out, line[last:])
}

// splitComment separates the shape part of a statement from its metadata
// block at the first '#' outside parentheses. hasMeta reports whether a '#'
// was present.
func splitComment(stmt string) (head, meta string, hasMeta bool) {
	sc := scanner{topHash: -1}
	for i := 0; i < len(stmt); i++ {
		sc.step(i, stmt[i])
		if sc.topHash >= 0 {
			return stmt[:sc.topHash], stmt[sc.topHash+1:], true
		}
	}
	return stmt, "", false
}

// splitShapeTail separates "keyword(args) rest" at the parenthesis closing
// the argument list. ok is false when there is no balanced argument list.
func splitShapeTail(body string) (head, rest string, ok bool) {
	open := strings.IndexByte(body, '(')
	if open < 0 {
		return "", "", false
	}
	sc := scanner{topHash: -1}
	for i := open; i < len(body); i++ {
		sc.step(i, body[i])
		if body[i] == ')' && sc.depth == 0 && !sc.brace {
			return body[:i+1], strings.TrimPrefix(strings.TrimSpace(body[i+1:]), "#"), true
		}
	}
	return "", "", false
}

// firstWord returns the leading identifier of s, lower-cased
func firstWord(s string) string {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			break
		}
		end++
	}
	return strings.ToLower(s[:end])
}

// stripComposite removes a trailing "||" marking a member of a DS9 composite
func stripComposite(head string) (string, bool) {
	trimmed := strings.TrimRight(head, " \t")
	if strings.HasSuffix(trimmed, "||") {
		return strings.TrimSuffix(trimmed, "||"), true
	}
	return head, false
}
