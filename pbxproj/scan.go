package pbxproj

import (
	"regexp"
	"strings"
)

// The helpers below walk pbxproj text while stepping over /* */ and //
// comments and quoted strings, so that delimiters and field names inside them
// are never mistaken for structure.

func skipComment(content string, i int) (int, bool) {
	switch {
	case strings.HasPrefix(content[i:], "/*"):
		j := strings.Index(content[i+2:], "*/")
		if j < 0 {
			return len(content), true
		}
		return i + 2 + j + 2, true
	case strings.HasPrefix(content[i:], "//"):
		j := strings.IndexByte(content[i:], '\n')
		if j < 0 {
			return len(content), true
		}
		return i + j, true
	}
	return i, false
}

func skipString(content string, i int) int {
	for j := i + 1; j < len(content); j++ {
		switch content[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(content)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '$'
}

func skipSpace(content string, i, end int) int {
	for i < end && isSpace(content[i]) {
		i++
	}
	return i
}

// matchingClose returns the offset of the '}' or ')' closing the delimiter at open.
func matchingClose(content string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(content); i++ {
		c := content[i]
		switch c {
		case '/':
			if j, ok := skipComment(content, i); ok {
				i = j - 1
			}
		case '"':
			i = skipString(content, i) - 1
		case '{', '(':
			depth++
		case '}', ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// topLevelFields returns the offsets of every `name =` assignment found at
// nesting depth zero within content[start:end].
func topLevelFields(content string, start, end int, name string) []int {
	var found []int
	depth := 0
	for i := start; i < end; i++ {
		c := content[i]
		switch {
		case c == '/':
			if j, ok := skipComment(content, i); ok {
				i = j - 1
			}
		case c == '"':
			i = skipString(content, i) - 1
		case c == '{' || c == '(':
			depth++
		case c == '}' || c == ')':
			depth--
		case depth == 0 && isIdentByte(c) && (i == start || !isIdentByte(content[i-1])):
			j := i
			for j < end && isIdentByte(content[j]) {
				j++
			}
			if content[i:j] == name {
				if k := skipSpace(content, j, end); k < end && content[k] == '=' {
					found = append(found, i)
				}
			}
			i = j - 1
		}
	}
	return found
}

// lastSignificant returns the offset of the last non-whitespace byte in
// content[start:end], or -1. Comments count only when withComments is set.
func lastSignificant(content string, start, end int, withComments bool) int {
	last := -1
	for i := start; i < end; i++ {
		c := content[i]
		switch {
		case c == '/':
			if j, ok := skipComment(content, i); ok {
				if withComments {
					last = j - 1
				}
				i = j - 1
				continue
			}
			last = i
		case c == '"':
			j := skipString(content, i)
			last = j - 1
			i = j - 1
		case isSpace(c):
		default:
			last = i
		}
	}
	return last
}

func lineStart(content string, off int) int {
	return strings.LastIndexByte(content[:off], '\n') + 1
}

// startsLine reports whether only indentation precedes off on its line.
func startsLine(content string, off int) bool {
	return strings.TrimSpace(content[lineStart(content, off):off]) == ""
}

func indentAt(content string, off int) string {
	ls := lineStart(content, off)
	j := ls
	for j < len(content) && (content[j] == ' ' || content[j] == '\t') {
		j++
	}
	return content[ls:j]
}

// sectionBounds returns the text between the begin and end markers of the
// only section of the given kind.
func sectionBounds(content, kind string) (start, end int, ok bool) {
	begin, finish := beginSectionMarker(kind), endSectionMarker(kind)
	if strings.Count(content, begin) != 1 || strings.Count(content, finish) != 1 {
		return 0, 0, false
	}
	start = strings.Index(content, begin) + len(begin)
	end = strings.Index(content, finish)
	if end < start {
		return 0, 0, false
	}
	return start, end, true
}

// definitions returns the offsets of the opening brace of every
// `<id> /* comment */ = {` line in content[start:end].
func definitions(content string, start, end int, id string) []int {
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(id) + `\b(?:[ \t]*/\*.*?\*/)?[ \t]*=[ \t]*\{`)
	var found []int
	for _, loc := range re.FindAllStringIndex(content[start:end], -1) {
		found = append(found, start+loc[1]-1)
	}
	return found
}

// findObject locates the body of the object with the given id, preferring
// the section of its kind so that keys reusing the id elsewhere (such as
// TargetAttributes) do not count.
func findObject(content, kind, id, step string) (open, close int, err error) {
	start, end, ok := sectionBounds(content, kind)
	if !ok {
		start, end = 0, len(content)
	}
	defs := definitions(content, start, end, id)
	if len(defs) != 1 {
		return 0, 0, anchorError(step, id+" = {", len(defs))
	}
	open = defs[0]
	close, ok = matchingClose(content, open)
	if !ok || close > end {
		return 0, 0, anchorError(step, id+" = { ... }", 0)
	}
	return open, close, nil
}
