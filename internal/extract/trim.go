package extract

import "strings"

// trimIndent strips the incidental leading indentation that editors add to
// comment blocks so they line up with the surrounding code. The first line
// containing a non-whitespace character establishes the column offset; that
// line and every following line lose up to offset leading characters (lines
// shorter than the offset pass through unchanged, as do lines before the
// offset is established). Line endings are recognized as "\n" or "\r\n" and
// every emitted line ends with "\n". The offset is scoped to one call: each
// comment body starts fresh.
func trimIndent(text string) string {
	if text == "" {
		return text
	}
	lines := splitLines(text)
	offset := -1
	out := make([]byte, 0, len(text))
	for _, line := range lines {
		if offset < 0 {
			if n := leadingWhitespace(line); n < len(line) {
				offset = n
			}
		}
		if offset >= 0 && len(line) >= offset {
			line = line[offset:]
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return string(out)
}

// splitLines splits on "\n", dropping a "\r" left at the end of a line by a
// "\r\n" terminator. A trailing line terminator does not produce an empty
// final line.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		line := text[:i]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		lines = append(lines, line)
		text = text[i+1:]
	}
	return lines
}

// leadingWhitespace counts the leading space and tab characters of line.
func leadingWhitespace(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}
