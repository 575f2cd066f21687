package md

import "bytes"

// stripFrontMatter removes a metadata block delimited by "---", "+++" or
// ";;;" from the start of src. Blocks whose first line does not look like
// metadata, or that are never closed, are kept: a leading "---" is just as
// likely a thematic break.
func stripFrontMatter(src []byte) []byte {
	openLine, openNext := nextLine(src, 0)
	delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok {
		return src
	}
	if openNext >= len(src) {
		return src
	}
	secondLine, _ := nextLine(src, openNext)
	if !frontMatterMetadataLikely(secondLine) {
		return src
	}
	closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return src
	}
	return src[closeNext:]
}

func nextLine(src []byte, start int) ([]byte, int) {
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return next, true
		}
		idx = next
	}
	return 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
