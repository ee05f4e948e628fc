package templates

import (
	"strings"
)

// controlKeywords are the actions treated as block tags by TrimBlocks.
var controlKeywords = map[string]bool{
	"if":       true,
	"else":     true,
	"end":      true,
	"range":    true,
	"with":     true,
	"define":   true,
	"block":    true,
	"template": true,
	"break":    true,
	"continue": true,
}

// TrimBlocks rewrites template source so control actions do not leave blank
// lines behind:
//
//   - spaces and tabs between the start of a line and a control action are
//     removed when nothing else precedes the action on that line;
//   - the first newline after a control action is removed.
//
// Comments count as control actions. Output actions such as {{ .x }} are left
// as written.
func TrimBlocks(src string) string {
	var out strings.Builder
	out.Grow(len(src))

	i := 0
	for {
		start := strings.Index(src[i:], "{{")
		if start < 0 {
			out.WriteString(src[i:])
			break
		}
		start += i
		end := actionEnd(src, start+2)
		if end < 0 {
			// Unterminated action; let the parser report it.
			out.WriteString(src[i:])
			break
		}

		text := src[i:start]
		action := src[start:end]
		if isControl(action) {
			if lineStart := strings.LastIndexByte(src[:start], '\n') + 1; lineStart >= i && isBlank(src[lineStart:start]) {
				text = src[i:lineStart]
			}
			out.WriteString(text)
			out.WriteString(action)
			i = skipNewline(src, end)
			continue
		}
		out.WriteString(text)
		out.WriteString(action)
		i = end
	}
	return out.String()
}

func isBlank(s string) bool {
	return strings.Trim(s, " \t") == ""
}

func skipNewline(src string, i int) int {
	switch {
	case strings.HasPrefix(src[i:], "\r\n"):
		return i + 2
	case strings.HasPrefix(src[i:], "\n"):
		return i + 1
	}
	return i
}

// actionEnd returns the index just past the "}}" closing the action whose
// body starts at i, skipping quoted strings and comments. It returns -1 when
// the action is not closed.
func actionEnd(src string, i int) int {
	for i < len(src) {
		switch c := src[i]; {
		case strings.HasPrefix(src[i:], "}}"):
			return i + 2
		case strings.HasPrefix(src[i:], "/*"):
			j := strings.Index(src[i+2:], "*/")
			if j < 0 {
				return -1
			}
			i += j + 4
		case c == '"' || c == '\'':
			i = skipQuoted(src, i+1, c)
			if i < 0 {
				return -1
			}
		case c == '`':
			j := strings.IndexByte(src[i+1:], '`')
			if j < 0 {
				return -1
			}
			i += j + 2
		default:
			i++
		}
	}
	return -1
}

func skipQuoted(src string, i int, quote byte) int {
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		case '\n':
			return -1
		default:
			i++
		}
	}
	return -1
}

func isControl(action string) bool {
	body := strings.TrimSuffix(strings.TrimPrefix(action, "{{"), "}}")
	body = strings.TrimPrefix(body, "-")
	body = strings.TrimLeft(body, " \t\r\n")
	if strings.HasPrefix(body, "/*") {
		return true
	}
	word := body
	if k := strings.IndexAny(body, " \t\r\n-}"); k >= 0 {
		word = body[:k]
	}
	return controlKeywords[word]
}
