package token

import (
	"strings"
)

// Unescape decodes the escape sequences of a raw string payload.
// Unrecognized escapes decode to the escaped character itself.
func Unescape(v string) string {
	if !strings.ContainsRune(v, '\\') {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i+1 >= len(v) {
			b.WriteByte(v[i])
			continue
		}
		switch v[i+1] {
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+5 < len(v) {
				r := rune(0)
				ok := true
				for j := i + 2; j < i+6; j++ {
					h := hexVal(v[j])
					if h < 0 {
						ok = false
						break
					}
					r = r<<4 | rune(h)
				}
				if ok {
					b.WriteRune(r)
					i += 4
					break
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(v[i+1])
		}
		i++
	}
	return b.String()
}

// Escape encodes backslash, the delimiter, tab, CR, LF (CRLF as one unit)
// for serialized output.
func Escape(v string, delim byte) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\':
			b.WriteString(`\\`)
		case delim:
			b.WriteByte('\\')
			b.WriteByte(delim)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			if i+1 < len(v) && v[i+1] == '\n' {
				b.WriteString(`\r\n`)
				i++
			} else {
				b.WriteString(`\r`)
			}
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// NeedsQuote reports whether v cannot stand as a bare token: empty, or
// holding structural characters, quotes, whitespace or comment starts.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, "{}[]:,'\"\\ \t\r\n") {
		return true
	}
	return strings.Contains(v, "//") || strings.Contains(v, "/*")
}

// Quote wraps v in the delimiter, escaping when asked.
func Quote(v string, delim byte, escape bool) string {
	if escape {
		v = Escape(v, delim)
	}
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte(delim)
	b.WriteString(v)
	b.WriteByte(delim)
	return b.String()
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
