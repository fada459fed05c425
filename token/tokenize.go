package token

// Tokenize lexes d into a flat token sequence. It never fails: malformed or
// unterminated quotes and comments consume to the end of input and whatever
// does not lex as a known kind becomes a TLiteral. Structural rejection is
// the parser's job.
func Tokenize(d []byte) []Token {
	tz := &tokenizer{d: d, line: 1}
	toks := []Token{}
	for tz.i < len(tz.d) {
		c := tz.d[tz.i]
		switch {
		case c == '\n':
			tz.line++
			tz.i++
		case isSpace(c):
			tz.i++
		case c == '{':
			toks = append(toks, tz.one(TLCurl, 1))
		case c == '}':
			toks = append(toks, tz.one(TRCurl, 1))
		case c == '[':
			toks = append(toks, tz.one(TLSquare, 1))
		case c == ']':
			toks = append(toks, tz.one(TRSquare, 1))
		case c == ',':
			toks = append(toks, tz.one(TComma, 1))
		case c == ':':
			toks = append(toks, tz.one(TColon, 1))
		case c == '"' || c == '\'':
			toks = append(toks, tz.quoted())
		case tz.startsLineComment():
			toks = append(toks, tz.lineComment())
		case tz.startsBlockComment():
			toks = append(toks, tz.blockComment())
		case isDigit(c) || (c == '-' && tz.i+1 < len(tz.d) && isDigit(tz.d[tz.i+1])):
			toks = append(toks, tz.number())
		case tz.startsKeyword("true"):
			toks = append(toks, tz.one(TTrue, 4))
		case tz.startsKeyword("false"):
			toks = append(toks, tz.one(TFalse, 5))
		case tz.startsKeyword("null"):
			toks = append(toks, tz.one(TNull, 4))
		default:
			toks = append(toks, tz.bare())
		}
	}
	return toks
}

type tokenizer struct {
	d    []byte
	i    int
	line int
}

func (tz *tokenizer) one(tt TokenType, n int) Token {
	t := Token{Type: tt, Bytes: tz.d[tz.i : tz.i+n], Line: tz.line}
	tz.i += n
	return t
}

// quoted consumes a string delimited by the byte at tz.i. The delimiter only
// terminates when preceded by an even number of backslashes; an escaped
// escape does not escape the delimiter. The token carries the content
// between the quotes with escapes intact.
func (tz *tokenizer) quoted() Token {
	quote := tz.d[tz.i]
	start := tz.line
	j := tz.i + 1
	for ; j < len(tz.d); j++ {
		c := tz.d[j]
		if c == '\n' {
			tz.line++
			continue
		}
		if c != quote {
			continue
		}
		nbs := 0
		for k := j - 1; k > tz.i && tz.d[k] == '\\'; k-- {
			nbs++
		}
		if nbs%2 == 0 {
			t := Token{Type: TString, Bytes: tz.d[tz.i+1 : j], Line: start}
			tz.i = j + 1
			return t
		}
	}
	// unterminated: everything to end of input
	t := Token{Type: TString, Bytes: tz.d[tz.i+1 : j], Line: start}
	tz.i = j
	return t
}

func (tz *tokenizer) startsLineComment() bool {
	return tz.d[tz.i] == '/' && tz.i+1 < len(tz.d) && tz.d[tz.i+1] == '/'
}

func (tz *tokenizer) startsBlockComment() bool {
	return tz.d[tz.i] == '/' && tz.i+1 < len(tz.d) && tz.d[tz.i+1] == '*'
}

func (tz *tokenizer) lineComment() Token {
	j := tz.i
	for j < len(tz.d) && tz.d[j] != '\n' && tz.d[j] != '\r' {
		j++
	}
	t := Token{Type: TComment, Bytes: tz.d[tz.i:j], Line: tz.line}
	tz.i = j
	return t
}

func (tz *tokenizer) blockComment() Token {
	start := tz.line
	j := tz.i + 2
	for j < len(tz.d) {
		if tz.d[j] == '\n' {
			tz.line++
		}
		if tz.d[j] == '*' && j+1 < len(tz.d) && tz.d[j+1] == '/' {
			j += 2
			break
		}
		j++
	}
	t := Token{Type: TComment, Bytes: tz.d[tz.i:j], Line: start}
	tz.i = j
	return t
}

// number consumes -?digits(.digits)?([eE][+-]?digits)?. The raw textual
// form is kept verbatim; no numeric conversion happens here.
func (tz *tokenizer) number() Token {
	d, n := tz.d, len(tz.d)
	j := tz.i
	if d[j] == '-' {
		j++
	}
	for j < n {
		if isDigit(d[j]) || d[j] == '.' {
			j++
			continue
		}
		if (d[j] == 'e' || d[j] == 'E') && j+1 < n {
			if d[j+1] == '+' || d[j+1] == '-' {
				if j+2 < n && isDigit(d[j+2]) {
					j += 3
					continue
				}
			} else if isDigit(d[j+1]) {
				j += 2
				continue
			}
		}
		break
	}
	t := Token{Type: TNumber, Bytes: tz.d[tz.i:j], Line: tz.line}
	tz.i = j
	return t
}

func (tz *tokenizer) startsKeyword(kw string) bool {
	if tz.i+len(kw) > len(tz.d) {
		return false
	}
	if string(tz.d[tz.i:tz.i+len(kw)]) != kw {
		return false
	}
	if tz.i+len(kw) == len(tz.d) {
		return true
	}
	return !isBare(tz.d[tz.i+len(kw)])
}

// bare consumes a run of characters up to the next structural character,
// colon, quote, comment start, or whitespace.
func (tz *tokenizer) bare() Token {
	j := tz.i
	for j < len(tz.d) && isBare(tz.d[j]) {
		if tz.d[j] == '/' && j+1 < len(tz.d) && (tz.d[j+1] == '/' || tz.d[j+1] == '*') {
			break
		}
		j++
	}
	t := Token{Type: TLiteral, Bytes: tz.d[tz.i:j], Line: tz.line}
	tz.i = j
	return t
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isBare(c byte) bool {
	if isSpace(c) {
		return false
	}
	switch c {
	case '{', '}', '[', ']', ',', ':', '"', '\'':
		return false
	}
	return true
}
