package token

import "fmt"

type TokenType int

const (
	TUnknown TokenType = iota
	TString
	TLiteral
	TNumber
	TTrue
	TFalse
	TNull
	TComment
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TUnknown: "TUnknown",
		TString:  "TString",
		TLiteral: "TLiteral",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TComment: "TComment",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Token is a lexical unit. For TString, Bytes holds the content between the
// quotes with escape sequences intact; decoding is deferred to the reader.
// Line is 1-based and refers to the line the token started on.
type Token struct {
	Type  TokenType
	Bytes []byte
	Line  int
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q line %d", t.Type, t.Bytes, t.Line)
}
