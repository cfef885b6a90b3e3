// Package token defines the lexical vocabulary of C: the punctuator and
// keyword catalogs, preprocessing tokens (translation phase 3) and the
// narrower tokens handed to a parser (phase 7).
package token

import "fmt"

// TokenKind classifies a translation token.
type TokenKind int

const (
	KeywordToken TokenKind = iota
	IdentifierToken
	ConstantToken
	StringLiteralToken
	PunctuatorToken
)

var tokenKindNames = [...]string{
	KeywordToken:       "Keyword",
	IdentifierToken:    "Identifier",
	ConstantToken:      "Constant",
	StringLiteralToken: "StringLiteral",
	PunctuatorToken:    "Punctuator",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a translation token. Every Token is derived from exactly one
// PPToken and keeps its span.
//
// Only the payload field belonging to Kind is meaningful:
//
//	KeywordToken                        Keyword
//	IdentifierToken, StringLiteralToken Text
//	PunctuatorToken                     Punct
type Token struct {
	Kind    TokenKind
	Keyword Keyword
	Text    string
	Punct   Punctuator
	Start   int
	End     int
}

func (t Token) String() string {
	switch t.Kind {
	case KeywordToken:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Keyword)
	case IdentifierToken, StringLiteralToken:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case PunctuatorToken:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Punct)
	default:
		return t.Kind.String()
	}
}
