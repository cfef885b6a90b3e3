package token

import (
	"fmt"
	"strconv"
)

// PPKind classifies a preprocessing token (ISO/IEC 9899 6.4, phase 3).
type PPKind int

const (
	PPWhitespace PPKind = iota
	PPHeaderName
	PPIdentifier
	PPNumber
	PPCharacterConstant
	PPStringLiteral
	PPPunctuator
	PPOtherUniversalCharacterName

	// PPNonWhiteSpaceCharacter holds a single character no other rule
	// accepted. The scanner emits it instead of stopping.
	PPNonWhiteSpaceCharacter
)

var ppKindNames = [...]string{
	PPWhitespace:                  "Whitespace",
	PPHeaderName:                  "HeaderName",
	PPIdentifier:                  "Identifier",
	PPNumber:                      "PpNumber",
	PPCharacterConstant:           "CharacterConstant",
	PPStringLiteral:               "StringLiteral",
	PPPunctuator:                  "Punctuator",
	PPOtherUniversalCharacterName: "OtherUniversalCharacterName",
	PPNonWhiteSpaceCharacter:      "NonWhiteSpaceCharacter",
}

func (k PPKind) String() string {
	if int(k) >= 0 && int(k) < len(ppKindNames) {
		return ppKindNames[k]
	}
	return fmt.Sprintf("PPKind(%d)", int(k))
}

// PPToken is a preprocessing token together with its half-open byte span
// [Start, End) in the source it was scanned from.
//
// Only the payload field belonging to Kind is meaningful:
//
//	PPWhitespace, PPNonWhiteSpaceCharacter  Char
//	PPIdentifier, PPStringLiteral           Text
//	PPPunctuator                            Punct
type PPToken struct {
	Kind  PPKind
	Char  rune
	Text  string
	Punct Punctuator
	Start int
	End   int
}

// Whitespace builds a whitespace preprocessing token.
func Whitespace(c rune, start, end int) PPToken {
	return PPToken{Kind: PPWhitespace, Char: c, Start: start, End: end}
}

// Identifier builds an identifier preprocessing token.
func Identifier(text string, start, end int) PPToken {
	return PPToken{Kind: PPIdentifier, Text: text, Start: start, End: end}
}

// StringLiteral builds a string-literal preprocessing token.
func StringLiteral(text string, start, end int) PPToken {
	return PPToken{Kind: PPStringLiteral, Text: text, Start: start, End: end}
}

// Punct builds a punctuator preprocessing token.
func Punct(p Punctuator, start, end int) PPToken {
	return PPToken{Kind: PPPunctuator, Punct: p, Start: start, End: end}
}

// NonWhiteSpace builds a placeholder token for an unrecognized character.
func NonWhiteSpace(c rune, start, end int) PPToken {
	return PPToken{Kind: PPNonWhiteSpaceCharacter, Char: c, Start: start, End: end}
}

// Len returns the number of source bytes the token spans.
func (t PPToken) Len() int {
	return t.End - t.Start
}

// String renders the kind with its payload, e.g. Identifier("main") or
// Punctuator(LeftBitShiftAssign), for debugging and test failure output.
func (t PPToken) String() string {
	switch t.Kind {
	case PPWhitespace, PPNonWhiteSpaceCharacter:
		return fmt.Sprintf("%s(%s)", t.Kind, strconv.QuoteRune(t.Char))
	case PPIdentifier, PPStringLiteral:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case PPPunctuator:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Punct)
	default:
		return t.Kind.String()
	}
}
