package token

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTokenForm marks preprocessing tokens that never become tokens,
	// such as whitespace, which is discarded before translation phase 7.
	ErrNoTokenForm = errors.New("preprocessing token has no token form")

	// ErrUnsupported marks preprocessing tokens whose token form needs a
	// literal grammar that is not implemented yet.
	ErrUnsupported = errors.New("preprocessing token is not supported")
)

// MappingError reports why a preprocessing token could not be narrowed.
// Use errors.Is with ErrNoTokenForm or ErrUnsupported to tell the cases
// apart.
type MappingError struct {
	Token PPToken
	Cause error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s at [%d, %d): %v", e.Token, e.Token.Start, e.Token.End, e.Cause)
}

func (e *MappingError) Unwrap() error {
	return e.Cause
}

// Narrow maps a preprocessing token to a token. Identifiers spelled like a
// reserved word become keywords.
func Narrow(pp PPToken) (Token, error) {
	tok := Token{Start: pp.Start, End: pp.End}

	switch pp.Kind {
	case PPIdentifier:
		if kw, ok := LookupKeyword(pp.Text); ok {
			tok.Kind = KeywordToken
			tok.Keyword = kw
			return tok, nil
		}
		tok.Kind = IdentifierToken
		tok.Text = pp.Text
		return tok, nil

	case PPStringLiteral:
		tok.Kind = StringLiteralToken
		tok.Text = pp.Text
		return tok, nil

	case PPPunctuator:
		tok.Kind = PunctuatorToken
		tok.Punct = pp.Punct
		return tok, nil

	case PPWhitespace, PPHeaderName:
		return Token{}, &MappingError{Token: pp, Cause: ErrNoTokenForm}

	case PPNumber, PPCharacterConstant, PPOtherUniversalCharacterName, PPNonWhiteSpaceCharacter:
		return Token{}, &MappingError{Token: pp, Cause: ErrUnsupported}

	default:
		return Token{}, &MappingError{Token: pp, Cause: fmt.Errorf("%w: unknown kind %d", ErrUnsupported, int(pp.Kind))}
	}
}
