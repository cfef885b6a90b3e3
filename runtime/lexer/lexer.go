// Package lexer scans C source text into preprocessing tokens.
//
// The scanner is pull-based: each call to Next classifies one token using at
// most three characters of lookahead, backtracking through cursor snapshots
// so that the longest punctuator always wins and no character is skipped or
// scanned twice.
package lexer

import (
	"iter"
	"time"

	"github.com/opal-lang/clex/core/invariant"
	"github.com/opal-lang/clex/core/token"
)

// ASCII character lookup tables for fast classification
var (
	isWhitespace [128]bool
	isIdentStart [128]bool
	isIdentPart  [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
		isIdentStart[i] = ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		isIdentPart[i] = isIdentStart[i] || ('0' <= ch && ch <= '9')
	}
}

// threeWayRule resolves punctuators of up to three characters sharing a
// lead character, such as < << <<=.
type threeWayRule struct {
	name       string
	def        token.Punctuator
	second     rune
	secondKind token.Punctuator
	hasSecond  bool // false when the two-character prefix is not a punctuator
	third      rune
	thirdKind  token.Punctuator
}

var (
	fullStopRule = threeWayRule{
		name:      "full_stop",
		def:       token.FullStop,
		second:    '.',
		third:     '.',
		thirdKind: token.Ellipsis,
	}
	lessThanRule = threeWayRule{
		name:       "less_than",
		def:        token.LessThan,
		second:     '<',
		secondKind: token.LeftBitShift,
		hasSecond:  true,
		third:      '=',
		thirdKind:  token.LeftBitShiftAssign,
	}
	greaterThanRule = threeWayRule{
		name:       "greater_than",
		def:        token.GreaterThan,
		second:     '>',
		secondKind: token.RightBitShift,
		hasSecond:  true,
		third:      '=',
		thirdKind:  token.RightBitShiftAssign,
	}
)

// Lexer produces preprocessing tokens from a source text. A Lexer is not
// safe for concurrent use.
type Lexer struct {
	cursor      Cursor
	diagnostics DiagnosticSink

	// Telemetry (nil when disabled for zero allocation)
	telemetryMode  TelemetryMode
	tokenTelemetry map[token.PPKind]*TokenTelemetry

	// Debug (nil when disabled for zero allocation)
	debugLevel  DebugLevel
	debugEvents []DebugEvent
}

// NewLexer creates a lexer over src with optional configuration.
func NewLexer(src string, opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Lexer{
		diagnostics:   config.diagnostics,
		telemetryMode: config.telemetry,
		debugLevel:    config.debug,
	}
	if l.diagnostics == nil {
		l.diagnostics = discardSink{}
	}

	if config.telemetry > TelemetryOff {
		l.tokenTelemetry = make(map[token.PPKind]*TokenTelemetry)
	}
	if config.debug > DebugOff {
		l.debugEvents = make([]DebugEvent, 0, 256)
	}

	l.Init(src)
	return l
}

// Init resets the lexer to scan src from the beginning, keeping its
// configuration.
func (l *Lexer) Init(src string) {
	l.cursor = NewCursor(src)

	if l.tokenTelemetry != nil {
		for k := range l.tokenTelemetry {
			delete(l.tokenTelemetry, k)
		}
	}
	if l.debugEvents != nil {
		l.debugEvents = l.debugEvents[:0]
	}
}

// Next scans the next preprocessing token. It reports false once the input
// is exhausted.
func (l *Lexer) Next() (token.PPToken, bool) {
	var start time.Time
	if l.telemetryMode >= TelemetryTiming {
		start = time.Now()
	}

	tok, ok := l.lexToken()
	if !ok {
		return token.PPToken{}, false
	}

	invariant.Span(tok.Start, tok.End, len(l.cursor.Source()), "token")
	invariant.Progress(tok.Start, tok.End, "scan")

	if l.telemetryMode > TelemetryOff {
		var elapsed time.Duration
		if l.telemetryMode >= TelemetryTiming {
			elapsed = time.Since(start)
		}
		l.recordTokenTelemetry(tok.Kind, elapsed)
	}
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("emit", tok.String())
	}

	return tok, true
}

// All returns the remaining preprocessing tokens as a lazy sequence. The
// sequence shares the lexer's position and cannot be restarted.
func (l *Lexer) All() iter.Seq[token.PPToken] {
	return func(yield func(token.PPToken) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokens returns the remaining input as translation tokens, silently
// dropping preprocessing tokens that have no token form or are not
// supported yet.
func (l *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for pp := range l.All() {
			tok, err := token.Narrow(pp)
			if err != nil {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Collect scans the remaining input into a slice.
func (l *Lexer) Collect() []token.PPToken {
	var tokens []token.PPToken
	for tok := range l.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Preprocess scans src into preprocessing tokens.
func Preprocess(src string, opts ...LexerOpt) []token.PPToken {
	return NewLexer(src, opts...).Collect()
}

// Tokenize scans src into translation tokens.
func Tokenize(src string, opts ...LexerOpt) []token.Token {
	var tokens []token.Token
	for tok := range NewLexer(src, opts...).Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// lexToken dispatches on the peeked character.
func (l *Lexer) lexToken() (token.PPToken, bool) {
	start := l.cursor.Index()
	ch, ok := l.cursor.Peek()
	if !ok {
		return token.PPToken{}, false
	}

	if l.debugLevel > DebugOff {
		l.recordDebugEvent("dispatch", string(ch))
	}

	if ch < 128 && isWhitespace[ch] {
		l.cursor.Advance()
		return token.Whitespace(ch, start, l.cursor.Index()), true
	}

	if ch < 128 && isIdentStart[ch] {
		return l.lexIdentifier(start), true
	}

	switch ch {
	case '[':
		return l.lexSingle(start, token.LeftSquareBracket), true
	case ']':
		return l.lexSingle(start, token.RightSquareBracket), true
	case '(':
		return l.lexSingle(start, token.LeftParenthesis), true
	case ')':
		return l.lexSingle(start, token.RightParenthesis), true
	case '{':
		return l.lexSingle(start, token.LeftCurlyBracket), true
	case '}':
		return l.lexSingle(start, token.RightCurlyBracket), true
	case '~':
		return l.lexSingle(start, token.Tilde), true
	case '?':
		return l.lexSingle(start, token.QuestionMark), true
	case ';':
		return l.lexSingle(start, token.Semicolon), true
	case ',':
		return l.lexSingle(start, token.Comma), true

	case '!':
		return l.lexTwoWay(start, '=', token.ExclamationMark, token.NotEqualTo), true
	case '/':
		return l.lexTwoWay(start, '=', token.Solidus, token.DivideAssign), true
	case '*':
		return l.lexTwoWay(start, '=', token.Asterisk, token.MultiplyAssign), true
	case '%':
		return l.lexTwoWay(start, '=', token.Percentage, token.ModuloAssign), true
	case '^':
		return l.lexTwoWay(start, '=', token.BitwiseXor, token.BitwiseXorAssign), true
	case '#':
		return l.lexTwoWay(start, '#', token.Pound, token.DoublePound), true
	case ':':
		return l.lexTwoWay(start, ':', token.Colon, token.DoubleColon), true
	case '=':
		return l.lexTwoWay(start, '=', token.EqualsSign, token.EqualTo), true

	case '+':
		return l.lexMathAffixAssign(start, '+', token.PlusSign, token.IncrementOperator, token.AddAssign), true
	case '|':
		return l.lexMathAffixAssign(start, '|', token.BitwiseOr, token.LogicalOr, token.BitwiseOrAssign), true
	case '&':
		return l.lexMathAffixAssign(start, '&', token.ReferenceOperatorOrBitwiseAnd, token.LogicalAnd, token.BitwiseAndAssign), true
	case '-':
		return l.lexMinus(start), true

	case '.':
		return l.lexThreeWay(start, fullStopRule), true
	case '<':
		return l.lexRelational(start, token.LessThanOrEqualTo, lessThanRule), true
	case '>':
		return l.lexRelational(start, token.GreaterThanOrEqualTo, greaterThanRule), true
	}

	// Unrecognized character - report, advance and emit a placeholder
	l.diagnostics.Report(unknownCharacter(start, ch))
	l.cursor.Advance()
	return token.NonWhiteSpace(ch, start, l.cursor.Index()), true
}

// lexSingle consumes one character as punctuator p.
func (l *Lexer) lexSingle(start int, p token.Punctuator) token.PPToken {
	l.cursor.Advance()
	return token.Punct(p, start, l.cursor.Index())
}

// lexTwoWay handles a lead character optionally followed by pair, e.g. '!'
// and "!=".
func (l *Lexer) lexTwoWay(start int, pair rune, single, double token.Punctuator) token.PPToken {
	l.cursor.Advance() // consume lead

	if next, ok := l.cursor.Peek(); ok && next == pair {
		l.cursor.Advance()
		return token.Punct(double, start, l.cursor.Index())
	}

	return token.Punct(single, start, l.cursor.Index())
}

// lexMathAffixAssign handles '+', "++" and "+=" and their '|', '&' and '-'
// counterparts. The repeated form is checked before the assignment form.
func (l *Lexer) lexMathAffixAssign(start int, lead rune, math, affix, assign token.Punctuator) token.PPToken {
	l.cursor.Advance() // consume lead

	if next, ok := l.cursor.Peek(); ok && next == lead {
		l.cursor.Advance()
		return token.Punct(affix, start, l.cursor.Index())
	}

	if next, ok := l.cursor.Peek(); ok && next == '=' {
		l.cursor.Advance()
		return token.Punct(assign, start, l.cursor.Index())
	}

	return token.Punct(math, start, l.cursor.Index())
}

// lexMinus handles "->" ahead of '-', "--" and "-=".
func (l *Lexer) lexMinus(start int) token.PPToken {
	reset := l.cursor.Snapshot()
	l.cursor.Advance() // consume '-'

	if next, ok := l.cursor.Peek(); ok && next == '>' {
		l.cursor.Advance()
		return token.Punct(token.PointerMemberAccessOperator, start, l.cursor.Index())
	}

	l.backtrack(reset, "minus")
	return l.lexMathAffixAssign(start, '-', token.Minus, token.DecrementOperator, token.SubtractAssign)
}

// lexRelational handles "<=" (or ">=") before falling back to the
// three-way rule for the shift operators.
func (l *Lexer) lexRelational(start int, orEqual token.Punctuator, rule threeWayRule) token.PPToken {
	reset := l.cursor.Snapshot()
	l.cursor.Advance() // consume lead

	if next, ok := l.cursor.Peek(); ok && next == '=' {
		l.cursor.Advance()
		return token.Punct(orEqual, start, l.cursor.Index())
	}

	l.backtrack(reset, rule.name)
	return l.lexThreeWay(start, rule)
}

// lexThreeWay applies rule: the three-character form wins over the
// two-character form, which wins over the lead alone. A two-character prefix
// that is not itself a punctuator is given back to the cursor.
func (l *Lexer) lexThreeWay(start int, rule threeWayRule) token.PPToken {
	l.cursor.Advance() // consume lead
	reset := l.cursor.Snapshot()

	if next, ok := l.cursor.Peek(); ok && next == rule.second {
		l.cursor.Advance()

		if next, ok := l.cursor.Peek(); ok && next == rule.third {
			l.cursor.Advance()
			return token.Punct(rule.thirdKind, start, l.cursor.Index())
		}

		if rule.hasSecond {
			return token.Punct(rule.secondKind, start, l.cursor.Index())
		}

		l.backtrack(reset, rule.name)
	}

	return token.Punct(rule.def, start, l.cursor.Index())
}

// lexIdentifier consumes the maximal run of identifier characters.
func (l *Lexer) lexIdentifier(start int) token.PPToken {
	for {
		ch, ok := l.cursor.Peek()
		if !ok || ch >= 128 || !isIdentPart[ch] {
			break
		}
		l.cursor.Advance()
	}

	end := l.cursor.Index()
	invariant.Invariant(end > start, "identifier must not be empty")

	return token.Identifier(l.cursor.Source()[start:end], start, end)
}

func (l *Lexer) backtrack(to Snapshot, rule string) {
	l.cursor.Restore(to)
	if l.debugLevel > DebugOff {
		l.recordDebugEvent("backtrack", rule)
	}
}
