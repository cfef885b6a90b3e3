package token

import "fmt"

// Punctuator is one of the C operator or separator symbols (ISO/IEC 9899
// 6.4.6). Punctuators carry no behavior beyond identity.
type Punctuator int

const (
	LeftSquareBracket  Punctuator = iota // [
	RightSquareBracket                   // ]

	LeftParenthesis  // (
	RightParenthesis // )

	LeftCurlyBracket  // {
	RightCurlyBracket // }

	FullStop                    // .
	PointerMemberAccessOperator // ->

	IncrementOperator // ++
	DecrementOperator // --

	ReferenceOperatorOrBitwiseAnd // &

	Asterisk        // *
	PlusSign        // +
	Minus           // -
	Tilde           // ~
	ExclamationMark // !
	Solidus         // /
	Percentage      // %

	LeftBitShift  // <<
	RightBitShift // >>

	LessThan             // <
	GreaterThan          // >
	LessThanOrEqualTo    // <=
	GreaterThanOrEqualTo // >=
	EqualTo              // ==
	NotEqualTo           // !=

	BitwiseXor // ^
	BitwiseOr  // |

	LogicalAnd // &&
	LogicalOr  // ||

	QuestionMark // ?
	Colon        // :
	DoubleColon  // ::
	Semicolon    // ;
	Ellipsis     // ...

	EqualsSign // =

	MultiplyAssign      // *=
	DivideAssign        // /=
	ModuloAssign        // %=
	AddAssign           // +=
	SubtractAssign      // -=
	LeftBitShiftAssign  // <<=
	RightBitShiftAssign // >>=
	BitwiseAndAssign    // &=
	BitwiseXorAssign    // ^=
	BitwiseOrAssign     // |=

	Comma       // ,
	Pound       // #
	DoublePound // ##

	punctuatorCount
)

var punctuatorNames = [...]string{
	LeftSquareBracket:             "LeftSquareBracket",
	RightSquareBracket:            "RightSquareBracket",
	LeftParenthesis:               "LeftParenthesis",
	RightParenthesis:              "RightParenthesis",
	LeftCurlyBracket:              "LeftCurlyBracket",
	RightCurlyBracket:             "RightCurlyBracket",
	FullStop:                      "FullStop",
	PointerMemberAccessOperator:   "PointerMemberAccessOperator",
	IncrementOperator:             "IncrementOperator",
	DecrementOperator:             "DecrementOperator",
	ReferenceOperatorOrBitwiseAnd: "ReferenceOperatorOrBitwiseAnd",
	Asterisk:                      "Asterisk",
	PlusSign:                      "PlusSign",
	Minus:                         "Minus",
	Tilde:                         "Tilde",
	ExclamationMark:               "ExclamationMark",
	Solidus:                       "Solidus",
	Percentage:                    "Percentage",
	LeftBitShift:                  "LeftBitShift",
	RightBitShift:                 "RightBitShift",
	LessThan:                      "LessThan",
	GreaterThan:                   "GreaterThan",
	LessThanOrEqualTo:             "LessThanOrEqualTo",
	GreaterThanOrEqualTo:          "GreaterThanOrEqualTo",
	EqualTo:                       "EqualTo",
	NotEqualTo:                    "NotEqualTo",
	BitwiseXor:                    "BitwiseXor",
	BitwiseOr:                     "BitwiseOr",
	LogicalAnd:                    "LogicalAnd",
	LogicalOr:                     "LogicalOr",
	QuestionMark:                  "QuestionMark",
	Colon:                         "Colon",
	DoubleColon:                   "DoubleColon",
	Semicolon:                     "Semicolon",
	Ellipsis:                      "Ellipsis",
	EqualsSign:                    "EqualsSign",
	MultiplyAssign:                "MultiplyAssign",
	DivideAssign:                  "DivideAssign",
	ModuloAssign:                  "ModuloAssign",
	AddAssign:                     "AddAssign",
	SubtractAssign:                "SubtractAssign",
	LeftBitShiftAssign:            "LeftBitShiftAssign",
	RightBitShiftAssign:           "RightBitShiftAssign",
	BitwiseAndAssign:              "BitwiseAndAssign",
	BitwiseXorAssign:              "BitwiseXorAssign",
	BitwiseOrAssign:               "BitwiseOrAssign",
	Comma:                         "Comma",
	Pound:                         "Pound",
	DoublePound:                   "DoublePound",
}

var punctuatorSpellings = [...]string{
	LeftSquareBracket:             "[",
	RightSquareBracket:            "]",
	LeftParenthesis:               "(",
	RightParenthesis:              ")",
	LeftCurlyBracket:              "{",
	RightCurlyBracket:             "}",
	FullStop:                      ".",
	PointerMemberAccessOperator:   "->",
	IncrementOperator:             "++",
	DecrementOperator:             "--",
	ReferenceOperatorOrBitwiseAnd: "&",
	Asterisk:                      "*",
	PlusSign:                      "+",
	Minus:                         "-",
	Tilde:                         "~",
	ExclamationMark:               "!",
	Solidus:                       "/",
	Percentage:                    "%",
	LeftBitShift:                  "<<",
	RightBitShift:                 ">>",
	LessThan:                      "<",
	GreaterThan:                   ">",
	LessThanOrEqualTo:             "<=",
	GreaterThanOrEqualTo:          ">=",
	EqualTo:                       "==",
	NotEqualTo:                    "!=",
	BitwiseXor:                    "^",
	BitwiseOr:                     "|",
	LogicalAnd:                    "&&",
	LogicalOr:                     "||",
	QuestionMark:                  "?",
	Colon:                         ":",
	DoubleColon:                   "::",
	Semicolon:                     ";",
	Ellipsis:                      "...",
	EqualsSign:                    "=",
	MultiplyAssign:                "*=",
	DivideAssign:                  "/=",
	ModuloAssign:                  "%=",
	AddAssign:                     "+=",
	SubtractAssign:                "-=",
	LeftBitShiftAssign:            "<<=",
	RightBitShiftAssign:           ">>=",
	BitwiseAndAssign:              "&=",
	BitwiseXorAssign:              "^=",
	BitwiseOrAssign:               "|=",
	Comma:                         ",",
	Pound:                         "#",
	DoublePound:                   "##",
}

func (p Punctuator) String() string {
	if p >= 0 && p < punctuatorCount {
		return punctuatorNames[p]
	}
	return fmt.Sprintf("Punctuator(%d)", int(p))
}

// Spelling returns the source text of the punctuator, e.g. "<<=".
func (p Punctuator) Spelling() string {
	if p >= 0 && p < punctuatorCount {
		return punctuatorSpellings[p]
	}
	return ""
}

// Punctuators returns every member of the catalog in declaration order.
func Punctuators() []Punctuator {
	out := make([]Punctuator, 0, punctuatorCount)
	for p := Punctuator(0); p < punctuatorCount; p++ {
		out = append(out, p)
	}
	return out
}
