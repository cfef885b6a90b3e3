package token

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Keyword is a C reserved word (ISO/IEC 9899:2024 6.4.1).
type Keyword int

const (
	KeywordAlignas Keyword = iota
	KeywordAlignof
	KeywordAuto
	KeywordBool
	KeywordBreak
	KeywordCase
	KeywordChar
	KeywordConst
	KeywordConstexpr
	KeywordContinue
	KeywordDefault
	KeywordDo
	KeywordDouble
	KeywordElse
	KeywordEnum
	KeywordExtern
	KeywordFalse
	KeywordFloat
	KeywordFor
	KeywordGoto
	KeywordIf
	KeywordInline
	KeywordInt
	KeywordLong
	KeywordNullptr
	KeywordRegister
	KeywordRestrict
	KeywordReturn
	KeywordShort
	KeywordSigned
	KeywordSizeof
	KeywordStatic
	KeywordStaticAssert
	KeywordStruct
	KeywordSwitch
	KeywordThreadLocal
	KeywordTrue
	KeywordTypedef
	KeywordTypeof
	KeywordTypeofUnqual
	KeywordUnion
	KeywordUnsigned
	KeywordVoid
	KeywordVolatile
	KeywordWhile

	// Underscore-prefixed spellings.
	KeywordUAlignas
	KeywordUAlignof
	KeywordUAtomic
	KeywordUBitInt
	KeywordUBool
	KeywordUComplex
	KeywordUDecimal128
	KeywordUDecimal32
	KeywordUDecimal64
	KeywordUGeneric
	KeywordUImaginary
	KeywordUNoreturn
	KeywordUStaticAssert
	KeywordUThreadLocal

	keywordCount
)

var keywordSpellings = [...]string{
	KeywordAlignas:       "alignas",
	KeywordAlignof:       "alignof",
	KeywordAuto:          "auto",
	KeywordBool:          "bool",
	KeywordBreak:         "break",
	KeywordCase:          "case",
	KeywordChar:          "char",
	KeywordConst:         "const",
	KeywordConstexpr:     "constexpr",
	KeywordContinue:      "continue",
	KeywordDefault:       "default",
	KeywordDo:            "do",
	KeywordDouble:        "double",
	KeywordElse:          "else",
	KeywordEnum:          "enum",
	KeywordExtern:        "extern",
	KeywordFalse:         "false",
	KeywordFloat:         "float",
	KeywordFor:           "for",
	KeywordGoto:          "goto",
	KeywordIf:            "if",
	KeywordInline:        "inline",
	KeywordInt:           "int",
	KeywordLong:          "long",
	KeywordNullptr:       "nullptr",
	KeywordRegister:      "register",
	KeywordRestrict:      "restrict",
	KeywordReturn:        "return",
	KeywordShort:         "short",
	KeywordSigned:        "signed",
	KeywordSizeof:        "sizeof",
	KeywordStatic:        "static",
	KeywordStaticAssert:  "static_assert",
	KeywordStruct:        "struct",
	KeywordSwitch:        "switch",
	KeywordThreadLocal:   "thread_local",
	KeywordTrue:          "true",
	KeywordTypedef:       "typedef",
	KeywordTypeof:        "typeof",
	KeywordTypeofUnqual:  "typeof_unqual",
	KeywordUnion:         "union",
	KeywordUnsigned:      "unsigned",
	KeywordVoid:          "void",
	KeywordVolatile:      "volatile",
	KeywordWhile:         "while",
	KeywordUAlignas:      "_Alignas",
	KeywordUAlignof:      "_Alignof",
	KeywordUAtomic:       "_Atomic",
	KeywordUBitInt:       "_BitInt",
	KeywordUBool:         "_Bool",
	KeywordUComplex:      "_Complex",
	KeywordUDecimal128:   "_Decimal128",
	KeywordUDecimal32:    "_Decimal32",
	KeywordUDecimal64:    "_Decimal64",
	KeywordUGeneric:      "_Generic",
	KeywordUImaginary:    "_Imaginary",
	KeywordUNoreturn:     "_Noreturn",
	KeywordUStaticAssert: "_Static_assert",
	KeywordUThreadLocal:  "_Thread_local",
}

// keywordTable is built once from keywordSpellings and never mutated.
var keywordTable = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for k := Keyword(0); k < keywordCount; k++ {
		m[keywordSpellings[k]] = k
	}
	return m
}()

// String returns the exact source spelling of the keyword.
func (k Keyword) String() string {
	if k >= 0 && k < keywordCount {
		return keywordSpellings[k]
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// LookupKeyword reports whether text is a reserved word. The comparison is
// exact and case-sensitive; a miss means text is a plain identifier.
func LookupKeyword(text string) (Keyword, bool) {
	k, ok := keywordTable[text]
	return k, ok
}

// Keywords returns the reserved-word table in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, 0, keywordCount)
	for k := Keyword(0); k < keywordCount; k++ {
		out = append(out, k)
	}
	return out
}

// SuggestKeyword returns the reserved word closest to text, for "did you
// mean" messages. It reports false when nothing is close enough.
func SuggestKeyword(text string) (Keyword, bool) {
	if text == "" {
		return 0, false
	}

	candidates := keywordSpellings[:]
	ranks := fuzzy.RankFindFold(text, candidates)
	if len(ranks) == 0 {
		// Typos with extra characters ("intt") only match in reverse.
		for _, spelling := range candidates {
			if fuzzy.MatchFold(spelling, text) {
				return keywordTable[spelling], true
			}
		}
		return 0, false
	}

	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return keywordTable[best.Target], true
}
