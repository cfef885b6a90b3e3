// Package render writes token streams for people and for other programs:
// an aligned, optionally colored text listing, JSON lines, or canonical
// CBOR. It also computes a stable digest of a stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/opal-lang/clex/core/token"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + ColorReset
}

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatCBOR}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (want text, json or cbor)", name)
}

// Record is the serialized form shared by preprocessing tokens and tokens.
type Record struct {
	Kind  string `json:"kind" cbor:"1,keyasint"`
	Value string `json:"value,omitempty" cbor:"2,keyasint,omitempty"`
	Start int    `json:"start" cbor:"3,keyasint"`
	End   int    `json:"end" cbor:"4,keyasint"`
}

// FromPPToken converts a preprocessing token.
func FromPPToken(t token.PPToken) Record {
	r := Record{Kind: t.Kind.String(), Start: t.Start, End: t.End}
	switch t.Kind {
	case token.PPWhitespace, token.PPNonWhiteSpaceCharacter:
		r.Value = string(t.Char)
	case token.PPIdentifier, token.PPStringLiteral:
		r.Value = t.Text
	case token.PPPunctuator:
		r.Value = t.Punct.String()
	}
	return r
}

// FromToken converts a translation token.
func FromToken(t token.Token) Record {
	r := Record{Kind: t.Kind.String(), Start: t.Start, End: t.End}
	switch t.Kind {
	case token.KeywordToken:
		r.Value = t.Keyword.String()
	case token.IdentifierToken, token.StringLiteralToken:
		r.Value = t.Text
	case token.PunctuatorToken:
		r.Value = t.Punct.String()
	}
	return r
}

// Options controls Write.
type Options struct {
	Format Format
	Color  bool // text format only
}

// Write renders records to w in the selected format.
func Write(w io.Writer, records []Record, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, records, opts.Color)
	case FormatJSON:
		return writeJSON(w, records)
	case FormatCBOR:
		data, err := MarshalCBOR(records)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

func kindColor(kind string) string {
	switch kind {
	case "Keyword":
		return ColorBlue
	case "Identifier":
		return ColorCyan
	case "Punctuator":
		return ColorYellow
	case "Whitespace":
		return ColorGray
	case "NonWhiteSpaceCharacter":
		return ColorRed
	default:
		return ColorGreen
	}
}

func writeText(w io.Writer, records []Record, useColor bool) error {
	for _, r := range records {
		span := fmt.Sprintf("%d-%d", r.Start, r.End)
		kind := Colorize(fmt.Sprintf("%-24s", r.Kind), kindColor(r.Kind), useColor)

		value := r.Value
		if r.Kind == "Whitespace" || r.Kind == "NonWhiteSpaceCharacter" {
			value = strconv.Quote(value)
		}

		if _, err := fmt.Fprintf(w, "%-10s %s %s\n", span, kind, value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("JSON encoding failed: %w", err)
		}
	}
	return nil
}

// MarshalCBOR produces a deterministic CBOR encoding of records. Equal
// streams always encode to identical bytes.
func MarshalCBOR(records []Record) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	if records == nil {
		records = []Record{}
	}

	data, err := encMode.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes a stream written by MarshalCBOR.
func UnmarshalCBOR(data []byte) ([]Record, error) {
	var records []Record
	if err := cbor.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("CBOR decoding failed: %w", err)
	}
	return records, nil
}

// Digest hashes the canonical CBOR encoding of records.
// Returns hex-encoded hash: "blake2b:a3f8b2c1d4e5f6a7..."
func Digest(records []Record) (string, error) {
	data, err := MarshalCBOR(records)
	if err != nil {
		return "", fmt.Errorf("failed to serialize tokens for digest: %w", err)
	}

	hasher, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := hasher.Write(data); err != nil {
		return "", err
	}

	return fmt.Sprintf("blake2b:%x", hasher.Sum(nil)), nil
}
