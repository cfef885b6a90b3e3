// Package source loads translation units for scanning. It reads a file or
// stdin and transcodes legacy encodings to UTF-8, so that the scanner always
// receives the complete text in memory.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Unit is a loaded translation unit.
type Unit struct {
	Name string // file path, or "<stdin>"
	Text string // UTF-8 text
}

// Options controls Load.
type Options struct {
	// Encoding is a WHATWG encoding label such as "latin1" or "shift_jis".
	// Empty or "utf-8" leaves the input untouched.
	Encoding string

	// Stdin replaces os.Stdin when Path is "-".
	Stdin io.Reader
}

// Load reads path (or stdin for "-") and decodes it.
func Load(path string, opts Options) (*Unit, error) {
	var (
		name string
		data []byte
		err  error
	)

	if path == Stdin {
		name = "<stdin>"
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
	} else {
		name = path
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading file %s: %w", path, err)
		}
	}

	text, err := Decode(data, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Unit{Name: name, Text: text}, nil
}

// Decode converts data from the named encoding to UTF-8.
func Decode(data []byte, encoding string) (string, error) {
	label := strings.ToLower(strings.TrimSpace(encoding))
	if label == "" || label == "utf-8" || label == "utf8" {
		return string(data), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding %s input: %w", encoding, err)
	}
	return string(out), nil
}

// HasPipedInput detects if there's data piped to stdin
func HasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Pipes may not report a size, so only the mode is checked.
	return (stat.Mode() & os.ModeCharDevice) == 0
}
