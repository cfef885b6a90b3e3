package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opal-lang/clex/core/token"
	"github.com/opal-lang/clex/runtime/lexer"
	"github.com/opal-lang/clex/runtime/render"
	"github.com/opal-lang/clex/runtime/source"
	"github.com/opal-lang/clex/runtime/watch"
)

type globalFlags struct {
	debug   bool
	noColor bool
}

type lexFlags struct {
	preprocessing bool
	format        string
	encoding      string
	digest        bool
	stats         bool
	watch         bool
}

// streams are the reader and writers a command uses in place of os.Std*.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var g globalFlags
	s := streams{in: in, out: out, err: errOut}

	rootCmd := &cobra.Command{
		Use:           "clex",
		Short:         "Scan C source into preprocessing tokens and tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newLexCmd(&g, s),
		newKeywordCmd(s),
		newKeywordsCmd(s),
		newPunctuatorsCmd(s),
	)
	return rootCmd
}

func newLogger(w io.Writer, g *globalFlags) zerolog.Logger {
	level := zerolog.InfoLevel
	if g.debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    g.noColor || os.Getenv("NO_COLOR") != "",
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

func newLexCmd(g *globalFlags, s streams) *cobra.Command {
	var f lexFlags

	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the tokens of a C source file",
		Long: `Print the tokens of a C source file, or of stdin when the file is "-"
or omitted with piped input. Whitespace and unsupported literals are dropped
unless --pp is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := source.Stdin
			if len(args) == 1 {
				path = args[0]
			} else if s.in == os.Stdin && !source.HasPipedInput() {
				return fmt.Errorf("no input file given and nothing piped to stdin")
			}

			format, err := render.ParseFormat(f.format)
			if err != nil {
				return err
			}

			logger := newLogger(s.err, g)
			run := func() error {
				return runLex(s, path, format, f, useColor(s.out, g.noColor), logger)
			}

			if !f.watch {
				return run()
			}
			if path == source.Stdin {
				return fmt.Errorf("--watch needs a file, not stdin")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch.File(ctx, path, logger, run)
		},
	}

	cmd.Flags().BoolVar(&f.preprocessing, "pp", false, "Print preprocessing tokens, including whitespace")
	cmd.Flags().StringVar(&f.format, "format", string(render.FormatText), "Output format: text, json or cbor")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "Input encoding label, e.g. latin1 or shift_jis (default utf-8)")
	cmd.Flags().BoolVar(&f.digest, "digest", false, "Print a blake2b digest of the token stream instead of the tokens")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "Print per-kind token counts to stderr")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Re-scan whenever the file changes")

	return cmd
}

func runLex(s streams, path string, format render.Format, f lexFlags, color bool, logger zerolog.Logger) error {
	unit, err := source.Load(path, source.Options{Encoding: f.encoding, Stdin: s.in})
	if err != nil {
		return err
	}

	opts := []lexer.LexerOpt{lexer.WithLogger(logger.With().Str("file", unit.Name).Logger())}
	if f.stats {
		opts = append(opts, lexer.WithTelemetryBasic())
	}
	l := lexer.NewLexer(unit.Text, opts...)

	var records []render.Record
	if f.preprocessing {
		for tok := range l.All() {
			records = append(records, render.FromPPToken(tok))
		}
	} else {
		for tok := range l.Tokens() {
			records = append(records, render.FromToken(tok))
		}
	}
	logger.Debug().Str("file", unit.Name).Int("records", len(records)).Msg("scanned")

	if f.digest {
		digest, err := render.Digest(records)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(s.out, digest); err != nil {
			return err
		}
	} else if err := render.Write(s.out, records, render.Options{Format: format, Color: color}); err != nil {
		return fmt.Errorf("writing tokens: %w", err)
	}

	if f.stats {
		return writeStats(s.err, l.GetTokenTelemetry())
	}
	return nil
}

func writeStats(w io.Writer, telemetry map[token.PPKind]*lexer.TokenTelemetry) error {
	kinds := make([]token.PPKind, 0, len(telemetry))
	for k := range telemetry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, k := range kinds {
		if _, err := fmt.Fprintf(w, "%-28s %d\n", k, telemetry[k].Count); err != nil {
			return err
		}
	}
	return nil
}

func newKeywordCmd(s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "keyword <text>",
		Short: "Report whether text is a C keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if kw, ok := token.LookupKeyword(text); ok {
				_, err := fmt.Fprintf(s.out, "%s: keyword\n", kw)
				return err
			}

			if kw, ok := token.SuggestKeyword(text); ok {
				_, err := fmt.Fprintf(s.out, "%s: identifier (did you mean %q?)\n", text, kw.String())
				return err
			}
			_, err := fmt.Fprintf(s.out, "%s: identifier\n", text)
			return err
		},
	}
}

func newKeywordsCmd(s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the C keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kw := range token.Keywords() {
				if _, err := fmt.Fprintln(s.out, kw); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPunctuatorsCmd(s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "punctuators",
		Short: "List the C punctuators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range token.Punctuators() {
				if _, err := fmt.Fprintf(s.out, "%-4s %s\n", p.Spelling(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// useColor determines if color output should be used.
// Respects --no-color flag and NO_COLOR environment variable.
func useColor(w io.Writer, noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
