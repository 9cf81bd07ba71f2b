// translit transliterates Chuvash text from the command line, or opens the
// terminal UI with `translit tui`.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jusunglee/chuvtranslit/internal/logger"
	"github.com/jusunglee/chuvtranslit/internal/transliteration"
	"github.com/jusunglee/chuvtranslit/internal/tui"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()
	os.Exit(exitCode(log, run(os.Args[1:], os.Stdin, os.Stdout)))
}

func exitCode(log *slog.Logger, err error) int {
	if err != nil {
		log.Error("fatal", "error", err)
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := ff.NewFlagSet("translit")
	var (
		direction = fs.StringLong("direction", "", "translation direction, label or alias ("+aliasList()+")")
		text      = fs.StringLong("text", "", "text to transliterate; read from stdin when empty")
		list      = fs.BoolLong("list", "list the supported directions")
		table     = fs.BoolLong("table", "print the substitution table bound to --direction")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("TRANSLIT")); err != nil {
		fmt.Fprintf(stdout, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if rest := fs.GetArgs(); len(rest) > 0 {
		if rest[0] != "tui" {
			return fmt.Errorf("unknown command %q", rest[0])
		}
		return tui.Run()
	}

	switch {
	case *list:
		printDirections(stdout)
		return nil
	case *table:
		d, err := transliteration.ParseDirection(*direction)
		if err != nil {
			return err
		}
		printTable(stdout, d)
		return nil
	}

	input := *text
	if input == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(b)
	}

	out, err := transliteration.Translate(input, *direction)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func aliasList() string {
	aliases := transliteration.Aliases()
	return strings.Join(lo.Map(transliteration.Directions(), func(d transliteration.Direction, _ int) string {
		return aliases[d]
	}), ", ")
}

func printDirections(w io.Writer) {
	aliases := transliteration.Aliases()
	for _, d := range transliteration.Directions() {
		fmt.Fprintf(w, "%-8s %-18s %-8s %d\n", aliases[d], d, d.Algorithm(), d.TableSize())
	}
}

func printTable(w io.Writer, d transliteration.Direction) {
	for _, row := range d.Rows() {
		fmt.Fprintf(w, "%q\t%q", row.Source, row.Target)
		if len(row.Alternatives) > 0 {
			fmt.Fprintf(w, "\t%q", row.Alternatives)
		}
		fmt.Fprintln(w)
	}
}
