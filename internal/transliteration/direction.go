package transliteration

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrNoInput     = errors.New("no input provided")
	ErrNoDirection = errors.New("no direction selected")
)

// Direction is one of the six fixed conversion labels.
type Direction string

const (
	CyrillicToLatin  Direction = "Cyrillic → Latin"
	CyrillicToArabic Direction = "Cyrillic → Arabic"
	LatinToCyrillic  Direction = "Latin → Cyrillic"
	ArabicToCyrillic Direction = "Arabic → Cyrillic"
	ArabicToLatin    Direction = "Arabic → Latin"
	LatinToArabic    Direction = "Latin → Arabic"
)

type Algorithm string

const (
	Forward Algorithm = "forward"
	Reverse Algorithm = "reverse"
)

// directions is the display order.
var directions = []Direction{
	CyrillicToLatin,
	CyrillicToArabic,
	LatinToCyrillic,
	ArabicToCyrillic,
	ArabicToLatin,
	LatinToArabic,
}

var aliases = map[string]Direction{
	"cyr-lat": CyrillicToLatin,
	"cyr-ar":  CyrillicToArabic,
	"lat-cyr": LatinToCyrillic,
	"ar-cyr":  ArabicToCyrillic,
	"ar-lat":  ArabicToLatin,
	"lat-ar":  LatinToArabic,
}

// binding pairs a direction with exactly one table; forward is nil for
// reverse directions and vice versa.
type binding struct {
	forward *Table
	reverse *ReverseTable
}

var bindings = map[Direction]binding{
	CyrillicToLatin:  {forward: cyrillicLatin},
	CyrillicToArabic: {forward: cyrillicArabic},
	LatinToCyrillic:  {reverse: latinCyrillic},
	ArabicToCyrillic: {reverse: arabicCyrillic},
	ArabicToLatin:    {forward: arabicLatin},
	LatinToArabic:    {reverse: latinArabic},
}

func Directions() []Direction {
	return slices.Clone(directions)
}

func Aliases() map[Direction]string {
	return lo.Invert(aliases)
}

// ParseDirection accepts a display label or a short alias such as "cyr-lat".
// Empty and unknown labels both report ErrNoDirection.
func ParseDirection(label string) (Direction, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrNoDirection
	}
	if d := Direction(label); d.Valid() {
		return d, nil
	}
	if d, ok := aliases[strings.ToLower(label)]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrNoDirection, label)
}

func (d Direction) Valid() bool {
	_, ok := bindings[d]
	return ok
}

func (d Direction) String() string { return string(d) }

func (d Direction) Algorithm() Algorithm {
	if bindings[d].reverse != nil {
		return Reverse
	}
	return Forward
}

// Apply runs the algorithm bound to d. Unknown directions return text as is.
func (d Direction) Apply(text string) string {
	b, ok := bindings[d]
	switch {
	case !ok:
		return text
	case b.reverse != nil:
		return ReverseTransliterate(text, b.reverse)
	default:
		return Transliterate(text, b.forward)
	}
}

// Row is a flattened table row used for listing tables.
type Row struct {
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Rows lists the table bound to d in authored order.
func (d Direction) Rows() []Row {
	b, ok := bindings[d]
	switch {
	case !ok:
		return nil
	case b.reverse != nil:
		return lo.Map(b.reverse.Pairs(), func(m Mapping, _ int) Row {
			return Row{Source: m.Key, Target: m.Value}
		})
	default:
		return lo.Map(b.forward.Pairs(), func(p Pair, _ int) Row {
			r := Row{Source: p.Source, Target: p.Entry.First()}
			if p.Entry.IsVariants() {
				r.Alternatives = p.Entry.Alternatives()
			}
			return r
		})
	}
}

// TableSize is the number of distinct keys in the table bound to d.
func (d Direction) TableSize() int {
	b, ok := bindings[d]
	switch {
	case !ok:
		return 0
	case b.reverse != nil:
		return b.reverse.Len()
	default:
		return b.forward.Len()
	}
}

// Resolve checks the two caller preconditions, text first, and returns the
// direction named by label. The only errors are ErrNoInput and ErrNoDirection.
func Resolve(text, label string) (Direction, error) {
	if text == "" {
		return "", ErrNoInput
	}
	return ParseDirection(label)
}

// Translate resolves label and applies it to text.
func Translate(text, label string) (string, error) {
	d, err := Resolve(text, label)
	if err != nil {
		return "", err
	}
	return d.Apply(text), nil
}

// TranslateText is Translate for callers that display a single string: the
// output, or the diagnostic message when a precondition is not met.
func TranslateText(text, label string) string {
	out, err := Translate(text, label)
	switch {
	case errors.Is(err, ErrNoInput):
		return ErrNoInput.Error()
	case errors.Is(err, ErrNoDirection):
		return ErrNoDirection.Error()
	}
	return out
}
