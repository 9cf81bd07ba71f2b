package transliteration

import (
	"testing"
	"unicode/utf8"
)

func FuzzApply(f *testing.F) {
	f.Add("Чӑваш чӗлхи, салам?")
	f.Add("سالام؟")
	f.Add("kaş Çovaş ts")
	f.Add("\xff\xfe")
	f.Add("")

	empty := NewTable("empty", nil)
	f.Fuzz(func(t *testing.T, s string) {
		for _, d := range Directions() {
			out := d.Apply(s)
			if utf8.ValidString(s) && !utf8.ValidString(out) {
				t.Fatalf("%s produced invalid UTF-8 from %q", d, s)
			}
		}
		if got := Transliterate(s, empty); got != s {
			t.Fatalf("empty table changed %q to %q", s, got)
		}
	})
}
