package transliteration

import "slices"

// Entry is the value side of a forward table row. It is either a single
// replacement or an ordered list of alternative spellings; only the first
// alternative is ever emitted.
type Entry struct {
	values []string
	multi  bool
}

func Single(s string) Entry {
	return Entry{values: []string{s}}
}

func Variants(first string, rest ...string) Entry {
	return Entry{values: append([]string{first}, rest...), multi: true}
}

func (e Entry) First() string {
	if len(e.values) == 0 {
		return ""
	}
	return e.values[0]
}

// IsVariants reports whether the entry was authored as a list of alternatives.
func (e Entry) IsVariants() bool {
	return e.multi
}

func (e Entry) Alternatives() []string {
	return slices.Clone(e.values)
}

// Pair is one authored row of a forward table.
type Pair struct {
	Source string
	Entry  Entry
}

// Mapping is one single-valued row: Key is replaced by Value.
type Mapping struct {
	Key   string
	Value string
}

// orderedMap keeps keys in first-insertion order. Writing an existing key
// replaces its value but keeps its position.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any](capacity int) orderedMap[V] {
	return orderedMap[V]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]V, capacity),
	}
}

func (m *orderedMap[V]) set(key string, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Table is an immutable forward substitution table.
type Table struct {
	name string
	rows orderedMap[Entry]
}

// NewTable builds a table from authored rows. A source that appears more than
// once takes the value of its last row.
func NewTable(name string, pairs []Pair) *Table {
	rows := newOrderedMap[Entry](len(pairs))
	for _, p := range pairs {
		rows.set(p.Source, p.Entry)
	}
	return &Table{name: name, rows: rows}
}

func (t *Table) Name() string { return t.name }

func (t *Table) Len() int { return len(t.rows.keys) }

func (t *Table) Lookup(source string) (Entry, bool) {
	e, ok := t.rows.values[source]
	return e, ok
}

// Pairs returns the rows in authored order, duplicates collapsed.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.rows.keys))
	for i, k := range t.rows.keys {
		out[i] = Pair{Source: k, Entry: t.rows.values[k]}
	}
	return out
}

// Invert derives a reverse table by swapping source and target of every
// single-valued row. Multi-variant rows are skipped. When several sources
// share a target, the one latest in authored order wins.
func (t *Table) Invert(name string) *ReverseTable {
	forward := make([]Mapping, 0, t.Len())
	for _, k := range t.rows.keys {
		e := t.rows.values[k]
		if e.IsVariants() {
			continue
		}
		forward = append(forward, Mapping{Key: k, Value: e.First()})
	}
	return NewReverseTable(name, forward)
}

// ReverseTable is an immutable single-valued table derived from forward rows.
// Keys may be longer than one character (or empty) when a forward row
// expanded; per-character substitution never reaches those keys.
type ReverseTable struct {
	name string
	rows orderedMap[string]
}

// NewReverseTable inverts forward mappings in order: for each Key → Value it
// writes Value → Key, so the last source sharing a target wins.
func NewReverseTable(name string, forward []Mapping) *ReverseTable {
	rows := newOrderedMap[string](len(forward))
	for _, m := range forward {
		rows.set(m.Value, m.Key)
	}
	return &ReverseTable{name: name, rows: rows}
}

func (t *ReverseTable) Name() string { return t.name }

func (t *ReverseTable) Len() int { return len(t.rows.keys) }

func (t *ReverseTable) Lookup(key string) (string, bool) {
	v, ok := t.rows.values[key]
	return v, ok
}

func (t *ReverseTable) Pairs() []Mapping {
	out := make([]Mapping, len(t.rows.keys))
	for i, k := range t.rows.keys {
		out[i] = Mapping{Key: k, Value: t.rows.values[k]}
	}
	return out
}
