package oklchtheme

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"
)

// anchorDeclarations is prepended to every theme source so that pure white
// and pure black are always available as matches.
const anchorDeclarations = `
--color-white: oklch(100% 0 0);
--color-black: oklch(0% 0 0);
`

// declarationPattern extracts `--name: oklch(...)` custom property declarations.
var declarationPattern = regexp.MustCompile(`(--[\w-]+):\s*(oklch\([^)]+\))`)

//go:embed theme.css
var bundledTheme string

// BundledTheme returns the theme CSS compiled into the binary.
func BundledTheme() string {
	return bundledTheme
}

// Entry is a named custom property and its OKLCH value.
type Entry struct {
	Name  string // "--color-blue-500"
	Value string // raw declaration value: "oklch(62.3% 0.214 259.815)"
	Color Triple // parsed value, meaningful only when Valid
	Valid bool   // false if Value is not a parsable literal
}

// Theme is an ordered lookup table of theme entries.
// A Theme is never mutated after construction.
type Theme struct {
	entries []Entry
	index   map[string]int
}

// ParseTheme indexes every OKLCH custom property declared in source.
// A name declared twice keeps its first position and its last value.
func ParseTheme(source string) *Theme {
	t := &Theme{index: make(map[string]int)}

	for _, m := range declarationPattern.FindAllStringSubmatch(anchorDeclarations+source, -1) {
		name, value := m[1], m[2]
		color, ok := ParseTriple(value)
		entry := Entry{Name: name, Value: value, Color: color, Valid: ok}

		if i, exists := t.index[name]; exists {
			t.entries[i] = entry
			continue
		}
		t.index[name] = len(t.entries)
		t.entries = append(t.entries, entry)
	}

	return t
}

// Len returns the number of entries.
func (t *Theme) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in iteration order.
func (t *Theme) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the entry declared under name.
func (t *Theme) Lookup(name string) (Entry, bool) {
	i, ok := t.index[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Sorted returns a copy ordered by (name, raw value).
func (t *Theme) Sorted() *Theme {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Value < entries[j].Value
	})
	return newTheme(entries)
}

// Prioritize returns a copy where entries whose name contains substr come
// first. Relative order inside each group is kept.
func (t *Theme) Prioritize(substr string) *Theme {
	if substr == "" {
		return t
	}
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.Contains(entries[i].Name, substr) && !strings.Contains(entries[j].Name, substr)
	})
	return newTheme(entries)
}

func newTheme(entries []Entry) *Theme {
	t := &Theme{entries: entries, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		t.index[e.Name] = i
	}
	return t
}
