package oklchtheme

import (
	"regexp"
	"strings"
)

// DefaultSynonymFamilies are palette families that alias each other's values.
// In the bundled theme zinc-50 and neutral-50 are the same color.
var DefaultSynonymFamilies = []string{"zinc", "neutral"}

// DefaultSynonymShade is the shade shared by the default synonym families.
const DefaultSynonymShade = "50"

// SynonymPolicy unifies provenance comments for theme names that share a
// value. The family used most often in the output wins, and every exact
// comment for the shade in any listed family is rewritten to the winner.
type SynonymPolicy struct {
	Families []string // ties go to the earlier family
	Shade    string
}

// DefaultSynonymPolicy returns the zinc/neutral -50 policy.
func DefaultSynonymPolicy() SynonymPolicy {
	return SynonymPolicy{
		Families: append([]string(nil), DefaultSynonymFamilies...),
		Shade:    DefaultSynonymShade,
	}
}

// Winner returns the family with the most whole-word occurrences in css.
func (p SynonymPolicy) Winner(css string) (string, bool) {
	if len(p.Families) == 0 {
		return "", false
	}

	winner, best := p.Families[0], -1
	for _, family := range p.Families {
		n := len(regexp.MustCompile(`\b` + regexp.QuoteMeta(family) + `\b`).FindAllStringIndex(css, -1))
		if n > best {
			winner, best = family, n
		}
	}
	return winner, true
}

// Apply rewrites the shade comments of every listed family to the winner.
func (p SynonymPolicy) Apply(css string) string {
	winner, ok := p.Winner(css)
	if !ok || p.Shade == "" {
		return css
	}

	quoted := make([]string, len(p.Families))
	for i, f := range p.Families {
		quoted[i] = regexp.QuoteMeta(f)
	}
	comment := regexp.MustCompile(`/\* --color-(` + strings.Join(quoted, "|") + `)-` + regexp.QuoteMeta(p.Shade) + ` \*/`)

	return comment.ReplaceAllLiteralString(css, "/* --color-"+winner+"-"+p.Shade+" */")
}
