/*
Package affix parses Hunspell-style affix definitions and expands root words
into every spelling the rules derive from them.

An affix document names transformation rules grouped by single-character flag
tokens. A dictionary entry like "walk/N" refers to those tokens: every rule
registered under N that matches "walk" produces a derived spelling. The
package keeps rules in registration order so expansion output is
deterministic and directly testable.
*/
package affix

import "strings"

// Kind tells which end of a root word a rule transforms.
type Kind int

const (
	// Prefix rules prepend their add string to the root.
	Prefix Kind = iota
	// Suffix rules append their add string to the root.
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "PFX"
	}
	return "SFX"
}

// Variant is a single strip/add/condition alternative of a rule. A flag can
// carry several variants with mutually exclusive conditions; non-matching
// variants contribute nothing.
type Variant struct {
	Strip     string
	Add       string
	Condition string

	cond condition
}

// Rule groups every variant registered under one flag token.
type Rule struct {
	Flag         string
	Kind         Kind
	CrossProduct bool
	Variants     []Variant
}

// Affix holds a parsed affix configuration: rules indexed by flag token plus
// the global settings the document declares.
type Affix struct {
	rules         map[string]*Rule
	noSuggestFlag string
}

// New returns an empty affix configuration. Rules are added with Load.
func New() *Affix {
	return &Affix{rules: make(map[string]*Rule)}
}

// NoSuggestFlag returns the flag token marking entries as accepted but never
// suggested, or "" when the document declared none.
func (a *Affix) NoSuggestFlag() string {
	return a.noSuggestFlag
}

// IsNoSuggest reports whether a flag string carries the nosuggest token.
func (a *Affix) IsNoSuggest(flags string) bool {
	return a.noSuggestFlag != "" && strings.Contains(flags, a.noSuggestFlag)
}

// Rule returns the rule registered under a flag token, or nil.
func (a *Affix) Rule(flag string) *Rule {
	return a.rules[flag]
}

// RuleCount returns the number of registered flag tokens.
func (a *Affix) RuleCount() int {
	return len(a.rules)
}

// matches reports whether a variant can fire on root for the given kind: the
// condition holds at the affected end and the strip text is actually there.
func (v *Variant) matches(root string, k Kind) bool {
	if !v.cond.matches(root, k) {
		return false
	}
	if v.Strip == "" {
		return true
	}
	if k == Suffix {
		return strings.HasSuffix(root, v.Strip)
	}
	return strings.HasPrefix(root, v.Strip)
}

// apply produces the derived spelling. Callers must have checked matches.
func (v *Variant) apply(root string, k Kind) string {
	if k == Suffix {
		return root[:len(root)-len(v.Strip)] + v.Add
	}
	return v.Add + root[len(v.Strip):]
}

// CreateAffixedWords expands a root word under the flags it carries.
//
// The root itself always comes first. Then, for each flag in the order it
// appears in flags and each variant in registration order, every matching
// variant contributes one spelling. When a prefix and a suffix rule both
// fired and both are cross-product, the compounded spelling follows last,
// again in flag order. Unknown flags contribute nothing. Duplicates are not
// removed here; the dictionary's set insertion handles that.
func (a *Affix) CreateAffixedWords(root, flags string) []string {
	words := []string{root}
	if flags == "" {
		return words
	}

	var prefixes, suffixes []*Variant
	for _, f := range flags {
		rule := a.rules[string(f)]
		if rule == nil {
			continue
		}
		for i := range rule.Variants {
			v := &rule.Variants[i]
			if !v.matches(root, rule.Kind) {
				continue
			}
			words = append(words, v.apply(root, rule.Kind))
			if rule.CrossProduct {
				if rule.Kind == Prefix {
					prefixes = append(prefixes, v)
				} else {
					suffixes = append(suffixes, v)
				}
			}
		}
	}

	// Cross products: both ends transformed, conditions already checked
	// against the unmodified root.
	for _, p := range prefixes {
		for _, s := range suffixes {
			if len(p.Strip)+len(s.Strip) > len(root) {
				continue
			}
			mid := root[len(p.Strip):]
			mid = mid[:len(mid)-len(s.Strip)]
			words = append(words, p.Add+mid+s.Add)
		}
	}
	return words
}
