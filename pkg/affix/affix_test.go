package affix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testAffixDoc = `# test affix configuration
SET UTF-8
NOSUGGEST !

PFX A Y 1
PFX A 0 re .

PFX B N 1
PFX B 0 un .

SFX N Y 1
SFX N 0 en .

SFX S Y 2
SFX S y ies [^aeiou]y
SFX S 0 s [aeiou]y
`

func loadTestAffix(t *testing.T) *Affix {
	t.Helper()
	a := New()
	if err := a.Load(testAffixDoc); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return a
}

// Expansion order is part of the contract: root first, then singles in flag
// order with variants in registration order, cross products last.
func TestCreateAffixedWordsOrdering(t *testing.T) {
	a := loadTestAffix(t)

	testCases := []struct {
		root  string
		flags string
		want  []string
	}{
		{"xxx", "A", []string{"xxx", "rexxx"}},
		{"xxx", "N", []string{"xxx", "xxxen"}},
		{"xxx", "AN", []string{"xxx", "rexxx", "xxxen", "rexxxen"}},
		{"xxx", "NA", []string{"xxx", "xxxen", "rexxx", "rexxxen"}},
	}

	for _, tc := range testCases {
		t.Run(tc.root+"/"+tc.flags, func(t *testing.T) {
			got := a.CreateAffixedWords(tc.root, tc.flags)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CreateAffixedWords(%q, %q) mismatch (-want +got):\n%s", tc.root, tc.flags, diff)
			}
		})
	}
}

func TestCreateAffixedWordsEmptyFlags(t *testing.T) {
	a := loadTestAffix(t)
	got := a.CreateAffixedWords("xxx", "")
	if diff := cmp.Diff([]string{"xxx"}, got); diff != "" {
		t.Errorf("empty flagstring mismatch (-want +got):\n%s", diff)
	}
}

// Flags without registered rules are common in real dictionaries and must
// contribute nothing instead of erroring.
func TestCreateAffixedWordsUnknownFlag(t *testing.T) {
	a := loadTestAffix(t)

	if got := a.CreateAffixedWords("xxx", "Z"); len(got) != 1 || got[0] != "xxx" {
		t.Errorf("unknown flag should yield only the root, got %v", got)
	}
	got := a.CreateAffixedWords("xxx", "ZA")
	if diff := cmp.Diff([]string{"xxx", "rexxx"}, got); diff != "" {
		t.Errorf("unknown flag mixed with known mismatch (-want +got):\n%s", diff)
	}
}

// Variants with mutually exclusive conditions: only the matching one fires.
func TestCreateAffixedWordsConditions(t *testing.T) {
	a := loadTestAffix(t)

	testCases := []struct {
		root string
		want []string
	}{
		{"try", []string{"try", "tries"}},
		{"fly", []string{"fly", "flies"}},
		{"play", []string{"play", "plays"}},
		{"walk", []string{"walk"}},
	}

	for _, tc := range testCases {
		t.Run(tc.root, func(t *testing.T) {
			got := a.CreateAffixedWords(tc.root, "S")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CreateAffixedWords(%q, \"S\") mismatch (-want +got):\n%s", tc.root, diff)
			}
		})
	}
}

// B is declared non-cross-product; it may fire alone but never compound.
func TestCreateAffixedWordsNoCrossProduct(t *testing.T) {
	a := loadTestAffix(t)

	got := a.CreateAffixedWords("xxx", "BN")
	want := []string{"xxx", "unxxx", "xxxen"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("non-combinable flags mismatch (-want +got):\n%s", diff)
	}
}

func TestNoSuggestFlag(t *testing.T) {
	a := loadTestAffix(t)

	if got := a.NoSuggestFlag(); got != "!" {
		t.Errorf("NoSuggestFlag: want %q, got %q", "!", got)
	}
	if !a.IsNoSuggest("A!N") {
		t.Error("IsNoSuggest should detect the token inside a flag string")
	}
	if a.IsNoSuggest("AN") {
		t.Error("IsNoSuggest should be false without the token")
	}
}
