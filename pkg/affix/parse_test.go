package affix

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		expect func(*testing.T, *Affix)
		err    bool
	}{
		{
			name: "full document",
			doc:  testAffixDoc,
			expect: func(t *testing.T, a *Affix) {
				t.Helper()
				if want, got := 4, a.RuleCount(); want != got {
					t.Fatalf("RuleCount; want: %d, got: %d", want, got)
				}
				rule := a.Rule("S")
				if rule == nil {
					t.Fatal("Rule(S) missing")
				}
				if rule.Kind != Suffix || !rule.CrossProduct || len(rule.Variants) != 2 {
					t.Fatalf("Rule(S) parsed wrong: %+v", rule)
				}
				if v := rule.Variants[0]; v.Strip != "y" || v.Add != "ies" || v.Condition != "[^aeiou]y" {
					t.Fatalf("Rule(S) variant 0 parsed wrong: %+v", v)
				}
			},
		},
		{
			name: "strip and add zero markers",
			doc:  "SFX D Y 1\nSFX D 0 0 .\n",
			expect: func(t *testing.T, a *Affix) {
				t.Helper()
				v := a.Rule("D").Variants[0]
				if v.Strip != "" || v.Add != "" {
					t.Fatalf("zero markers should mean empty strings: %+v", v)
				}
			},
		},
		{
			name: "continuation class stripped from add",
			doc:  "SFX E Y 1\nSFX E 0 ing/X .\n",
			expect: func(t *testing.T, a *Affix) {
				t.Helper()
				if v := a.Rule("E").Variants[0]; v.Add != "ing" {
					t.Fatalf("continuation class should be cut: %+v", v)
				}
			},
		},
		{
			name: "unknown directive",
			doc:  "FROBNICATE yes\n",
			err:  true,
		},
		{
			name: "count larger than group",
			doc:  "SFX N Y 2\nSFX N 0 en .\n",
			err:  true,
		},
		{
			name: "count smaller than group",
			doc:  "SFX N Y 1\nSFX N 0 en .\nSFX N 0 s .\n",
			err:  true,
		},
		{
			name: "bad cross product field",
			doc:  "PFX A X 1\nPFX A 0 re .\n",
			err:  true,
		},
		{
			name: "unterminated character class",
			doc:  "SFX S Y 1\nSFX S y ies [^aeiou\n",
			err:  true,
		},
		{
			name: "nosuggest without token",
			doc:  "NOSUGGEST\n",
			err:  true,
		},
		{
			name: "flag as both prefix and suffix",
			doc:  "PFX A Y 1\nPFX A 0 re .\nSFX A Y 1\nSFX A 0 en .\n",
			err:  true,
		},
		{
			name: "comments and blanks only",
			doc:  "# nothing here\n\n   \n",
			expect: func(t *testing.T, a *Affix) {
				t.Helper()
				if a.RuleCount() != 0 {
					t.Fatalf("expected empty config, got %d rules", a.RuleCount())
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New()
			err := a.Load(test.doc)
			if test.err && err == nil {
				t.Fatal("Load: expected failure")
			}
			if !test.err && err != nil {
				t.Fatalf("Load: %v", err)
			}
			if test.err {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Load: want *ParseError, got %T", err)
				}
				if perr.Line < 1 {
					t.Fatalf("ParseError without a line number: %v", perr)
				}
			}
			if test.expect != nil {
				test.expect(t, a)
			}
		})
	}
}

// A failed load must leave the previous configuration wired in.
func TestLoadAtomic(t *testing.T) {
	a := loadTestAffix(t)

	if err := a.Load("GARBAGE directive\n"); err == nil {
		t.Fatal("Load: expected failure")
	}

	if a.RuleCount() != 4 {
		t.Fatalf("failed load clobbered rules: %d left", a.RuleCount())
	}
	if a.NoSuggestFlag() != "!" {
		t.Fatalf("failed load clobbered nosuggest flag: %q", a.NoSuggestFlag())
	}
	got := a.CreateAffixedWords("xxx", "A")
	if len(got) != 2 || got[1] != "rexxx" {
		t.Fatalf("rules unusable after failed load: %v", got)
	}
}
