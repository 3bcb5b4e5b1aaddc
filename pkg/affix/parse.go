package affix

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseError describes a malformed affix document. Line is 1-based.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("affix parse error at line %d: %s", e.Line, e.Msg)
}

// condElem matches one rune position of a condition pattern.
type condElem struct {
	any    bool
	negate bool
	set    string
}

// condition is an ordered rune-position pattern checked against the affected
// end of a root word. An empty condition always matches.
type condition []condElem

// parseCondition compiles a Hunspell condition: "." matches anything,
// "[abc]" a set, "[^abc]" a negated set, other runes literally. The pattern
// "." alone means no condition.
func parseCondition(s string) (condition, error) {
	if s == "." {
		return nil, nil
	}
	var c condition
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '.':
			c = append(c, condElem{any: true})
		case '[':
			j := i + 1
			negate := false
			if j < len(rs) && rs[j] == '^' {
				negate = true
				j++
			}
			start := j
			for j < len(rs) && rs[j] != ']' {
				j++
			}
			if j >= len(rs) || j == start {
				return nil, fmt.Errorf("unterminated or empty character class in %q", s)
			}
			c = append(c, condElem{negate: negate, set: string(rs[start:j])})
			i = j
		case ']':
			return nil, fmt.Errorf("unexpected ']' in %q", s)
		default:
			c = append(c, condElem{set: string(rs[i])})
		}
	}
	return c, nil
}

func (e *condElem) match(r rune) bool {
	if e.any {
		return true
	}
	return strings.ContainsRune(e.set, r) != e.negate
}

// matches checks the pattern against the start (prefix) or end (suffix) of
// the unmodified root word.
func (c condition) matches(root string, k Kind) bool {
	if len(c) == 0 {
		return true
	}
	rs := []rune(root)
	if len(rs) < len(c) {
		return false
	}
	off := 0
	if k == Suffix {
		off = len(rs) - len(c)
	}
	for i := range c {
		if !c[i].match(rs[off+i]) {
			return false
		}
	}
	return true
}

// Load parses an affix document and replaces the current configuration.
//
// The load is atomic: on any parse error the previous configuration stays
// untouched. Recognized directives are PFX/SFX rule groups, NOSUGGEST, and
// the ignored SET, TRY and WORDCHARS. Comment and blank lines are skipped;
// any other directive fails the load.
func (a *Affix) Load(text string) error {
	rules := make(map[string]*Rule)
	noSuggest := ""

	var lines []srcLine
	sc := bufio.NewScanner(strings.NewReader(text))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, srcLine{n, line})
	}

	for i := 0; i < len(lines); i++ {
		fields := strings.Fields(lines[i].text)
		switch fields[0] {
		case "SET", "TRY", "WORDCHARS":
			// Encoding and suggestion hints, nothing to expand here.
		case "NOSUGGEST":
			if len(fields) < 2 {
				return &ParseError{lines[i].n, "NOSUGGEST needs a flag token"}
			}
			noSuggest = fields[1]
		case "PFX", "SFX":
			consumed, err := parseRuleGroup(lines[i:], rules)
			if err != nil {
				return err
			}
			i += consumed - 1
		default:
			return &ParseError{lines[i].n, fmt.Sprintf("unknown directive %q", fields[0])}
		}
	}

	a.rules = rules
	a.noSuggestFlag = noSuggest
	log.Debugf("affix loaded: %d flags, nosuggest=%q", len(rules), noSuggest)
	return nil
}

// srcLine is a non-blank, non-comment document line with its 1-based number.
type srcLine struct {
	n    int
	text string
}

// parseRuleGroup parses a PFX/SFX header and its declared variant lines from
// the head of lines, registering the rule. It returns how many lines it
// consumed.
func parseRuleGroup(lines []srcLine, rules map[string]*Rule) (int, error) {
	head := strings.Fields(lines[0].text)
	if len(head) != 4 {
		return 0, &ParseError{lines[0].n, fmt.Sprintf("malformed %s header: want 4 fields, got %d", head[0], len(head))}
	}
	kind := Suffix
	if head[0] == "PFX" {
		kind = Prefix
	}
	flag := head[1]
	var cross bool
	switch head[2] {
	case "Y":
		cross = true
	case "N":
		cross = false
	default:
		return 0, &ParseError{lines[0].n, fmt.Sprintf("cross-product field must be Y or N, got %q", head[2])}
	}
	count, err := strconv.Atoi(head[3])
	if err != nil || count < 1 {
		return 0, &ParseError{lines[0].n, fmt.Sprintf("bad rule count %q", head[3])}
	}

	if prev, ok := rules[flag]; ok && prev.Kind != kind {
		return 0, &ParseError{lines[0].n, fmt.Sprintf("flag %q declared as both prefix and suffix", flag)}
	}

	var variants []Variant
	for v := 1; v <= count; v++ {
		if v >= len(lines) {
			return 0, &ParseError{lines[0].n, fmt.Sprintf("%s %s declares %d rules, document ends after %d", head[0], flag, count, v-1)}
		}
		fields := strings.Fields(lines[v].text)
		if len(fields) < 4 || fields[0] != head[0] || fields[1] != flag {
			return 0, &ParseError{lines[v].n, fmt.Sprintf("%s %s declares %d rules but line %d of the group does not match", head[0], flag, count, v)}
		}
		strip := fields[2]
		if strip == "0" {
			strip = ""
		}
		// Continuation classes after "/" carry morphology we do not model.
		add, _, _ := strings.Cut(fields[3], "/")
		if add == "0" {
			add = ""
		}
		condText := "."
		if len(fields) > 4 {
			condText = fields[4]
		}
		cond, err := parseCondition(condText)
		if err != nil {
			return 0, &ParseError{lines[v].n, err.Error()}
		}
		variants = append(variants, Variant{Strip: strip, Add: add, Condition: condText, cond: cond})
	}

	if prev, ok := rules[flag]; ok {
		prev.Variants = append(prev.Variants, variants...)
	} else {
		rules[flag] = &Rule{Flag: flag, Kind: kind, CrossProduct: cross, Variants: variants}
	}
	return count + 1, nil
}
