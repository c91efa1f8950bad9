package scriptlint

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// CheckFunc inspects one pair of translated and original lines. The lines
// come without line terminator.
type CheckFunc func(lnt *Linter, translated, original string) []Hit

// Rule is a single check of the rule engine.
type Rule struct {
	Name    string
	Summary string
	Check   CheckFunc
}

// Hit is a defect detected by a rule. Message is completed by the line number
// when the hit becomes an [Issue].
type Hit struct {
	Message string
	Details []string
}

// Issue is a [Hit] bound to the line of the script it was found in.
type Issue struct {
	// 1-based line number
	Line    int
	Rule    string
	Message string
	Details []string
}

// String renders the issue the way it is shown in the report, one line for
// the message and one line per detail.
func (is *Issue) String() string {
	var sb strings.Builder
	sb.WriteString(is.Message)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(is.Line))
	for _, d := range is.Details {
		sb.WriteByte('\n')
		sb.WriteString(d)
	}
	return sb.String()
}

// ErrUnknownRule is returned when a rule is looked up by a name that no rule
// has.
var ErrUnknownRule = errors.New("unknown rule")

// DefaultRules returns all rules in the order they are applied. The rules are
// copies, changing them does not affect the defaults.
func DefaultRules() []*Rule {
	res := make([]*Rule, len(registry))
	for i, r := range registry {
		res[i] = r.clone()
	}
	return res
}

// LookupRule returns a copy of the rule with the given name.
func LookupRule(name string) (*Rule, error) {
	for _, r := range registry {
		if r.Name == name {
			return r.clone(), nil
		}
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownRule, name)
}

// SelectRules returns copies of the default rules restricted to enable, if not empty,
// without the rules named in disable. The order of the default rules is kept.
func SelectRules(enable, disable []string) ([]*Rule, error) {
	use := make(map[string]bool)
	for _, n := range enable {
		if _, err := LookupRule(n); err != nil {
			return nil, err
		}
		use[n] = true
	}
	for _, n := range disable {
		if _, err := LookupRule(n); err != nil {
			return nil, err
		}
	}
	res := make([]*Rule, 0, len(registry))
	for _, r := range registry {
		if len(enable) > 0 && !use[r.Name] {
			continue
		}
		if slices.Contains(disable, r.Name) {
			continue
		}
		res = append(res, r.clone())
	}
	return res, nil
}

func (r *Rule) clone() *Rule {
	c := *r
	return &c
}
