package scriptlint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxLineChars is the number of characters the screen can show in one
// rendered line of a dialog box.
const DefaultMaxLineChars = 23

// Character classes of the rules. They match Unicode text: whitespace
// includes \v, the information separators U+001C-U+001F and all space
// separators like the ideographic space U+3000, digits include full-width
// digits.
const (
	ws    = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`
	digit = `\p{Nd}`
	word  = `[\p{L}\p{N}\p{Mn}_]`
)

var (
	slashRgx           = regexp.MustCompile(`\\([^n]|$)`)
	codeRgx            = regexp.MustCompile(`&.|\$.`)
	highlightRgx       = regexp.MustCompile(`\$` + digit + `(.*?)\$` + digit)
	highlightStartRgx  = regexp.MustCompile(`(.+?)\$[0-6]`)
	reinaRgx           = regexp.MustCompile(`(.*)&d`)
	segmentSplitRgx    = regexp.MustCompile(`\\n|&` + word)
	markerRgx          = regexp.MustCompile(`\$` + digit)
	newlineSpaceRgx    = regexp.MustCompile(`\\n(\$` + digit + `)?` + ws)
	punctInHLRgx       = regexp.MustCompile(`\$.*[.?!]\$` + digit)
	spaceBeforePuncRgx = regexp.MustCompile(ws + `\$` + digit + `[.?!]`)
	dialogHLRgx        = regexp.MustCompile(`(.*)&p.*\$`)
	dialogRgx          = regexp.MustCompile(`(.*)&p`)
	pointerSpaceRgx    = regexp.MustCompile(`&.` + ws)
	doubleSpaceHLRgx   = regexp.MustCompile(` \$` + digit + ` ([^\\]|$)`)
)

var (
	ruleBackslash = &Rule{
		Name:    "backslash",
		Summary: `Backslash not followed by n, \n is the only escape`,
		Check:   checkBackslash,
	}
	rulePointers = &Rule{
		Name:    "pointers",
		Summary: "Control codes (& and $) must be the same as in the original line",
		Check:   checkPointers,
	}
	ruleHighlightWidth = &Rule{
		Name:    "highlight-width",
		Summary: "Text between two $ highlight markers must have even byte width",
		Check:   checkHighlightWidth,
	}
	ruleReinaOffset = &Rule{
		Name:    "reina-offset",
		Summary: "Text before &d must have even byte width",
		Check:   checkReinaOffset,
	}
	ruleHighlightOffset = &Rule{
		Name:    "highlight-offset",
		Summary: "$ highlight markers must start on an even byte",
		Check:   checkHighlightOffset,
	}
	ruleLineLength = &Rule{
		Name:    "line-length",
		Summary: "Rendered lines must not exceed the maximum number of characters",
		Check:   checkLineLength,
	}
	ruleNewlineSpace = &Rule{
		Name:    "newline-space",
		Summary: `No whitespace after \n`,
		Check:   countHits(newlineSpaceRgx, "Space after newline on line"),
	}
	ruleHighlightPunct = &Rule{
		Name:    "highlight-punct",
		Summary: "Punctuation marks do not belong into highlights",
		Check:   countHits(punctInHLRgx, "Punctuation in highlight in line"),
	}
	rulePunctSpace = &Rule{
		Name:    "punct-space",
		Summary: "No whitespace before a highlight marker followed by punctuation",
		Check:   countHits(spaceBeforePuncRgx, "Space before punctuation in line"),
	}
	ruleDialogOffset = &Rule{
		Name:    "dialog-offset",
		Summary: "Text before &p must have even byte width when highlights follow",
		Check:   checkDialogOffset,
	}
	rulePointerSpace = &Rule{
		Name:    "pointer-space",
		Summary: "No whitespace after a pointer code",
		Check:   countHits(pointerSpaceRgx, "Space after pointer in line"),
	}
	ruleHighlightDoubleSpace = &Rule{
		Name:    "highlight-double-space",
		Summary: "No spaces on both sides of a highlight marker",
		Check:   countHits(doubleSpaceHLRgx, "Double space around highlight on line"),
	}
	ruleDoubleSpace = &Rule{
		Name:    "double-space",
		Summary: "No two consecutive spaces",
		Check:   checkDoubleSpace,
	}
)

var registry = []*Rule{
	ruleBackslash,
	rulePointers,
	ruleHighlightWidth,
	ruleReinaOffset,
	ruleHighlightOffset,
	ruleLineLength,
	ruleNewlineSpace,
	ruleHighlightPunct,
	rulePunctSpace,
	ruleDialogOffset,
	rulePointerSpace,
	ruleHighlightDoubleSpace,
	ruleDoubleSpace,
}

func countHits(rgx *regexp.Regexp, msg string) CheckFunc {
	return func(_ *Linter, tr, _ string) (hits []Hit) {
		for range rgx.FindAllStringIndex(tr, -1) {
			hits = append(hits, Hit{Message: msg})
		}
		return hits
	}
}

func checkBackslash(_ *Linter, tr, _ string) []Hit {
	if slashRgx.MatchString(tr) {
		return []Hit{{Message: "Backslash without an n found on line"}}
	}
	return nil
}

func checkPointers(_ *Linter, tr, orig string) (hits []Hit) {
	ocs := codeRgx.FindAllString(orig, -1)
	tcs := codeRgx.FindAllString(tr, -1)
	if len(ocs) != len(tcs) {
		return []Hit{{Message: "Incorrect number of pointers on line"}}
	}
	for i, oc := range ocs {
		if tc := tcs[i]; tc != oc {
			hits = append(hits, Hit{
				Message: "Mismatch of pointers on line",
				Details: []string{
					"Found   : " + tc,
					"Expected: " + oc,
				},
			})
		}
	}
	return hits
}

// oddGroups reports a hit for each match of rgx where the first group has an
// odd byte width.
func oddGroups(rgx *regexp.Regexp, tr, msg string) (hits []Hit) {
	for _, m := range rgx.FindAllStringSubmatch(tr, -1) {
		if ByteWidth(m[1])%2 == 1 {
			hits = append(hits, Hit{Message: msg})
		}
	}
	return hits
}

func checkHighlightWidth(_ *Linter, tr, _ string) []Hit {
	return oddGroups(highlightRgx, tr, "Between $ is odd on line")
}

func checkReinaOffset(_ *Linter, tr, _ string) []Hit {
	return oddGroups(reinaRgx, tr, "&d start spacing is odd on line")
}

func checkHighlightOffset(_ *Linter, tr, _ string) []Hit {
	return oddGroups(highlightStartRgx, tr, "$ start spacing is odd on line")
}

func checkLineLength(lnt *Linter, tr, _ string) (hits []Hit) {
	limit := lnt.maxLineChars()
	for _, seg := range segmentSplitRgx.Split(tr, -1) {
		seg = strings.TrimFunc(markerRgx.ReplaceAllString(seg, ""), isSpace)
		if utf8.RuneCountInString(seg) > limit {
			hits = append(hits, Hit{
				Message: "Too long text on line",
				Details: []string{"-- " + seg},
			})
		}
	}
	return hits
}

// &p works on odd bytes as long as no highlight follows it.
func checkDialogOffset(_ *Linter, tr, _ string) (hits []Hit) {
	for range dialogHLRgx.FindAllStringIndex(tr, -1) {
		hits = append(hits, oddGroups(dialogRgx, tr, "&p start spacing is odd on line")...)
	}
	return hits
}

func checkDoubleSpace(_ *Linter, tr, _ string) []Hit {
	if strings.Contains(tr, "  ") {
		return []Hit{{Message: "Double space on line"}}
	}
	return nil
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
