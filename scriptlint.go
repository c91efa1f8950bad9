package scriptlint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
)

// Roles of the scripts, used in error messages
const (
	Translated = "translated"
	Original   = "original"
)

// IssueFunc is called for each issue found by a [Linter].
type IssueFunc func(is *Issue) (abort bool)

// Linter runs the rules over the line pairs of a translated and an original
// script. A zero value is valid for use and can be reused for more than one
// pair of scripts. It must not be used concurrently.
type Linter struct {
	// Rules to apply to each line pair. If Rules is nil, DefaultRules() are
	// used.
	Rules []*Rule
	// Maximum number of characters of a rendered line. If MaxLineChars == 0
	// DefaultMaxLineChars is used.
	MaxLineChars int
	// Specifies the number of issues after which linting is aborted. If
	// IssueLimit == 0, do not abort.
	IssueLimit int
	// OnIssue is called on each issue
	OnIssue IssueFunc
	// Encoding of script files. If nil, DefaultEncoding is used.
	Encoding encoding.Encoding
	// Log receives diagnostic messages. If nil, nothing is logged.
	Log *zap.Logger
}

// IssueCount is the error returned by the command line tool when it is asked
// to fail on issues.
type IssueCount int

func (ic IssueCount) Error() string {
	return fmt.Sprintf("%d issues", ic)
}

// ScriptError is a read error of the translated or original script.
type ScriptError struct {
	Script string
	Line   int
	err    error
}

func (e ScriptError) Error() string {
	return fmt.Sprintf("%s %d:%s", e.Script, e.Line, e.err)
}

func (e ScriptError) Unwrap() error { return e.err }

func (lnt *Linter) rules() []*Rule {
	if lnt.Rules == nil {
		return registry
	}
	return lnt.Rules
}

func (lnt *Linter) maxLineChars() int {
	if lnt.MaxLineChars <= 0 {
		return DefaultMaxLineChars
	}
	return lnt.MaxLineChars
}

func (lnt *Linter) log() *zap.Logger {
	if lnt.Log == nil {
		return zap.NewNop()
	}
	return lnt.Log
}

// Check applies the rules to the translated and original text of one line.
// Line is the 1-based line number used for the issues.
func (lnt *Linter) Check(line int, translated, original string) (issues []Issue) {
	for _, r := range lnt.rules() {
		for _, h := range r.Check(lnt, translated, original) {
			issues = append(issues, Issue{
				Line:    line,
				Rule:    r.Name,
				Message: h.Message,
				Details: h.Details,
			})
		}
	}
	return issues
}

// Readers lints the translated script against the original script, both
// already decoded to UTF-8. It returns the number of detected issues.
func (lnt *Linter) Readers(translated, original io.Reader) (issues int, err error) {
	log := lnt.log()
	trd := newScriptReader(Translated, translated)
	ord := newScriptReader(Original, original)
	var tl, ol string
	for {
		if tl, err = trd.next(); err != nil {
			return issues, err
		}
		if ol, err = ord.next(); err != nil {
			return issues, err
		}
		if trd.eof && ord.eof {
			break
		}
		lno := max(trd.lno, ord.lno)
		found := lnt.Check(lno, tl, ol)
		if len(found) > 0 {
			log.Debug("line has issues", zap.Int("line", lno), zap.Int("issues", len(found)))
		}
		for i := range found {
			issues++
			if lnt.OnIssue != nil && lnt.OnIssue(&found[i]) {
				log.Debug("linting aborted", zap.Int("line", lno))
				return issues, nil
			}
			if lnt.IssueLimit > 0 && issues >= lnt.IssueLimit {
				log.Debug("issue limit reached", zap.Int("limit", lnt.IssueLimit))
				return issues, nil
			}
		}
	}
	log.Debug("linted scripts",
		zap.Int("translated-lines", trd.lno),
		zap.Int("original-lines", ord.lno),
		zap.Int("issues", issues),
	)
	if trd.lno != ord.lno {
		log.Warn("scripts differ in number of lines",
			zap.Int("translated-lines", trd.lno),
			zap.Int("original-lines", ord.lno),
		)
	}
	return issues, nil
}

func (lnt *Linter) Strings(translated, original string) (int, error) {
	return lnt.Readers(
		strings.NewReader(translated),
		strings.NewReader(original),
	)
}

// Files lints the script files decoding them with the linter's encoding.
func (lnt *Linter) Files(translated, original string) (int, error) {
	tf, err := os.Open(translated)
	if err != nil {
		return 0, fmt.Errorf("%s script: %w", Translated, err)
	}
	defer tf.Close()
	of, err := os.Open(original)
	if err != nil {
		return 0, fmt.Errorf("%s script: %w", Original, err)
	}
	defer of.Close()
	lnt.log().Info("lint scripts",
		zap.String(Translated, translated),
		zap.String(Original, original),
	)
	return lnt.Readers(decode(tf, lnt.Encoding), decode(of, lnt.Encoding))
}
