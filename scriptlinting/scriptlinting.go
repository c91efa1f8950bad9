// Package scriptlinting supports linting script files in your Go tests.
//
// Example lints testdata/ep01.txt against testdata/ep01.orig.txt:
//
//	func TestEpisode1(t *testing.T) {
//		scriptlinting.Error(t, "ep01.txt", "ep01.orig.txt")
//	}
package scriptlinting

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/encoding"

	"github.com/fractalqb/scriptlint"
)

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

// Error lints the translated script against the original script with the
// default config. Each issue is reported with t.Error.
func Error(t testing.TB, translated, original string) int {
	return defaultConfig.Error(t, translated, original)
}

// Fatal is like Error but stops the test after linting if there were issues.
func Fatal(t testing.TB, translated, original string) {
	defaultConfig.Fatal(t, translated, original)
}

type Config struct {
	// Directory of the script files. Absolute file names are not affected.
	Dir        string
	Encoding   encoding.Encoding
	IssueLimit int
	// Rules to apply, nil means all rules.
	Rules      []*scriptlint.Rule
}

var defaultConfig = Config{
	Dir:        GoTestdataDir,
	IssueLimit: 0,
}

func (cfg Config) Error(t testing.TB, translated, original string) int {
	t.Helper()
	n, err := cfg.lint(t, translated, original)
	if err != nil {
		t.Error(err)
	}
	return n
}

func (cfg Config) Fatal(t testing.TB, translated, original string) {
	t.Helper()
	n, err := cfg.lint(t, translated, original)
	switch {
	case err != nil:
		t.Fatal(err)
	case n > 0:
		t.Fatalf("%s: %d issues", translated, n)
	}
}

func (cfg Config) path(file string) string {
	if cfg.Dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(cfg.Dir, file)
}

func (cfg Config) lint(t testing.TB, translated, original string) (int, error) {
	t.Helper()
	lnt := scriptlint.Linter{
		Rules:      cfg.Rules,
		IssueLimit: cfg.IssueLimit,
		Encoding:   cfg.Encoding,
		OnIssue:    IssueError(t, translated, false),
	}
	return lnt.Files(cfg.path(translated), cfg.path(original))
}

// IssueError returns an [scriptlint.IssueFunc] that reports issues to t. The
// details of an issue are logged with t.Log.
func IssueError(t testing.TB, hint string, abort bool) scriptlint.IssueFunc {
	if hint == "" {
		hint = "script"
	}
	return func(is *scriptlint.Issue) bool {
		t.Helper()
		lnstr := strconv.Itoa(is.Line)
		t.Errorf("%s:%s %s [%s]", hint, lnstr, is.Message, is.Rule)
		pad := strings.Repeat(" ", len(hint)+len(lnstr)+1)
		for _, d := range is.Details {
			t.Logf("%s %s", pad, d)
		}
		return abort
	}
}
