package scriptlinting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/fractalqb/scriptlint"
)

type recorder struct {
	testing.TB
	errs  []string
	logs  []string
	fatal bool
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...any) { r.errs = append(r.errs, fmt.Sprint(args...)) }

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatal(args ...any) {
	r.Error(args...)
	r.fatal = true
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
	r.fatal = true
}

func TestError_clean(t *testing.T) {
	if n := Error(t, "clean.txt", "clean.orig.txt"); n != 0 {
		t.Errorf("%d issues in clean script", n)
	}
}

func TestConfig_issues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tr.txt"),
		[]byte("&dHi\nfine\n&p  there"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orig.txt"),
		[]byte("&pやあ\nいい\n&pそこ"), 0666))
	cfg := Config{Dir: dir, Encoding: unicode.UTF8}

	t.Run("error", func(t *testing.T) {
		rec := &recorder{}
		n := cfg.Error(rec, "tr.txt", "orig.txt")
		assert.Equal(t, 3, n)
		assert.Equal(t, []string{
			"tr.txt:1 Mismatch of pointers on line [pointers]",
			"tr.txt:3 Space after pointer in line [pointer-space]",
			"tr.txt:3 Double space on line [double-space]",
		}, rec.errs)
		pad := strings.Repeat(" ", len("tr.txt:1 "))
		assert.Equal(t, []string{
			pad + "Found   : &d",
			pad + "Expected: &p",
		}, rec.logs)
		assert.False(t, rec.fatal)
	})
	t.Run("fatal", func(t *testing.T) {
		rec := &recorder{}
		cfg := cfg
		cfg.Rules = []*scriptlint.Rule{}
		cfg.Fatal(rec, "tr.txt", "orig.txt")
		assert.False(t, rec.fatal)

		cfg.Rules = nil
		cfg.IssueLimit = 1
		cfg.Fatal(rec, "tr.txt", "orig.txt")
		assert.True(t, rec.fatal)
		assert.Len(t, rec.errs, 2)
	})
	t.Run("missing file", func(t *testing.T) {
		rec := &recorder{}
		cfg.Error(rec, "nope.txt", "orig.txt")
		assert.Len(t, rec.errs, 1)
	})
}
