package scriptlint

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the native encoding of the game scripts.
var DefaultEncoding encoding.Encoding = japanese.ShiftJIS

// LookupEncoding finds the encoding for name. Besides the WHATWG encoding
// labels it knows the common short names of the Japanese encodings.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sjis", "shift-jis", "shift_jis", "shiftjis", "cp932", "ms932":
		return japanese.ShiftJIS, nil
	case "eucjp", "euc-jp", "euc_jp":
		return japanese.EUCJP, nil
	case "jis", "iso-2022-jp":
		return japanese.ISO2022JP, nil
	case "utf8", "utf-8":
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("encoding '%s': %w", name, err)
	}
	return enc, nil
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		enc = DefaultEncoding
	}
	return transform.NewReader(r, enc.NewDecoder())
}
