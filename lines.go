package scriptlint

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineBytes limits the length of a single decoded script line.
const MaxLineBytes = 1024 * 1024

var bom = []byte("\uFEFF")

// lineScanner splits lines like bufio.ScanLines but also drops the byte order
// mark from the start of the first line.
type lineScanner struct {
	started bool
}

func (lsc *lineScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.ScanLines
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	skip := 0
	if !lsc.started {
		if !atEOF && len(data) < len(bom) && bytes.HasPrefix(bom, data) {
			return 0, nil, nil
		}
		if bytes.HasPrefix(data, bom) {
			skip = len(bom)
		}
	}
	if i := bytes.IndexByte(data[skip:], '\n'); i >= 0 {
		lsc.started = true
		i += skip
		return i + 1, dropCR(data[skip:i]), nil
	}
	if atEOF {
		lsc.started = true
		return len(data), dropCR(data[skip:]), nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1]
	}
	return data
}

// scriptReader reads the lines of one script and keeps track of the line
// number. After the end of the script it keeps returning empty lines.
type scriptReader struct {
	role  string
	scn   *bufio.Scanner
	split lineScanner
	lno   int
	eof   bool
}

func newScriptReader(role string, r io.Reader) *scriptReader {
	sr := &scriptReader{role: role, scn: bufio.NewScanner(r)}
	sr.scn.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineBytes)
	sr.scn.Split(sr.split.ScanLines)
	return sr
}

func (sr *scriptReader) next() (string, error) {
	if sr.eof {
		return "", nil
	}
	if !sr.scn.Scan() {
		sr.eof = true
		if err := sr.scn.Err(); err != nil {
			return "", ScriptError{Script: sr.role, Line: sr.lno + 1, err: err}
		}
		return "", nil
	}
	sr.lno++
	return sr.scn.Text(), nil
}
