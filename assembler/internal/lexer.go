package internal

import (
	"bufio"
	"io"
	"strings"

	"github.com/xiaobogaga/hackasm/util"
)

// Line is a cleaned, non-empty source line together with its 1-based line number
// in the original file.
type Line struct {
	Number int
	Text   string
}

// Clean removes a trailing `//` comment and surrounding blanks.
func Clean(raw string) string {
	if idx := strings.Index(raw, "//"); idx != -1 {
		raw = raw[:idx]
	}
	return util.TrimBlank(strings.TrimSuffix(raw, "\n"))
}

// Lex reads rd to the end and returns every line that still has content after
// cleaning. Order is preserved.
func Lex(rd io.Reader) ([]Line, error) {
	bfReader := bufio.NewReader(rd)
	var lines []Line
	number := 0
	for {
		raw, err := bfReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, makeIOErr("read source", err)
		}
		if len(raw) > 0 {
			number++
			if text := Clean(raw); text != "" {
				lines = append(lines, Line{Number: number, Text: text})
			}
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}
