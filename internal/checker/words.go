package checker

import (
	"bufio"
	"errors"
	"io"
)

type skipMode int

const (
	skipNone skipMode = iota
	skipLetters
	skipAlnum
)

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// Words calls fn for every word of r in order. A word is a run of ASCII
// letters and apostrophes that does not start with an apostrophe. Runs
// longer than maxLen are dropped, as are runs of letters and digits that
// contain a digit; the character ending a dropped run is dropped with it.
// Anything else separates words. An error from fn stops the scan and is
// returned.
func Words(r io.Reader, maxLen int, fn func(word string) error) error {
	br := bufio.NewReader(r)
	word := make([]byte, 0, maxLen+1)
	skip := skipNone

	for {
		c, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch skip {
		case skipLetters:
			if !isLetter(c) {
				skip = skipNone
			}
			continue
		case skipAlnum:
			if !isLetter(c) && !isDigit(c) {
				skip = skipNone
			}
			continue
		}

		switch {
		case isLetter(c) || (c == '\'' && len(word) > 0):
			word = append(word, byte(c))
			if len(word) > maxLen {
				word = word[:0]
				skip = skipLetters
			}
		case isDigit(c):
			word = word[:0]
			skip = skipAlnum
		case len(word) > 0:
			if err := fn(string(word)); err != nil {
				return err
			}
			word = word[:0]
		}
	}

	if len(word) > 0 {
		return fn(string(word))
	}
	return nil
}
