// File: lixenwraith/configfile/helper.go
package configfile

import (
	"strconv"
	"strings"
)

// DefaultMaxTokens is the number of tokens kept per line; extra tokens are dropped
const DefaultMaxTokens = 20

// isSpace matches the C locale whitespace set, not unicode.IsSpace
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpace returns s without its leading whitespace.
func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// isComment reports whether a line is blank or starts with '#' after leading whitespace.
func isComment(line string) bool {
	p := skipSpace(line)
	return p == "" || p[0] == '#'
}

// Tokenize splits a line into whitespace-delimited tokens, keeping at most max
// of them. Blank and comment lines yield no tokens. A non-positive max uses
// DefaultMaxTokens.
func Tokenize(line string, max int) []string {
	if max <= 0 {
		max = DefaultMaxTokens
	}
	if isComment(line) {
		return nil
	}

	tokens := make([]string, 0, 4)
	s := skipSpace(line)
	for s != "" && len(tokens) < max {
		end := 0
		for end < len(s) && !isSpace(s[end]) {
			end++
		}
		tokens = append(tokens, s[:end])
		s = skipSpace(s[end:])
	}
	return tokens
}

// parseUint parses an unsigned decimal token that fits in bits.
func parseUint(tok string, bits int) (uint64, bool) {
	v, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseHex parses a hexadecimal token with an optional 0x prefix.
func parseHex(tok string, bits int) (uint64, bool) {
	tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
	v, err := strconv.ParseUint(tok, 16, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// joinTokens joins tokens with single spaces and truncates the result to limit bytes.
func joinTokens(tokens []string, limit int) string {
	return truncate(strings.Join(tokens, " "), limit)
}
