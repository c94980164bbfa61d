// FILE: lixenwraith/configfile/helper_test.go
package configfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		max  int
		want []string
	}{
		{"KeyValue", "fullscreen true", 0, []string{"fullscreen", "true"}},
		{"LeadingWhitespace", " \t key_a 0026 1000", 0, []string{"key_a", "0026", "1000"}},
		{"MixedSeparators", "a\tb\vc\fd\re", 0, []string{"a", "b", "c", "d", "e"}},
		{"RunsCollapse", "a     b", 0, []string{"a", "b"}},
		{"TrailingWhitespace", "a b   ", 0, []string{"a", "b"}},
		{"Blank", "", 0, nil},
		{"WhitespaceOnly", " \t ", 0, nil},
		{"Comment", "# fullscreen true", 0, nil},
		{"IndentedComment", "   #x", 0, nil},
		{"HashInsideToken", "key#1 v#2", 0, []string{"key#1", "v#2"}},
		{"CustomMax", "a b c d", 2, []string{"a", "b"}},
		{"NoSplitOnUnicodeSpace", "a\u00a0b", 0, []string{"a\u00a0b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.line, tt.max))
		})
	}

	t.Run("DefaultCap", func(t *testing.T) {
		fields := make([]string, 25)
		for i := range fields {
			fields[i] = string(rune('a' + i))
		}
		got := Tokenize(strings.Join(fields, " "), 0)
		assert.Len(t, got, DefaultMaxTokens)
		assert.Equal(t, fields[:DefaultMaxTokens], got)
	})
}

func TestParseNumbers(t *testing.T) {
	t.Run("Decimal", func(t *testing.T) {
		v, ok := parseUint("144", 32)
		assert.True(t, ok)
		assert.Equal(t, uint64(144), v)

		for _, bad := range []string{"", "-1", "12abc", "4294967296", "0x10"} {
			_, ok := parseUint(bad, 32)
			assert.False(t, ok, bad)
		}
	})

	t.Run("Hex", func(t *testing.T) {
		for tok, want := range map[string]uint64{"0026": 0x26, "ffff": 0xffff, "0x1A": 0x1a, "0X1a": 0x1a} {
			v, ok := parseHex(tok, 32)
			assert.True(t, ok, tok)
			assert.Equal(t, want, v, tok)
		}
		_, ok := parseHex("zz", 32)
		assert.False(t, ok)
		_, ok = parseHex("100", 8)
		assert.False(t, ok)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "", truncate("abc", -1))
	// é is two bytes; cutting inside it backs off to the rune start
	assert.Equal(t, "h", truncate("héllo", 2))
	assert.Equal(t, "hé", truncate("héllo", 3))

	assert.Equal(t, "mods/my mod.lua", joinTokens([]string{"mods/my", "mod.lua"}, 255))
	assert.Equal(t, "a b", joinTokens([]string{"a", "bcd"}, 3))
}
