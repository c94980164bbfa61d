// FILE: lixenwraith/configfile/type_test.go
package configfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionParseFormat(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		v := false
		o := Bool("vsync", &v)
		assert.Equal(t, KindBool, o.Kind())

		o.Parse([]string{"true"})
		assert.True(t, v)
		assert.Equal(t, "true", o.Format())

		// anything but the exact word is false
		for _, s := range []string{"TRUE", "1", "yes", "false"} {
			v = true
			o.Parse([]string{s})
			assert.False(t, v, s)
		}
		assert.Equal(t, "false", o.Format())
	})

	t.Run("Uint", func(t *testing.T) {
		v := uint32(7)
		o := Uint("frame_limit", &v)
		o.Parse([]string{"144"})
		assert.Equal(t, uint32(144), v)
		assert.Equal(t, "144", o.Format())

		o.Parse([]string{"abc"})
		assert.Equal(t, uint32(144), v, "malformed value keeps the previous one")
		o.Parse([]string{"-5"})
		assert.Equal(t, uint32(144), v)
	})

	t.Run("Float", func(t *testing.T) {
		var v float32
		o := Float("scale", &v)
		o.Parse([]string{"1.5"})
		assert.Equal(t, float32(1.5), v)
		assert.Equal(t, "1.500000", o.Format())

		o.Parse([]string{"nope"})
		assert.Equal(t, float32(1.5), v)
	})

	t.Run("BindsFull", func(t *testing.T) {
		v := BindSet{1, 2, 3}
		o := Binds("key_a", &v)
		o.Parse([]string{"0026", "1000", "1103"})
		assert.Equal(t, BindSet{0x26, 0x1000, 0x1103}, v)
		assert.Equal(t, "0026 1000 1103", o.Format())
	})

	t.Run("BindsPartial", func(t *testing.T) {
		v := BindSet{0x26, 0x1000, 0x1103}
		o := Binds("key_a", &v)
		o.Parse([]string{"0030"})
		assert.Equal(t, BindSet{0x30, 0x1000, 0x1103}, v)

		o.Parse([]string{"zz", "0001"})
		assert.Equal(t, BindSet{0x30, 0x1, 0x1103}, v)

		o.Parse([]string{"1", "2", "3", "4"})
		assert.Equal(t, BindSet{1, 2, 3}, v)
	})

	t.Run("BindsFormatWide", func(t *testing.T) {
		v := BindSet{BindInvalid, 0x12345, 0}
		assert.Equal(t, "ffff 12345 0000", Binds("k", &v).Format())
	})

	t.Run("String", func(t *testing.T) {
		v := "old"
		o := String("coop_player_name", &v, 6)
		o.Parse([]string{"Mario"})
		assert.Equal(t, "Mario", v)

		o.Parse([]string{"Luigi123"})
		assert.Equal(t, "Luigi", v, "truncated to capacity minus terminator")
		assert.Equal(t, "Luigi", o.Format())

		// only the first token is stored
		o.Parse([]string{"Wa", "rio"})
		assert.Equal(t, "Wa", v)
	})

	t.Run("Uint64", func(t *testing.T) {
		var v uint64
		o := Uint64("debug_tags", &v)
		o.Parse([]string{"18446744073709551615"})
		assert.Equal(t, uint64(18446744073709551615), v)
		assert.Equal(t, "18446744073709551615", o.Format())

		o.Parse([]string{"18446744073709551616"})
		assert.Equal(t, uint64(18446744073709551615), v)
	})

	t.Run("Color", func(t *testing.T) {
		v := Color{1, 2, 3}
		o := ColorOf("coop_player_palette_skin", &v)
		o.Parse([]string{"fe", "c1", "79"})
		assert.Equal(t, Color{0xfe, 0xc1, 0x79}, v)
		assert.Equal(t, "fe c1 79", o.Format())

		o.Parse([]string{"00", "1ff", "zz"})
		assert.Equal(t, Color{0x00, 0xff, 0x79}, v)

		o.Parse([]string{"100000000"})
		assert.Equal(t, Color{0x00, 0xff, 0x79}, v)
	})

	t.Run("Value", func(t *testing.T) {
		v := uint32(3)
		o := Uint("x", &v)
		got := o.Value()
		v = 4
		assert.Equal(t, uint32(3), got)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "binds", KindBinds.String())
	assert.Equal(t, "color", KindColor.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestCheckOption(t *testing.T) {
	v := uint32(0)
	s := ""

	assert.NoError(t, checkOption(Uint("ok", &v)))
	assert.ErrorIs(t, checkOption(nil), ErrInvalidOption)
	assert.ErrorIs(t, checkOption(Uint("", &v)), ErrInvalidOption)
	assert.ErrorIs(t, checkOption(Uint("#x", &v)), ErrInvalidOption)
	assert.ErrorIs(t, checkOption(Uint("a b", &v)), ErrInvalidOption)
	assert.ErrorIs(t, checkOption(Uint("nil", nil)), ErrInvalidOption)
	assert.ErrorIs(t, checkOption(String("s", &s, 0)), ErrInvalidOption)
}
