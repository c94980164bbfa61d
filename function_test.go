// FILE: lixenwraith/configfile/function_test.go
package configfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModOption(t *testing.T) {
	t.Run("ReadQueues", func(t *testing.T) {
		q := NewModQueue()
		o := &ModOption{Queue: q}

		o.Read([]string{KeyEnableMod, "mods/a.lua"})
		o.Read([]string{KeyEnableMod, "mods/my", "cool", "mod.lua"})
		o.Read([]string{KeyEnableMod})

		assert.Equal(t, []string{"mods/a.lua", "mods/my cool mod.lua"}, q.Pending())
	})

	t.Run("ReadCapsLength", func(t *testing.T) {
		q := NewModQueue()
		o := &ModOption{Queue: q}
		o.Read([]string{KeyEnableMod, strings.Repeat("a", 200), strings.Repeat("b", 200)})
		require.Equal(t, 1, q.Len())
		assert.Len(t, q.Pending()[0], maxJoinedValue)
	})

	t.Run("Write", func(t *testing.T) {
		o := &ModOption{Mods: &fakeMods{enabled: []string{"a.lua", "", "b c.lua"}}}
		var buf bytes.Buffer
		require.NoError(t, o.Write(&buf))
		assert.Equal(t, "enable-mod: a.lua\nenable-mod: b c.lua\n", buf.String())
	})

	t.Run("NilSubsystems", func(t *testing.T) {
		o := &ModOption{}
		o.Read([]string{KeyEnableMod, "x"})
		var buf bytes.Buffer
		assert.NoError(t, o.Write(&buf))
		assert.Empty(t, buf.String())
	})

	t.Run("Reset", func(t *testing.T) {
		q := NewModQueue()
		o := &ModOption{Queue: q}
		o.Read([]string{KeyEnableMod, "x"})
		o.Reset()
		assert.Equal(t, 0, q.Len())
	})
}

func TestAddressOptions(t *testing.T) {
	t.Run("BanReadIsPermanent", func(t *testing.T) {
		list := &fakeList{}
		o := &BanOption{List: list}
		o.Read([]string{KeyBan, "1.2.3.4", "extra"})
		o.Read([]string{KeyBan})
		assert.Equal(t, []AddressEntry{{Address: "1.2.3.4", Permanent: true}}, list.entries)
	})

	t.Run("BanWritesPermanentOnly", func(t *testing.T) {
		list := &fakeList{entries: []AddressEntry{
			{Address: "1.1.1.1", Permanent: true},
			{Address: "2.2.2.2", Permanent: false},
			{Address: "", Permanent: true},
			{Address: "3.3.3.3", Permanent: true},
		}}
		var buf bytes.Buffer
		require.NoError(t, (&BanOption{List: list}).Write(&buf))
		assert.Equal(t, "ban: 1.1.1.1\nban: 3.3.3.3\n", buf.String())
	})

	t.Run("Moderator", func(t *testing.T) {
		list := &fakeList{}
		o := &ModeratorOption{List: list}
		o.Read([]string{KeyModerator, "5.5.5.5"})
		list.Add("6.6.6.6", false)

		var buf bytes.Buffer
		require.NoError(t, o.Write(&buf))
		assert.Equal(t, "moderator: 5.5.5.5\n", buf.String())
	})
}

func TestPackOption(t *testing.T) {
	t.Run("ReadMatchesByName", func(t *testing.T) {
		packs := &fakePacks{packs: []Pack{{Name: "Alpha"}, {Name: "Beta Pack", Enabled: true}}}
		o := &PackOption{Packs: packs}

		o.Read([]string{KeyPack, "Alpha", "true"})
		o.Read([]string{KeyPack, "Beta", "Pack", "false"})
		o.Read([]string{KeyPack, "Gamma", "true"})

		assert.Equal(t, []Pack{{Name: "Alpha", Enabled: true}, {Name: "Beta Pack", Enabled: false}}, packs.packs)
	})

	t.Run("ReadNeedsThreeTokens", func(t *testing.T) {
		packs := &fakePacks{packs: []Pack{{Name: "true"}}}
		o := &PackOption{Packs: packs}
		o.Read([]string{KeyPack, "true"})
		assert.False(t, packs.packs[0].Enabled)
	})

	t.Run("AnythingButTrueDisables", func(t *testing.T) {
		packs := &fakePacks{packs: []Pack{{Name: "A", Enabled: true}}}
		(&PackOption{Packs: packs}).Read([]string{KeyPack, "A", "yes"})
		assert.False(t, packs.packs[0].Enabled)
	})

	t.Run("Write", func(t *testing.T) {
		packs := &fakePacks{packs: []Pack{{Name: "Alpha", Enabled: true}, {Name: "Beta Pack"}}}
		var buf bytes.Buffer
		require.NoError(t, (&PackOption{Packs: packs}).Write(&buf))
		assert.Equal(t, "dynos-pack: Alpha true\ndynos-pack: Beta Pack false\n", buf.String())
	})
}
