// FILE: lixenwraith/configfile/fixture_test.go
package configfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeMods struct {
	enabled []string
	applied []string
}

func (f *fakeMods) EnabledMods() []string { return f.enabled }
func (f *fakeMods) EnableMod(path string)  { f.applied = append(f.applied, path) }

type fakeList struct {
	entries []AddressEntry
}

func (f *fakeList) Add(address string, permanent bool) {
	f.entries = append(f.entries, AddressEntry{Address: address, Permanent: permanent})
}
func (f *fakeList) Entries() []AddressEntry { return f.entries }

type fakePacks struct {
	packs []Pack
}

func (f *fakePacks) Packs() []Pack { return f.packs }
func (f *fakePacks) SetPackEnabled(index int, enabled bool) {
	f.packs[index].Enabled = enabled
}

// testEnv bundles a Manager with its fakes and a captured log.
type testEnv struct {
	dir        string
	mgr        *Manager
	settings   *Settings
	mods       *fakeMods
	bans       *fakeList
	moderators *fakeList
	packs      *fakePacks
	log        *bytes.Buffer
}

func newTestEnv(t *testing.T, configure ...func(*Builder)) *testEnv {
	t.Helper()
	e := &testEnv{
		dir:        t.TempDir(),
		settings:   DefaultSettings(),
		mods:       &fakeMods{},
		bans:       &fakeList{},
		moderators: &fakeList{},
		packs:      &fakePacks{},
		log:        &bytes.Buffer{},
	}
	b := NewBuilder().
		WithSettings(e.settings).
		WithDir(e.dir).
		WithVersion("v1.0.0").
		WithLogger(newTestLogger(e.log)).
		WithMods(e.mods).
		WithBans(e.bans).
		WithModerators(e.moderators).
		WithPacks(e.packs)
	for _, fn := range configure {
		fn(b)
	}
	m, err := b.Build()
	require.NoError(t, err)
	e.mgr = m
	return e
}

func newTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel)
}

func (e *testEnv) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.dir, name), []byte(content), 0644))
}

func (e *testEnv) read(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(e.dir, name))
	require.NoError(t, err)
	return string(b)
}

func (e *testEnv) exists(name string) bool {
	_, err := os.Stat(filepath.Join(e.dir, name))
	return err == nil
}
