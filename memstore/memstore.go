// FILE: lixenwraith/configfile/memstore/memstore.go

// Package memstore provides in-memory mod, address-list and content-pack
// stores that satisfy the configfile subsystem interfaces. They back the
// settingsctl tool and serve as a reference for real subsystems.
package memstore

import (
	"sync"

	"github.com/lixenwraith/configfile"
)

var (
	_ configfile.ModEnabler  = (*Mods)(nil)
	_ configfile.ModLister   = (*Mods)(nil)
	_ configfile.AddressList = (*AddressList)(nil)
	_ configfile.PackManager = (*Packs)(nil)
)

// Mods tracks locally installed mods and which of them are enabled.
type Mods struct {
	mu      sync.RWMutex
	paths   []string
	enabled map[string]bool
}

// NewMods returns a store holding the given local mod paths, all disabled.
func NewMods(paths ...string) *Mods {
	m := &Mods{enabled: make(map[string]bool)}
	for _, p := range paths {
		m.Add(p)
	}
	return m
}

// Add registers a local mod. Adding a known path does nothing.
func (m *Mods) Add(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.enabled[path]; ok || path == "" {
		return
	}
	m.paths = append(m.paths, path)
	m.enabled[path] = false
}

// EnableMod enables a known local mod; unknown paths are ignored.
func (m *Mods) EnableMod(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.enabled[path]; ok {
		m.enabled[path] = true
	}
}

// DisableMod disables a local mod.
func (m *Mods) DisableMod(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.enabled[path]; ok {
		m.enabled[path] = false
	}
}

// EnabledMods returns the enabled paths in installation order.
func (m *Mods) EnabledMods() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for _, p := range m.paths {
		if m.enabled[p] {
			out = append(out, p)
		}
	}
	return out
}

// AddressList is a ban or moderator list keyed by address.
type AddressList struct {
	mu      sync.RWMutex
	entries []configfile.AddressEntry
}

// NewAddressList returns an empty list.
func NewAddressList() *AddressList {
	return &AddressList{}
}

// Add records address. A repeated address keeps its slot and becomes
// permanent if either record is.
func (l *AddressList) Add(address string, permanent bool) {
	if address == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].Address == address {
			l.entries[i].Permanent = l.entries[i].Permanent || permanent
			return
		}
	}
	l.entries = append(l.entries, configfile.AddressEntry{Address: address, Permanent: permanent})
}

// Remove deletes address and reports whether it was present.
func (l *AddressList) Remove(address string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].Address == address {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether address is listed.
func (l *AddressList) Contains(address string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if e.Address == address {
			return true
		}
	}
	return false
}

// Entries returns a copy of the list in insertion order.
func (l *AddressList) Entries() []configfile.AddressEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]configfile.AddressEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Packs is an indexed set of content packs.
type Packs struct {
	mu    sync.RWMutex
	packs []configfile.Pack
}

// NewPacks returns a store holding the named packs, all disabled.
func NewPacks(names ...string) *Packs {
	p := &Packs{}
	for _, n := range names {
		p.Add(n, false)
	}
	return p
}

// Add appends a pack and returns its index.
func (p *Packs) Add(name string, enabled bool) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.packs = append(p.packs, configfile.Pack{Name: name, Enabled: enabled})
	return len(p.packs) - 1
}

// Packs returns a copy of the packs in index order.
func (p *Packs) Packs() []configfile.Pack {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]configfile.Pack, len(p.packs))
	copy(out, p.packs)
	return out
}

// SetPackEnabled sets the enabled flag of the pack at index; out of range
// indices are ignored.
func (p *Packs) SetPackEnabled(index int, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.packs) {
		return
	}
	p.packs[index].Enabled = enabled
}
