// FILE: lixenwraith/configfile/function.go
package configfile

import (
	"fmt"
	"io"
)

// Keys of the built-in function options
const (
	KeyEnableMod = "enable-mod:"
	KeyBan       = "ban:"
	KeyModerator = "moderator:"
	KeyPack      = "dynos-pack:"
)

// maxJoinedValue caps values rebuilt from several tokens
const maxJoinedValue = 255

// FunctionOption handles a key that may occur on any number of lines and
// whose state lives outside the registry. Read is called once per occurrence
// with every token of the line, the key included; it validates arity itself.
// Write emits zero or more complete lines.
type FunctionOption interface {
	Key() string
	Read(tokens []string)
	Write(w io.Writer) error
}

// ModEnabler turns on a mod by its relative path.
type ModEnabler interface {
	EnableMod(path string)
}

// ModLister enumerates the relative paths of enabled local mods.
type ModLister interface {
	EnabledMods() []string
}

// AddressEntry is one ban or moderator record.
type AddressEntry struct {
	Address   string
	Permanent bool
}

// AddressList is a ban or moderator list.
type AddressList interface {
	Add(address string, permanent bool)
	Entries() []AddressEntry
}

// Pack is a content pack known to the pack manager.
type Pack struct {
	Name    string
	Enabled bool
}

// PackManager exposes the content packs by index.
type PackManager interface {
	Packs() []Pack
	SetPackEnabled(index int, enabled bool)
}

// ModOption queues every enable-mod line and writes one line per enabled mod.
type ModOption struct {
	Queue *ModQueue
	Mods  ModLister
}

func (o *ModOption) Key() string { return KeyEnableMod }

// Read joins the remaining tokens so paths with single spaces survive.
func (o *ModOption) Read(tokens []string) {
	if len(tokens) < 2 || o.Queue == nil {
		return
	}
	o.Queue.Enqueue(joinTokens(tokens[1:], maxJoinedValue))
}

// Reset drops entries queued by an aborted load pass.
func (o *ModOption) Reset() {
	if o.Queue != nil {
		o.Queue.Reset()
	}
}

func (o *ModOption) Write(w io.Writer) error {
	if o.Mods == nil {
		return nil
	}
	for _, path := range o.Mods.EnabledMods() {
		if path == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", KeyEnableMod, path); err != nil {
			return err
		}
	}
	return nil
}

// BanOption restores permanent bans and saves only permanent entries.
type BanOption struct {
	List AddressList
}

func (o *BanOption) Key() string { return KeyBan }

func (o *BanOption) Read(tokens []string) {
	readAddress(o.List, tokens)
}

func (o *BanOption) Write(w io.Writer) error {
	return writeAddresses(w, KeyBan, o.List)
}

// ModeratorOption restores permanent moderators and saves only permanent entries.
type ModeratorOption struct {
	List AddressList
}

func (o *ModeratorOption) Key() string { return KeyModerator }

func (o *ModeratorOption) Read(tokens []string) {
	readAddress(o.List, tokens)
}

func (o *ModeratorOption) Write(w io.Writer) error {
	return writeAddresses(w, KeyModerator, o.List)
}

func readAddress(list AddressList, tokens []string) {
	if list == nil || len(tokens) < 2 {
		return
	}
	list.Add(tokens[1], true)
}

func writeAddresses(w io.Writer, key string, list AddressList) error {
	if list == nil {
		return nil
	}
	for _, e := range list.Entries() {
		if e.Address == "" || !e.Permanent {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", key, e.Address); err != nil {
			return err
		}
	}
	return nil
}

// PackOption restores the enabled flag of known content packs.
//
//	dynos-pack: <name with spaces> <true|false>
type PackOption struct {
	Packs PackManager
}

func (o *PackOption) Key() string { return KeyPack }

// Read ignores lines with fewer than three tokens and unknown pack names.
func (o *PackOption) Read(tokens []string) {
	if o.Packs == nil || len(tokens) < 3 {
		return
	}
	name := joinTokens(tokens[1:len(tokens)-1], maxJoinedValue)
	enabled := tokens[len(tokens)-1] == "true"

	for i, p := range o.Packs.Packs() {
		if p.Name == name {
			o.Packs.SetPackEnabled(i, enabled)
			return
		}
	}
}

func (o *PackOption) Write(w io.Writer) error {
	if o.Packs == nil {
		return nil
	}
	for _, p := range o.Packs.Packs() {
		if _, err := fmt.Fprintf(w, "%s %s %t\n", KeyPack, p.Name, p.Enabled); err != nil {
			return err
		}
	}
	return nil
}
