// FILE: lixenwraith/configfile/doc.go

// Package configfile persists and restores an application's tunable settings
// as a flat, line-oriented text file that users can edit by hand.
//
// Every non-blank line that does not start with '#' has the form
//
//	<key> <value>[ <value2> ...]
//
// Scalar options bind a key to exactly one typed storage location (bool,
// unsigned int, float, bind set, string, uint64, RGB color). Function options
// handle keys that may appear any number of times and feed list-shaped state
// owned by other subsystems (enabled mods, bans, moderators, content packs).
//
// Quick Start:
//
//	settings := configfile.DefaultSettings()
//	mgr, err := configfile.NewBuilder().
//	    WithSettings(settings).
//	    WithDir(dataDir).
//	    WithOverride(cliConfigPath).
//	    WithMods(modManager).
//	    WithBans(banList).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mgr.Load()               // primary file, backup fallback, clamp pass
//	...
//	mgr.EnableQueuedMods(modManager) // once the mod subsystem is ready
//	...
//	mgr.Save()               // on exit
//
// Load policy:
//  1. A missing file is created from the in-memory defaults.
//  2. A fatal read error on the primary file retries from the backup file.
//  3. A clean primary load is immediately mirrored to the backup file.
//  4. Clamping of out-of-range values always runs, even after a failed pass.
//
// Thread Safety:
// The codec is synchronous and does no locking. Callers serialize Load, Save
// and any other access to the bound settings.
package configfile
