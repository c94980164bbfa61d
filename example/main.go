// FILE: lixenwraith/configfile/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/configfile"
	"github.com/lixenwraith/configfile/memstore"
)

func main() {
	dir, err := os.MkdirTemp("", "configfile-example-")
	if err != nil {
		log.Fatalf("FATAL: could not create work dir: %v", err)
	}
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.RemoveAll(dir)
	}()

	// =========================================================================
	// PART 1: A HAND-EDITED FILE
	// Write a config a user might leave behind: out-of-range values, an
	// option from another build, a mod with a space in its path.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Writing a hand-edited config file...")
	primary := filepath.Join(dir, configfile.DefaultFileName)
	edited := `# edited by hand
frame_limit 99999
coop_player_model 42
coop_player_name Mario
key_a 0030
renderer vulkan
enable-mod: mods/star road.lua
ban: 203.0.113.9
dynos-pack: HD Mario true
`
	if err := os.WriteFile(primary, []byte(edited), 0644); err != nil {
		log.Fatalf("FATAL: could not write config: %v", err)
	}

	// =========================================================================
	// PART 2: LOAD
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Loading with in-memory subsystems...")
	settings := configfile.DefaultSettings()
	mods := memstore.NewMods("mods/star road.lua", "mods/other.lua")
	bans := memstore.NewAddressList()
	packs := memstore.NewPacks("HD Mario", "Retro Luigi")

	mgr, err := configfile.NewBuilder().
		WithSettings(settings).
		WithDir(dir).
		WithVersion("v1.0.0").
		WithLogLevel("warn").
		WithMods(mods).
		WithBans(bans).
		WithModerators(memstore.NewAddressList()).
		WithPacks(packs).
		Build()
	if err != nil {
		log.Fatalf("FATAL: build failed: %v", err)
	}
	if err := mgr.Load(); err != nil {
		log.Fatalf("FATAL: load failed: %v", err)
	}

	log.Printf("  frame_limit       = %d (clamped)", settings.FrameLimit)
	log.Printf("  coop_player_model = %d (reset)", settings.PlayerModel)
	log.Printf("  key_a             = %04x", settings.Controls.A)
	log.Printf("  last_version      = %s", settings.LastVersion)
	log.Printf("  queued mods       = %v", mgr.Queue().Pending())
	log.Printf("  bans              = %v", bans.Entries())
	log.Printf("  packs             = %v", packs.Packs())

	// =========================================================================
	// PART 3: MOD SUBSYSTEM READY
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Enabling queued mods...")
	n := mgr.EnableQueuedMods(mods)
	log.Printf("  enabled %d mod(s): %v", n, mods.EnabledMods())

	// =========================================================================
	// PART 4: CORRUPT PRIMARY, RECOVER FROM BACKUP
	// The clean load above mirrored the file to the backup.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Corrupting the primary file...")
	if err := os.WriteFile(primary, []byte("frame_limit 60\n\x00\x00\x00"), 0644); err != nil {
		log.Fatalf("FATAL: could not corrupt config: %v", err)
	}
	settings.FrameLimit = 0
	if err := mgr.Load(); err != nil {
		log.Fatalf("FATAL: backup recovery failed: %v", err)
	}
	log.Printf("  frame_limit after recovery = %d", settings.FrameLimit)

	// =========================================================================
	// PART 5: SAVE AND EXPORT
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 5: Saving and exporting...")
	settings.PlayerName = "Luigi"
	if err := mgr.Save(); err != nil {
		log.Fatalf("FATAL: save failed: %v", err)
	}
	fmt.Println("--- YAML export ---")
	if err := mgr.Export(os.Stdout, configfile.FormatYAML); err != nil {
		log.Fatalf("FATAL: export failed: %v", err)
	}
}
