// FILE: lixenwraith/configfile/config.go
package configfile

import (
	"github.com/rs/zerolog"
)

// Options configures where the config files live and how they are parsed.
type Options struct {
	// FileName is the primary config file name, relative to Dir
	FileName string
	// BackupName is the backup config file name, relative to Dir
	BackupName string
	// Override replaces FileName when non-empty (command-line override path)
	Override string
	// Dir is the directory relative names resolve against
	Dir string

	MaxLineLength int
	MaxTokens     int

	// DevMode loads only the primary file and never touches the backup
	DevMode bool
	// CoopNet keeps the persisted network system; without it the socket system is forced
	CoopNet bool
}

// DefaultOptions returns the standard options.
func DefaultOptions() Options {
	return Options{
		FileName:      DefaultFileName,
		BackupName:    DefaultBackupName,
		MaxLineLength: DefaultMaxLineLength,
		MaxTokens:     DefaultMaxTokens,
		CoopNet:       true,
	}
}

// Manager ties the settings, their registry and the load/save policy together.
// It is not safe for concurrent use.
type Manager struct {
	settings *Settings
	codec    *Codec
	queue    *ModQueue
	fs       FS
	opts     Options
	version  string
	logger   zerolog.Logger
}

// Settings returns the bound settings.
func (m *Manager) Settings() *Settings {
	return m.settings
}

// Codec returns the underlying codec.
func (m *Manager) Codec() *Codec {
	return m.codec
}

// Registry returns the option registry.
func (m *Manager) Registry() *Registry {
	return m.codec.registry
}

// Queue returns the queue of enable-mod entries read from the file.
func (m *Manager) Queue() *ModQueue {
	return m.queue
}

// FileName returns the effective primary file name: the override when set.
func (m *Manager) FileName() string {
	if m.opts.Override != "" {
		return m.opts.Override
	}
	return m.opts.FileName
}

// BackupName returns the backup file name.
func (m *Manager) BackupName() string {
	return m.opts.BackupName
}

// FilePath returns the path the primary file is written to.
func (m *Manager) FilePath() string {
	return m.fs.WritePath(m.FileName())
}

// BackupPath returns the path the backup file is written to.
func (m *Manager) BackupPath() string {
	return m.fs.WritePath(m.opts.BackupName)
}

// Load reads the primary file, falling back to the backup on a read error
// and refreshing the backup after a clean read. In development mode only the
// primary file is used.
func (m *Manager) Load() error {
	if m.opts.DevMode {
		return m.codec.Load(m.FileName())
	}
	return m.codec.LoadWithBackup(m.FileName(), m.opts.BackupName)
}

// Save writes the current state to the primary file.
func (m *Manager) Save() error {
	if err := m.codec.Save(m.FileName()); err != nil {
		m.logger.Warn().Err(err).Str("file", m.FileName()).Msg("config save failed")
		return err
	}
	return nil
}

// EnableQueuedMods applies the enable-mod entries gathered by Load, in file
// order, once the mod subsystem is ready. Further calls do nothing.
func (m *Manager) EnableQueuedMods(e ModEnabler) int {
	n := m.queue.EnableQueued(e)
	if n > 0 {
		m.logger.Debug().Int("count", n).Msg("enabled queued mods")
	}
	return n
}

// normalize is the after-load hook.
func (m *Manager) normalize() {
	m.settings.Normalize(m.version, m.opts.CoopNet)
}
