// File: lixenwraith/configfile/convenience.go
package configfile

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Quick builds a Manager for settings in dir, honouring a command-line
// override path, and loads it.
func Quick(settings *Settings, dir, override, version string) (*Manager, error) {
	m, err := NewBuilder().
		WithSettings(settings).
		WithDir(dir).
		WithOverride(override).
		WithVersion(version).
		Build()
	if err != nil {
		return nil, err
	}
	return m, m.Load()
}

// Export writes the scalar options to w in the given format. FormatText is
// the config file format itself, function options included.
func (m *Manager) Export(w io.Writer, format string) error {
	return m.codec.Export(w, format)
}

// Export writes the scalar options to w. See Manager.Export.
func (c *Codec) Export(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return c.Encode(w)
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c.exportMap()); err != nil {
			return fmt.Errorf("failed to marshal options to TOML: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c.exportMap()); err != nil {
			return fmt.Errorf("failed to marshal options to JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c.exportMap()); err != nil {
			return fmt.Errorf("failed to marshal options to YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// exportMap maps keys to encoder-friendly values: binds and colors keep the
// hex notation of the config file.
func (c *Codec) exportMap() map[string]any {
	out := make(map[string]any, len(c.registry.options))
	for _, o := range c.registry.options {
		out[o.Key()] = exportValue(o)
	}
	return out
}

func exportValue(o Option) any {
	switch v := o.Value().(type) {
	case uint32:
		return int64(v)
	case uint64:
		// TOML integers are signed 64-bit
		if v > math.MaxInt64 {
			return o.Format()
		}
		return int64(v)
	case float32:
		return float64(v)
	case BindSet:
		return strings.Fields(o.Format())
	case Color:
		return fmt.Sprintf("#%02x%02x%02x", v[0], v[1], v[2])
	default:
		return v
	}
}

// Debug returns a listing of every option with its kind and value, and the
// enable-mod entries still waiting for the mod subsystem.
func (m *Manager) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	b.WriteString(fmt.Sprintf("File: %s\n", m.FilePath()))
	b.WriteString(fmt.Sprintf("Backup: %s\n", m.BackupPath()))
	b.WriteString("Options:\n")
	for _, o := range m.codec.registry.options {
		b.WriteString(fmt.Sprintf("  %s (%s): %s\n", o.Key(), o.Kind(), o.Format()))
	}
	if pending := m.queue.Pending(); len(pending) > 0 {
		b.WriteString("Queued mods:\n")
		for _, p := range pending {
			b.WriteString(fmt.Sprintf("  %s\n", p))
		}
	}
	return b.String()
}
