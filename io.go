// FILE: lixenwraith/configfile/io.go
package configfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FS is the file-system view the codec reads from and writes to.
// Open must return an error matching fs.ErrNotExist for absent files.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	// WritePath resolves name to the path Save writes to
	WritePath(name string) string
}

// DirFS resolves relative names against a directory. Absolute names, such
// as a command-line override, are used as given.
type DirFS string

func (d DirFS) resolve(name string) string {
	if filepath.IsAbs(name) || d == "" {
		return name
	}
	return filepath.Join(string(d), name)
}

// Open opens name for reading.
func (d DirFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(d.resolve(name))
}

// WritePath returns the path name is written to.
func (d DirFS) WritePath(name string) string {
	return d.resolve(name)
}

// Save writes every scalar option in declaration order, one "<key> <value>"
// line each, followed by the lines of every function option. The file is
// replaced only once fully written; on error the previous file is kept.
func (c *Codec) Save(name string) error {
	path := c.fs.WritePath(name)
	// write through a symlinked config to its target
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create config directory for '%s': %w", ErrSaveFailed, path, err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("%w: failed to open '%s' for writing: %w", ErrSaveFailed, path, err)
	}
	defer func() {
		// no-op once committed
		if err := pending.Cleanup(); err != nil {
			c.logger.Debug().Err(err).Str("path", path).Msg("cleanup pending config file")
		}
	}()

	c.logger.Info().Str("file", name).Msg("saving configuration")

	w := bufio.NewWriter(pending)
	if err := c.Encode(w); err != nil {
		return fmt.Errorf("%w: failed to write '%s': %w", ErrSaveFailed, path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write '%s': %w", ErrSaveFailed, path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: failed to replace '%s': %w", ErrSaveFailed, path, err)
	}
	return nil
}

// Encode writes the file contents Save would produce to w.
func (c *Codec) Encode(w io.Writer) error {
	for _, opt := range c.registry.options {
		if _, err := fmt.Fprintf(w, "%s %s\n", opt.Key(), opt.Format()); err != nil {
			return err
		}
	}
	for _, fn := range c.registry.functions {
		if err := fn.Write(w); err != nil {
			return fmt.Errorf("function option %s: %w", fn.Key(), err)
		}
	}
	return nil
}
