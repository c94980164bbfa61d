// FILE: lixenwraith/configfile/loader.go
package configfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
)

// Codec reads and writes the option registry as a line-oriented text file.
type Codec struct {
	registry *Registry
	fs       FS
	logger   zerolog.Logger

	maxLine   int
	maxTokens int

	// afterLoad runs once at the end of every Load, clean or not
	afterLoad func()
}

// CodecOptions tunes a Codec. Zero values pick the defaults.
type CodecOptions struct {
	Logger        *zerolog.Logger
	MaxLineLength int
	MaxTokens     int
	AfterLoad     func()
}

// NewCodec returns a codec over reg that resolves file names through fsys.
func NewCodec(reg *Registry, fsys FS, opts CodecOptions) *Codec {
	c := &Codec{
		registry:  reg,
		fs:        fsys,
		logger:    zerolog.Nop(),
		maxLine:   opts.MaxLineLength,
		maxTokens: opts.MaxTokens,
		afterLoad: opts.AfterLoad,
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	if c.maxLine <= 0 {
		c.maxLine = DefaultMaxLineLength
	}
	if c.maxTokens <= 0 {
		c.maxTokens = DefaultMaxTokens
	}
	return c
}

// Registry returns the option registry the codec works on.
func (c *Codec) Registry() *Registry {
	return c.registry
}

// Load applies the file name to the bound settings. A missing file is created
// from the current in-memory state and counts as success. Unknown keys and
// malformed values are logged and skipped. Only a fatal read error is
// returned; it wraps ErrLineRead and leaves whatever lines were already
// applied in place. A file that exists but cannot be opened is reported the
// same way and is never overwritten. The after-load hook runs in every case.
func (c *Codec) Load(name string) error {
	if c.afterLoad != nil {
		defer c.afterLoad()
	}

	c.logger.Debug().Str("file", name).Msg("loading configuration")

	f, err := c.fs.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			// the file may exist; leave it for the user and try the backup
			c.logger.Error().Err(err).Str("file", name).Msg("config file could not be opened")
			return fmt.Errorf("%w: failed to open config file '%s': %w", ErrLineRead, name, err)
		}
		c.logger.Info().Str("file", name).Msg("config file not found, creating it")
		if err := c.Save(name); err != nil {
			c.logger.Warn().Err(err).Str("file", name).Msg("could not create config file")
		}
		return nil
	}
	defer f.Close()

	lr := newLineReader(f, c.maxLine)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			c.logger.Error().Err(err).Str("file", name).Msg("config file read failed")
			return fmt.Errorf("failed to load config file '%s': %w", name, err)
		}
		c.apply(line, lr.Line())
	}
}

// apply dispatches one line to a function option or a scalar option.
func (c *Codec) apply(line string, lineNo int) {
	tokens := Tokenize(line, c.maxTokens)
	if len(tokens) == 0 {
		return
	}
	key := tokens[0]

	if fn, ok := c.registry.LookupFunction(key); ok {
		fn.Read(tokens)
		return
	}

	opt, ok := c.registry.Lookup(key)
	if !ok {
		c.logger.Warn().Str("key", key).Int("line", lineNo).Msg("unknown option")
		return
	}

	if len(tokens) < 2 {
		c.logger.Debug().Str("key", key).Int("line", lineNo).Msg("expected value")
		return
	}

	opt.Parse(tokens[1:])
	c.logger.Debug().
		Str("key", key).
		Str("value", strings.Join(tokens[1:], " ")).
		Msg("option")
}

// resetter is implemented by function options that hold state gathered
// during a load pass which must not survive a retry.
type resetter interface {
	Reset()
}

// LoadWithBackup loads primary and falls back to backup when primary fails
// with a read error. A clean primary load is mirrored to backup right away.
// An error is returned only when both files fail to read.
func (c *Codec) LoadWithBackup(primary, backup string) error {
	err := c.Load(primary)
	if err == nil {
		if serr := c.Save(backup); serr != nil {
			c.logger.Warn().Err(serr).Str("file", backup).Msg("could not refresh backup config")
		}
		return nil
	}

	c.logger.Warn().
		Err(err).
		Str("file", primary).
		Str("backup", backup).
		Msg("falling back to backup config")

	for _, fn := range c.registry.functions {
		if r, ok := fn.(resetter); ok {
			r.Reset()
		}
	}

	if berr := c.Load(backup); berr != nil {
		return errors.Join(err, berr)
	}
	return nil
}
