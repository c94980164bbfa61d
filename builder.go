// File: lixenwraith/configfile/builder.go
package configfile

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for wiring a Manager
type Builder struct {
	settings   *Settings
	opts       Options
	fs         FS
	version    string
	logger     *zerolog.Logger
	logLevel   string
	mods       ModLister
	bans       AddressList
	moderators AddressList
	packs      PackManager
	functions  []FunctionOption
	options    []Option
	err        error
}

// NewBuilder creates a builder with default options and default settings
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// WithSettings sets the settings the file is bound to
func (b *Builder) WithSettings(s *Settings) *Builder {
	b.settings = s
	return b
}

// WithOptions replaces all options
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithDir sets the directory config files are read from and written to
func (b *Builder) WithDir(dir string) *Builder {
	b.opts.Dir = dir
	return b
}

// WithFS sets a custom file system; it takes precedence over WithDir
func (b *Builder) WithFS(fsys FS) *Builder {
	b.fs = fsys
	return b
}

// WithFile sets the primary file name
func (b *Builder) WithFile(name string) *Builder {
	b.opts.FileName = name
	return b
}

// WithBackup sets the backup file name
func (b *Builder) WithBackup(name string) *Builder {
	b.opts.BackupName = name
	return b
}

// WithOverride sets the command-line override path; empty keeps the default name
func (b *Builder) WithOverride(path string) *Builder {
	b.opts.Override = path
	return b
}

// WithDevMode disables the backup policy
func (b *Builder) WithDevMode(dev bool) *Builder {
	b.opts.DevMode = dev
	return b
}

// WithCoopNet marks the build as having coopnet support
func (b *Builder) WithCoopNet(enabled bool) *Builder {
	b.opts.CoopNet = enabled
	return b
}

// WithVersion sets the running build's version, recorded as last_version
// when the file has none
func (b *Builder) WithVersion(version string) *Builder {
	b.version = version
	return b
}

// WithLogger sets the logger used for diagnostics
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

// WithLogLevel sets the level of the default logger
func (b *Builder) WithLogLevel(level string) *Builder {
	b.logLevel = level
	return b
}

// WithMods wires the enable-mod option to the enabled-mod enumeration
func (b *Builder) WithMods(mods ModLister) *Builder {
	b.mods = mods
	return b
}

// WithBans wires the ban option to a ban list
func (b *Builder) WithBans(list AddressList) *Builder {
	b.bans = list
	return b
}

// WithModerators wires the moderator option to a moderator list
func (b *Builder) WithModerators(list AddressList) *Builder {
	b.moderators = list
	return b
}

// WithPacks wires the content-pack option to a pack manager
func (b *Builder) WithPacks(packs PackManager) *Builder {
	b.packs = packs
	return b
}

// WithFunctionOption adds a custom function option after the built-in ones
func (b *Builder) WithFunctionOption(fn FunctionOption) *Builder {
	if fn != nil {
		b.functions = append(b.functions, fn)
	}
	return b
}

// WithOption adds a custom scalar option after the settings options
func (b *Builder) WithOption(opt Option) *Builder {
	if opt != nil {
		b.options = append(b.options, opt)
	}
	return b
}

// WithEnv folds the COOPDX_* environment variables into the options
func (b *Builder) WithEnv() *Builder {
	env, err := ParseEnv()
	if err != nil {
		b.err = err
		return b
	}
	if env.File != "" {
		b.opts.FileName = env.File
	}
	if env.Backup != "" {
		b.opts.BackupName = env.Backup
	}
	if env.Dir != "" {
		b.opts.Dir = env.Dir
	}
	if env.LogLevel != "" {
		b.logLevel = env.LogLevel
	}
	if env.DevMode {
		b.opts.DevMode = true
	}
	return b
}

// Build validates the registry and returns the Manager
func (b *Builder) Build() (*Manager, error) {
	if b.err != nil {
		return nil, b.err
	}

	settings := b.settings
	if settings == nil {
		settings = DefaultSettings()
	}

	opts := b.opts
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	if opts.BackupName == "" {
		opts.BackupName = DefaultBackupName
	}

	fsys := b.fs
	if fsys == nil {
		dir := opts.Dir
		if dir == "" {
			dir = UserDataDir(DefaultAppName)
		}
		fsys = DirFS(dir)
	}

	var logger zerolog.Logger
	if b.logger != nil {
		logger = *b.logger
	} else {
		logger = NewLogger(LogConfig{Level: b.logLevel})
	}

	queue := NewModQueue()
	funcs := []FunctionOption{
		&ModOption{Queue: queue, Mods: b.mods},
		&BanOption{List: b.bans},
		&ModeratorOption{List: b.moderators},
		&PackOption{Packs: b.packs},
	}
	funcs = append(funcs, b.functions...)

	scalars := append(settings.Options(), b.options...)

	reg, err := NewRegistry(scalars, funcs)
	if err != nil {
		return nil, fmt.Errorf("failed to register options: %w", err)
	}

	m := &Manager{
		settings: settings,
		queue:    queue,
		fs:       fsys,
		opts:     opts,
		version:  b.version,
		logger:   logger,
	}
	m.codec = NewCodec(reg, fsys, CodecOptions{
		Logger:        &logger,
		MaxLineLength: opts.MaxLineLength,
		MaxTokens:     opts.MaxTokens,
		AfterLoad:     m.normalize,
	})

	return m, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Manager {
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("configfile build failed: %v", err))
	}
	return m
}
