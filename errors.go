// FILE: lixenwraith/configfile/errors.go
package configfile

import "errors"

var (
	// ErrLineRead reports a line that could not be read; it aborts the parse pass
	ErrLineRead = errors.New("config line read failed")
	// ErrLineTooLong reports a line longer than the reader limit
	ErrLineTooLong = errors.New("config line exceeds maximum length")
	// ErrDuplicateKey reports a key registered twice
	ErrDuplicateKey = errors.New("duplicate option key")
	// ErrInvalidOption reports an option that cannot be registered
	ErrInvalidOption = errors.New("invalid option")
	// ErrSaveFailed reports that the destination file could not be written
	ErrSaveFailed = errors.New("config save failed")
	// ErrUnknownFormat reports an unsupported export format
	ErrUnknownFormat = errors.New("unknown export format")
)
