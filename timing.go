// FILE: lixenwraith/configfile/timing.go
package configfile

import "time"

// File watching timing constants.
const (
	MinDebounce     = 10 * time.Millisecond  // Hard floor for change coalescence
	DefaultDebounce = 500 * time.Millisecond // File change coalescence period
)

// watchBuffer is the capacity of a watch channel; further changes coalesce
const watchBuffer = 1
