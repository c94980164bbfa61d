// File: lixenwraith/configfile/type.go
package configfile

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBinds is the number of device binding slots per logical button
const MaxBinds = 3

// Kind identifies the storage type of a scalar option
type Kind int

const (
	KindBool Kind = iota
	KindUint
	KindFloat
	KindBinds
	KindString
	KindUint64
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBinds:
		return "binds"
	case KindString:
		return "string"
	case KindUint64:
		return "uint64"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BindSet holds the alternate device bindings of one logical control
type BindSet [MaxBinds]uint32

// Color is an RGB triple
type Color [3]uint8

// Option binds a key to one typed storage location owned by the caller.
// The set of implementations is closed; use the constructors below.
type Option interface {
	// Key returns the option name as written in the file
	Key() string
	// Kind returns the storage type
	Kind() Kind
	// Parse applies the value tokens following the key; malformed input
	// leaves the bound value untouched
	Parse(values []string)
	// Format renders the bound value as it appears after the key
	Format() string
	// Value returns a copy of the bound value
	Value() any

	sealed()
}

type optionKey string

func (k optionKey) Key() string { return string(k) }
func (optionKey) sealed()       {}

// Bool binds key to a boolean. Only the literal "true" parses as true.
func Bool(key string, v *bool) Option { return &boolOption{optionKey(key), v} }

// Uint binds key to an unsigned 32-bit decimal value.
func Uint(key string, v *uint32) Option { return &uintOption{optionKey(key), v} }

// Float binds key to a 32-bit float written in fixed-point notation.
func Float(key string, v *float32) Option { return &floatOption{optionKey(key), v} }

// Binds binds key to a fixed set of hexadecimal bind slots.
func Binds(key string, v *BindSet) Option { return &bindsOption{optionKey(key), v} }

// String binds key to a single-token string of at most maxLen-1 bytes.
func String(key string, v *string, maxLen int) Option {
	return &stringOption{optionKey(key), v, maxLen}
}

// Uint64 binds key to an unsigned 64-bit decimal value.
func Uint64(key string, v *uint64) Option { return &uint64Option{optionKey(key), v} }

// ColorOf binds key to an RGB triple written as three hex bytes.
func ColorOf(key string, v *Color) Option { return &colorOption{optionKey(key), v} }

type boolOption struct {
	optionKey
	v *bool
}

func (o *boolOption) Kind() Kind { return KindBool }
func (o *boolOption) Value() any { return *o.v }

func (o *boolOption) Parse(values []string) {
	*o.v = values[0] == "true"
}

func (o *boolOption) Format() string {
	return strconv.FormatBool(*o.v)
}

type uintOption struct {
	optionKey
	v *uint32
}

func (o *uintOption) Kind() Kind { return KindUint }
func (o *uintOption) Value() any { return *o.v }

func (o *uintOption) Parse(values []string) {
	if n, ok := parseUint(values[0], 32); ok {
		*o.v = uint32(n)
	}
}

func (o *uintOption) Format() string {
	return strconv.FormatUint(uint64(*o.v), 10)
}

type floatOption struct {
	optionKey
	v *float32
}

func (o *floatOption) Kind() Kind { return KindFloat }
func (o *floatOption) Value() any { return *o.v }

func (o *floatOption) Parse(values []string) {
	if f, err := strconv.ParseFloat(values[0], 32); err == nil {
		*o.v = float32(f)
	}
}

func (o *floatOption) Format() string {
	return strconv.FormatFloat(float64(*o.v), 'f', 6, 32)
}

type bindsOption struct {
	optionKey
	v *BindSet
}

func (o *bindsOption) Kind() Kind { return KindBinds }
func (o *bindsOption) Value() any { return *o.v }

// Parse fills successive slots; missing tokens keep their current slot value.
func (o *bindsOption) Parse(values []string) {
	for i := 0; i < MaxBinds && i < len(values); i++ {
		if n, ok := parseHex(values[i], 32); ok {
			o.v[i] = uint32(n)
		}
	}
}

func (o *bindsOption) Format() string {
	parts := make([]string, MaxBinds)
	for i, b := range o.v {
		parts[i] = fmt.Sprintf("%04x", b)
	}
	return strings.Join(parts, " ")
}

type stringOption struct {
	optionKey
	v      *string
	maxLen int
}

func (o *stringOption) Kind() Kind { return KindString }
func (o *stringOption) Value() any { return *o.v }

func (o *stringOption) Parse(values []string) {
	*o.v = truncate(values[0], o.maxLen-1)
}

func (o *stringOption) Format() string {
	return *o.v
}

type uint64Option struct {
	optionKey
	v *uint64
}

func (o *uint64Option) Kind() Kind { return KindUint64 }
func (o *uint64Option) Value() any { return *o.v }

func (o *uint64Option) Parse(values []string) {
	if n, ok := parseUint(values[0], 64); ok {
		*o.v = n
	}
}

func (o *uint64Option) Format() string {
	return strconv.FormatUint(*o.v, 10)
}

type colorOption struct {
	optionKey
	v *Color
}

func (o *colorOption) Kind() Kind { return KindColor }
func (o *colorOption) Value() any { return *o.v }

func (o *colorOption) Parse(values []string) {
	for i := 0; i < len(o.v) && i < len(values); i++ {
		// wider values keep their low byte
		if n, ok := parseHex(values[i], 32); ok {
			o.v[i] = uint8(n)
		}
	}
}

func (o *colorOption) Format() string {
	return fmt.Sprintf("%02x %02x %02x", o.v[0], o.v[1], o.v[2])
}

// checkOption validates an option before registration.
func checkOption(o Option) error {
	if o == nil {
		return fmt.Errorf("%w: nil option", ErrInvalidOption)
	}
	if err := checkKey(o.Key()); err != nil {
		return err
	}
	switch opt := o.(type) {
	case *boolOption:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
	case *uintOption:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
	case *floatOption:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
	case *bindsOption:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
	case *stringOption:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
		if opt.maxLen < 1 {
			return fmt.Errorf("%w: %s max length must be positive, got %d", ErrInvalidOption, o.Key(), opt.maxLen)
		}
	case *uint64Option:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
	case *colorOption:
		if opt.v == nil {
			return fmt.Errorf("%w: %s has no storage", ErrInvalidOption, o.Key())
		}
	}
	return nil
}

// checkKey rejects keys that could not survive a save/load cycle.
func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidOption)
	}
	if key[0] == '#' {
		return fmt.Errorf("%w: key %q starts a comment", ErrInvalidOption, key)
	}
	for i := 0; i < len(key); i++ {
		if isSpace(key[i]) {
			return fmt.Errorf("%w: key %q contains whitespace", ErrInvalidOption, key)
		}
	}
	return nil
}
