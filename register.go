// FILE: lixenwraith/configfile/register.go
package configfile

import (
	"errors"
	"fmt"
)

// Registry is the immutable table of scalar and function options. Scalar
// options keep their declaration order, which is also the save order.
type Registry struct {
	options   []Option
	byKey     map[string]Option
	functions []FunctionOption
	byFunc    map[string]FunctionOption
}

// NewRegistry validates and indexes the option tables. Keys must be unique
// within each table and the two tables must not share a key.
func NewRegistry(scalars []Option, funcs []FunctionOption) (*Registry, error) {
	r := &Registry{
		options:   make([]Option, 0, len(scalars)),
		byKey:     make(map[string]Option, len(scalars)),
		functions: make([]FunctionOption, 0, len(funcs)),
		byFunc:    make(map[string]FunctionOption, len(funcs)),
	}

	var errs []error

	for _, f := range funcs {
		if f == nil {
			errs = append(errs, fmt.Errorf("%w: nil function option", ErrInvalidOption))
			continue
		}
		key := f.Key()
		if err := checkKey(key); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := r.byFunc[key]; exists {
			errs = append(errs, fmt.Errorf("%w: function option %q", ErrDuplicateKey, key))
			continue
		}
		r.byFunc[key] = f
		r.functions = append(r.functions, f)
	}

	for _, o := range scalars {
		if err := checkOption(o); err != nil {
			errs = append(errs, err)
			continue
		}
		key := o.Key()
		if _, exists := r.byKey[key]; exists {
			errs = append(errs, fmt.Errorf("%w: option %q", ErrDuplicateKey, key))
			continue
		}
		if _, exists := r.byFunc[key]; exists {
			errs = append(errs, fmt.Errorf("%w: option %q is also a function option", ErrDuplicateKey, key))
			continue
		}
		r.byKey[key] = o
		r.options = append(r.options, o)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build registry: %w", errors.Join(errs...))
	}
	return r, nil
}

// Lookup returns the scalar option registered under key.
func (r *Registry) Lookup(key string) (Option, bool) {
	o, ok := r.byKey[key]
	return o, ok
}

// LookupFunction returns the function option registered under key.
func (r *Registry) LookupFunction(key string) (FunctionOption, bool) {
	f, ok := r.byFunc[key]
	return f, ok
}

// Options returns the scalar options in declaration order.
func (r *Registry) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// Functions returns the function options in declaration order.
func (r *Registry) Functions() []FunctionOption {
	out := make([]FunctionOption, len(r.functions))
	copy(out, r.functions)
	return out
}

// Len returns the number of scalar options.
func (r *Registry) Len() int {
	return len(r.options)
}

// values returns key -> current value for every scalar option.
func (r *Registry) values() map[string]any {
	m := make(map[string]any, len(r.options))
	for _, o := range r.options {
		m[o.Key()] = o.Value()
	}
	return m
}
