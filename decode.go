// FILE: lixenwraith/configfile/decode.go
package configfile

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// ScanTag is the struct tag Scan matches option keys against
const ScanTag = "cfg"

// Scan decodes the current scalar option values into target, a non-nil
// pointer to a struct or map. Struct fields are matched by their `cfg` tag:
//
//	var video struct {
//	    Fullscreen bool   `cfg:"fullscreen"`
//	    Width      uint32 `cfg:"window_w"`
//	    Skin       string `cfg:"coop_player_palette_skin"` // "#fec179"
//	}
//	err := mgr.Scan(&video)
func (m *Manager) Scan(target any) error {
	return m.codec.registry.Scan(target)
}

// Scan decodes the registry's scalar values into target. See Manager.Scan.
func (r *Registry) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          ScanTag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			colorToStringHookFunc(),
			bindsToSliceHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(r.values()); err != nil {
		return fmt.Errorf("failed to scan options into %T: %w", target, err)
	}
	return nil
}

// colorToStringHookFunc renders a Color as "#rrggbb" for string fields
func colorToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != reflect.TypeOf(Color{}) || t.Kind() != reflect.String {
			return data, nil
		}
		c := data.(Color)
		return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]), nil
	}
}

// bindsToSliceHookFunc lets a BindSet fill a []uint32 field
func bindsToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != reflect.TypeOf(BindSet{}) || t.Kind() != reflect.Slice {
			return data, nil
		}
		b := data.(BindSet)
		return b[:], nil
	}
}
