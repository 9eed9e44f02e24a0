package formtree

import (
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// MetadataListener is called with a copy of the metadata after every change.
type MetadataListener func(md map[string]any)

// Metadata returns a copy of the group's metadata, or nil when none is set.
func (g *Group) Metadata() map[string]any {
	if g.meta == nil {
		return nil
	}
	return copyValue(g.meta).(map[string]any)
}

// SetMetadata replaces the metadata. A nil map clears it.
func (g *Group) SetMetadata(md map[string]any) {
	if md == nil {
		g.meta = nil
	} else {
		g.meta = copyValue(md).(map[string]any)
	}
	g.notifyMetadata()
}

// SetMetadataFrom replaces the metadata with v, which must be a mapping with
// string keys or a struct (decoded field by field using "form" tags).
func (g *Group) SetMetadataFrom(v any) error {
	md, err := toMetadata(v)
	if err != nil {
		return err
	}
	g.SetMetadata(md)
	return nil
}

// MergeMetadata merges md into the metadata. By default it is a shallow
// merge where incoming values overwrite existing ones. With deep set, nested
// mappings are merged recursively and existing values win on conflict.
func (g *Group) MergeMetadata(md map[string]any, deep bool) {
	g.meta = MergeMaps(g.meta, md, deep)
	g.notifyMetadata()
}

// ClearMetadata removes all metadata.
func (g *Group) ClearMetadata() {
	g.SetMetadata(nil)
}

// OnMetadataChange registers fn and returns a function that removes it.
func (g *Group) OnMetadataChange(fn MetadataListener) func() {
	g.metaListeners = append(g.metaListeners, fn)
	i := len(g.metaListeners) - 1
	return func() {
		if i < len(g.metaListeners) {
			g.metaListeners[i] = nil
		}
	}
}

func (g *Group) notifyMetadata() {
	for _, fn := range g.metaListeners {
		if fn != nil {
			fn(g.Metadata())
		}
	}
}

// MergeMaps returns a new mapping combining dst and src.
//
// Shallow (deep == false): src overwrites dst key by key.
// Deep (deep == true): nested mappings present on both sides are merged
// recursively; for any other conflict the value already in dst is kept.
func MergeMaps(dst, src map[string]any, deep bool) map[string]any {
	if dst == nil && src == nil {
		return nil
	}
	out := make(map[string]any, len(dst)+len(src))
	maps.Copy(out, copyValueMap(dst))

	for k, incoming := range src {
		existing, ok := out[k]
		if !ok || !deep {
			out[k] = copyValue(incoming)
			continue
		}
		em, eok := existing.(map[string]any)
		im, iok := incoming.(map[string]any)
		if eok && iok {
			out[k] = MergeMaps(em, im, true)
		}
	}
	return out
}

func copyValueMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return copyValue(m).(map[string]any)
}

func toMetadata(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch {
	case rv.Kind() == reflect.Struct:
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidMetadata, v)
	}

	var out map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "form",
		Result:  &out,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidMetadata, err)
	}
	if err := dec.Decode(rv.Interface()); err != nil {
		return nil, errors.Join(ErrInvalidMetadata, err)
	}
	return out, nil
}
