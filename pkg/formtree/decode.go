package formtree

import (
	"errors"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies the current value of n into out, which must be a pointer.
// Struct fields are matched by their "form" tag, falling back to the field
// name. Scalars are converted loosely, so "80" decodes into an int field.
// A nil node, including the typed nil returned by GroupAt for a missing
// path, yields an error wrapping ErrDecode and ErrNotFound.
//
//	var animal struct {
//	    Type   string `form:"type"`
//	    Weight int    `form:"weight"`
//	}
//	err := formtree.Decode(group.GroupAt("animals[0]"), &animal)
func Decode(n Node, out any) error {
	if isNilNode(n) {
		return errors.Join(ErrDecode, ErrNotFound)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(n.Value()); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
