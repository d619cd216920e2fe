package pwtext

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTarget is returned when Decode is given something other than a non-nil pointer to a struct.
var ErrInvalidTarget = errors.New("target must be a non-nil pointer to a struct")

// ErrUnsupportedType is returned when a struct field has a type Decode cannot fill.
var ErrUnsupportedType = errors.New("unsupported field type")

// ErrConvert is returned when a stored value cannot be converted to its field type.
var ErrConvert = errors.New("cannot convert value")

// tagName is the struct tag consulted by Decode.
const tagName = "pwtext"

// Decode fills the struct pointed to by target from d.
//
// Each exported field corresponds to a key segment: the name given in a
// `pwtext:"name"` tag, or the field name matched case-insensitively. A tag of "-"
// skips the field. Struct fields (and pointers to structs) correspond to
// containers, map[string]string fields receive every entry below their
// container, and all other fields are converted from the stored string.
// Embedded structs are decoded at the level of the enclosing struct.
//
// Fields whose key is absent are left untouched. Unlike Lookup, conversion is
// strict: the whole value must be consumed.
func Decode(d *Document, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	return decodeStruct(d, "", v.Elem())
}

func decodeStruct(d *Document, prefix string, v reflect.Value) error {
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			err := decodeStruct(d, prefix, fv)
			if err != nil {
				return err
			}

			continue
		}

		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get(tagName)
		if name == "-" {
			continue
		}

		if name == "" {
			name = field.Name
		}

		err := decodeField(d, prefix, name, fv)
		if err != nil {
			return err
		}
	}

	return nil
}

func decodeField(d *Document, prefix, name string, fv reflect.Value) error {
	switch {
	case isContainer(fv.Type()):
		segment, ok := d.resolveSegment(prefix, name, true)
		if !ok {
			return nil
		}

		return decodeStruct(d, JoinPath(prefix, segment), fv)
	case fv.Kind() == reflect.Pointer && isContainer(fv.Type().Elem()):
		segment, ok := d.resolveSegment(prefix, name, true)
		if !ok {
			return nil
		}

		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}

		return decodeStruct(d, JoinPath(prefix, segment), fv.Elem())
	case fv.Kind() == reflect.Map:
		if fv.Type().Key().Kind() != reflect.String || fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, fv.Type())
		}

		segment, ok := d.resolveSegment(prefix, name, true)
		if !ok {
			return nil
		}

		section, _ := d.Section(JoinPath(prefix, segment))

		if fv.IsNil() {
			fv.Set(reflect.MakeMap(fv.Type()))
		}

		for key, value := range section.values {
			fv.SetMapIndex(reflect.ValueOf(key).Convert(fv.Type().Key()),
				reflect.ValueOf(value).Convert(fv.Type().Elem()))
		}

		return nil
	default:
		segment, ok := d.resolveSegment(prefix, name, false)
		if !ok {
			return nil
		}

		key := JoinPath(prefix, segment)

		err := setValue(fv.Addr().Interface(), d.values[key])
		if err != nil {
			return fmt.Errorf("%w: key %q: %w", ErrConvert, key, err)
		}

		return nil
	}
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

func isContainer(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && !reflect.PointerTo(t).Implements(textUnmarshalerType)
}

// resolveSegment finds the key segment below prefix that matches name, exactly
// or case-insensitively. With container set it looks for a segment that has
// entries below it, otherwise for a leaf key.
func (d *Document) resolveSegment(prefix, name string, container bool) (string, bool) {
	if !container && d.Contains(JoinPath(prefix, name)) {
		return name, true
	}

	if container {
		if _, ok := d.Section(JoinPath(prefix, name)); ok {
			return name, true
		}
	}

	base := ""
	if prefix != "" {
		base = prefix + PathSeparator
	}

	for _, key := range d.Keys() {
		rest, ok := strings.CutPrefix(key, base)
		if !ok {
			continue
		}

		segment, below, nested := strings.Cut(rest, PathSeparator)
		if nested != container || (nested && below == "") {
			continue
		}

		if strings.EqualFold(segment, name) {
			return segment, true
		}
	}

	return "", false
}

var errUnsupportedSetter = errors.New("unsupported setter")

type setter func(dest any, raw string) error

//nolint:gochecknoglobals
var setters = []setter{
	textUnmarshalerSetter, durationSetter, kindSetter, scanSetter,
}

func setValue(dest any, raw string) error {
	for _, set := range setters {
		err := set(dest, raw)
		if errors.Is(err, errUnsupportedSetter) {
			continue
		}

		return err
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedType, reflect.TypeOf(dest).Elem())
}

func textUnmarshalerSetter(dest any, raw string) error {
	unmarshaler, ok := dest.(encoding.TextUnmarshaler)
	if !ok {
		return errUnsupportedSetter
	}

	return unmarshaler.UnmarshalText([]byte(raw)) //nolint:wrapcheck
}

func durationSetter(dest any, raw string) error {
	duration, ok := dest.(*time.Duration)
	if !ok {
		return errUnsupportedSetter
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*duration = parsed

	return nil
}

func kindSetter(dest any, raw string) error {
	v := reflect.ValueOf(dest).Elem()

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)

		return nil
	case reflect.Bool:
		parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return err //nolint:wrapcheck
		}

		v.SetBool(parsed)

		return nil
	default:
		return errUnsupportedSetter
	}
}

func scanSetter(dest any, raw string) error {
	switch reflect.ValueOf(dest).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return errUnsupportedSetter
	}

	// an extra rune must not scan, otherwise the value was not fully consumed
	var extra rune

	n, err := fmt.Sscanf(strings.TrimSpace(raw), "%v%c", dest, &extra)

	switch {
	case n < 1 || (n == 1 && !errors.Is(err, io.EOF)):
		return fmt.Errorf("parse %q: %w", raw, err)
	case n > 1:
		return fmt.Errorf("parse %q: trailing characters", raw) //nolint:err113
	}

	return nil
}
