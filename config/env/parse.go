package env

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var durationType = reflect.TypeOf((*time.Duration)(nil)).Elem()

// Parse is the default converter for FetchAndParse. It handles strings,
// booleans, integers, floats, time.Duration, comma-separated string slices,
// the named types derived from them, and any type whose pointer implements
// encoding.TextUnmarshaler. Integers are read in base 10 only.
func Parse[T any](raw string) (T, error) {
	var value T

	if unmarshaler, ok := any(&value).(encoding.TextUnmarshaler); ok {
		err := unmarshaler.UnmarshalText([]byte(raw))

		return value, err
	}

	typ := reflect.TypeOf(value)
	if typ == nil {
		return value, ErrUnsupportedType
	}

	parsed, err := parseKind(typ, raw)
	if err != nil {
		return value, err
	}

	reflect.ValueOf(&value).Elem().Set(parsed.Convert(typ))

	return value, nil
}

//nolint:cyclop // one branch per kind.
func parseKind(typ reflect.Type, raw string) (reflect.Value, error) {
	if typ == durationType {
		d, err := cast.ToDurationE(raw)

		return reflect.ValueOf(d), err
	}

	zero := reflect.Zero(typ)

	switch typ.Kind() {
	case reflect.String:
		return reflect.ValueOf(raw), nil
	case reflect.Bool:
		b, err := cast.ToBoolE(raw)

		return reflect.ValueOf(b), err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		text, err := decimal(raw)
		if err != nil {
			return zero, err
		}

		i, err := cast.ToInt64E(text)
		if err != nil {
			return zero, err
		}

		if zero.OverflowInt(i) {
			return zero, fmt.Errorf("%s overflows %s", raw, typ)
		}

		return reflect.ValueOf(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		text, err := decimal(raw)
		if err != nil {
			return zero, err
		}

		u, err := cast.ToUint64E(text)
		if err != nil {
			return zero, err
		}

		if zero.OverflowUint(u) {
			return zero, fmt.Errorf("%s overflows %s", raw, typ)
		}

		return reflect.ValueOf(u), nil
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return zero, err
		}

		if zero.OverflowFloat(f) {
			return zero, fmt.Errorf("%s overflows %s", raw, typ)
		}

		return reflect.ValueOf(f), nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return stringSlice(typ, splitList(raw)), nil
		}
	}

	return zero, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
}

// decimal checks that raw is a base 10 integer and drops its leading zeros,
// which cast would otherwise read as an octal prefix.
func decimal(raw string) (string, error) {
	sign, digits := "", raw
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}

	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return "", fmt.Errorf("%q is not a decimal integer", raw)
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", nil
	}

	return sign + digits, nil
}

// stringSlice builds a value of the slice type typ, whose elements have a
// string underlying type, from parts.
func stringSlice(typ reflect.Type, parts []string) reflect.Value {
	slice := reflect.MakeSlice(typ, len(parts), len(parts))
	for i, part := range parts {
		slice.Index(i).Set(reflect.ValueOf(part).Convert(typ.Elem()))
	}

	return slice
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}
