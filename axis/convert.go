package axis

import (
	"fmt"
	"math"
	"reflect"

	"github.com/arloliu/histo/errs"
)

// convert turns v into the axis domain type V.
//
// An exact type match is free. Otherwise numeric values convert between numeric
// kinds only when the value is representable in V: integer domains reject values
// out of their range, fractional values, NaN and infinities. Float domains take
// any numeric value. Nothing else converts.
func convert[V any](v any) (V, error) {
	if x, ok := v.(V); ok {
		return x, nil
	}

	var zero V
	target := reflect.TypeOf(&zero).Elem()
	src := reflect.ValueOf(v)
	if !src.IsValid() || !isNumeric(src.Kind()) || !isNumeric(target.Kind()) {
		return zero, fmt.Errorf("%w: cannot use %T as %s", errs.ErrInvalidArgument, v, target)
	}

	out := reflect.New(target).Elem()
	switch {
	case isFloat(target.Kind()):
		out.Set(src.Convert(target))
	case isSigned(target.Kind()):
		x, ok := toInt64(src)
		if !ok || out.OverflowInt(x) {
			return zero, notRepresentable(v, target)
		}
		out.SetInt(x)
	default:
		x, ok := toUint64(src)
		if !ok || out.OverflowUint(x) {
			return zero, notRepresentable(v, target)
		}
		out.SetUint(x)
	}

	x, _ := out.Interface().(V)

	return x, nil
}

func notRepresentable(v any, target reflect.Type) error {
	return fmt.Errorf("%w: %v (%T) is not representable as %s", errs.ErrInvalidArgument, v, v, target)
}

// toInt64 returns src as an int64 when it holds an integral value in range.
func toInt64(src reflect.Value) (int64, bool) {
	switch k := src.Kind(); {
	case isSigned(k):
		return src.Int(), true
	case isFloat(k):
		f := src.Float()
		if f != math.Trunc(f) || f < -0x1p63 || f >= 0x1p63 {
			return 0, false
		}
		return int64(f), true
	default:
		u := src.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
}

// toUint64 returns src as a uint64 when it holds a non-negative integral value
// in range.
func toUint64(src reflect.Value) (uint64, bool) {
	switch k := src.Kind(); {
	case isSigned(k):
		x := src.Int()
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case isFloat(k):
		f := src.Float()
		if f != math.Trunc(f) || f < 0 || f >= 0x1p64 {
			return 0, false
		}
		return uint64(f), true
	default:
		return src.Uint(), true
	}
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func typeName[V any]() string {
	var zero V
	return reflect.TypeOf(&zero).Elem().String()
}
