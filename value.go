package cmdl

import (
	"fmt"
	"reflect"
	"strconv"
)

// Value is the result of a parameter or positional lookup: the captured
// text plus whether the lookup matched anything. The zero Value is
// absent.
type Value struct {
	text    string
	present bool
}

// Present reports whether the lookup found anything. A present empty
// string (as produced by "--key=") still counts as present.
func (v Value) Present() bool { return v.present }

// Str returns the captured text, "" when absent.
func (v Value) Str() string { return v.text }

// Or substitutes def, rendered textually, when v is absent. A present
// value always wins, including one that will later fail to convert:
// defaults cover missing input, not invalid input.
func (v Value) Or(def any) Value {
	if v.present {
		return v
	}
	return Value{text: fmt.Sprint(def), present: true}
}

// Scan parses the captured text into dst, which must be a non-nil
// pointer to a bool, string, integer, unsigned integer or float (named
// types and pointer targets included). On failure dst is left untouched
// and Scan reports false. Absent and empty values always fail; use Str
// when the raw text is what you want.
func (v Value) Scan(dst any) bool {
	if !v.present || v.text == "" {
		return false
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false
	}
	return scanText(rv.Elem(), v.text)
}

func scanText(rv reflect.Value, text string) bool {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			// Parse into a fresh value first so a failure leaves the
			// destination chain untouched.
			next := reflect.New(rv.Type().Elem())
			if !scanText(next.Elem(), text) {
				return false
			}
			rv.Set(next)
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return false
		}
		rv.SetBool(b)
	case reflect.String:
		rv.SetString(text)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return false
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return false
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return false
		}
		rv.SetFloat(f)
	default:
		return false
	}
	return true
}
