package fetch

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// EncodeQuery renders params in the bracket notation used by most web
// frameworks: nested maps and structs as a[b]=c, slices as a[0]=x. Struct
// fields use their JSON names and honor "-" and omitempty. Keys and values are
// percent-encoded per RFC 3986 (brackets included). Nil values encode as
// "key="; empty maps and slices produce nothing.
func EncodeQuery(params *Params) string {
	var pairs []string
	params.Each(func(k string, v any) {
		pairs = appendValue(pairs, k, v)
	})
	return strings.Join(pairs, "&")
}

// BuildAddress appends the encoded params to address. Nil params, or params
// that encode to nothing, leave address unchanged.
func BuildAddress(address string, params *Params) string {
	if params == nil {
		return address
	}
	q := EncodeQuery(params)
	if q == "" {
		return address
	}
	if strings.Contains(address, "?") {
		if strings.HasSuffix(address, "?") || strings.HasSuffix(address, "&") {
			return address + q
		}
		return address + "&" + q
	}
	return address + "?" + q
}

func appendValue(pairs []string, key string, v any) []string {
	switch val := v.(type) {
	case nil:
		return append(pairs, escape(key)+"=")
	case *Params:
		if val == nil {
			return append(pairs, escape(key)+"=")
		}
		val.Each(func(k string, inner any) {
			pairs = appendValue(pairs, key+"["+k+"]", inner)
		})
		return pairs
	case Params:
		return appendValue(pairs, key, &val)
	case time.Time:
		return appendPair(pairs, key, val.UTC().Format(isoMillis))
	case json.Number:
		return appendPair(pairs, key, val.String())
	case []byte:
		return appendPair(pairs, key, string(val))
	}

	if s, ok := scalar(v); ok {
		return appendPair(pairs, key, s)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return append(pairs, escape(key)+"=")
		}
		return appendValue(pairs, key, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return pairs
		}
		for i := 0; i < rv.Len(); i++ {
			pairs = appendValue(pairs, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
		return pairs
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sort.Strings(keys)
		for _, k := range keys {
			pairs = appendValue(pairs, key+"["+k+"]", byKey[k].Interface())
		}
		return pairs
	case reflect.Struct:
		for _, f := range structFields(rv) {
			pairs = appendValue(pairs, key+"["+f.name+"]", f.value)
		}
		return pairs
	}

	return appendPair(pairs, key, fmt.Sprint(v))
}

type field struct {
	name  string
	value any
}

// structFields lists the exported fields of rv in declaration order under
// their JSON names, the same set encoding/json would write. Untagged embedded
// structs are flattened.
func structFields(rv reflect.Value) []field {
	var out []field
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fv := rv.Field(i)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if fv.Kind() == reflect.Pointer {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				out = append(out, structFields(fv)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if hasOption(opts, "omitempty") && emptyForJSON(fv) {
			continue
		}
		out = append(out, field{name: name, value: fv.Interface()})
	}
	return out
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == want {
			return true
		}
	}
	return false
}

// emptyForJSON mirrors encoding/json's omitempty test.
func emptyForJSON(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func appendPair(pairs []string, key, value string) []string {
	return append(pairs, escape(key)+"="+escape(value))
}

// scalar formats booleans and numbers, including named types built on them.
func scalar(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), true
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), true
	case reflect.String:
		return rv.String(), true
	}
	return "", false
}

// formatFloat renders the shortest decimal form, switching to exponent
// notation outside [1e-6, 1e21) the way JavaScript number strings do.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}

	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes every byte outside the RFC 3986 unreserved set.
func escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
