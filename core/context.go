package core

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Context maps placeholder names to the values substituted into a message.
// A nil Context is equivalent to an empty one.
type Context map[string]any

// Keys returns the context keys in lexicographic order
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge combines contexts into a fresh map. Later contexts win on
// duplicate keys. Nil contexts are skipped.
func Merge(contexts ...Context) Context {
	size := 0
	for _, c := range contexts {
		size += len(c)
	}
	out := make(Context, size)
	for _, c := range contexts {
		for k, v := range c {
			out[k] = v
		}
	}
	return out
}

// StringValue returns the default string representation of a context value
func StringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case time.Duration:
		return val.String()
	case error:
		if isNil(val) {
			return "<nil>"
		}
		return val.Error()
	case fmt.Stringer:
		if isNil(val) {
			return "<nil>"
		}
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isNil reports whether v is a nil interface or holds a nil pointer, map,
// slice, func, chan or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
