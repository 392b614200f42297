package schema

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the value kind a field accepts.
type Kind uint8

const (
	KindInteger Kind = iota + 1
	KindDecimal
	KindText
	KindBoolean
	KindTimestamp
	KindMapping
	KindSequence
	KindReference
)

var kindNames = map[Kind]string{
	KindInteger:   "integer",
	KindDecimal:   "decimal",
	KindText:      "text",
	KindBoolean:   "boolean",
	KindTimestamp: "timestamp",
	KindMapping:   "mapping",
	KindSequence:  "sequence",
	KindReference: "reference",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a kind by its name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) typeMessage() string {
	switch k {
	case KindInteger:
		return "must be an integer"
	case KindDecimal:
		return "must be a decimal number"
	case KindText:
		return "must be a string"
	case KindBoolean:
		return "must be a boolean"
	case KindTimestamp:
		return "must be an RFC 3339 timestamp"
	case KindMapping:
		return "must be an object"
	case KindSequence:
		return "must be a list"
	case KindReference:
		return "must be an integer identifier"
	default:
		return "has an unsupported type"
	}
}

// coerce converts a raw, non-nil value into the normalized Go type of kind k.
// Sequences are converted to []any without element coercion.
func coerce(k Kind, raw any) (any, bool) {
	switch k {
	case KindInteger, KindReference:
		return toInt64(raw)
	case KindDecimal:
		return toDecimal(raw)
	case KindText:
		s, ok := raw.(string)
		return s, ok
	case KindBoolean:
		return toBool(raw)
	case KindTimestamp:
		return toTime(raw)
	case KindMapping:
		return toMapping(raw)
	case KindSequence:
		return toSequence(raw)
	default:
		return nil, false
	}
}

func toInt64(raw any) (any, bool) {
	switch v := raw.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(v).Uint()
		if u > math.MaxInt64 {
			return nil, false
		}
		return int64(u), true
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return nil, false
		}
		return floatToInt64(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return nil, false
	}
}

func floatToInt64(f float64) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func toDecimal(raw any) (any, bool) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	default:
		n, ok := toInt64(raw)
		if !ok {
			return nil, false
		}
		return decimal.NewFromInt(n.(int64)), true
	}
}

var (
	truthy = []string{"true", "t", "1", "yes", "y", "on"}
	falsy  = []string{"false", "f", "0", "no", "n", "off"}
)

func toBool(raw any) (any, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		for _, t := range truthy {
			if s == t {
				return true, true
			}
		}
		for _, f := range falsy {
			if s == f {
				return false, true
			}
		}
		return nil, false
	default:
		n, ok := toInt64(raw)
		if !ok {
			return nil, false
		}
		switch n.(int64) {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return nil, false
	}
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func toTime(raw any) (any, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return t, true
			}
		}
	}
	return nil, false
}

func toMapping(raw any) (any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return maps.Clone(v), true
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func toSequence(raw any) (any, bool) {
	switch v := raw.(type) {
	case []any:
		return append([]any(nil), v...), true
	case string:
		parts := strings.Split(v, ",")
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, true
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// cloneValue copies mappings and sequences so callers never share a default.
func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
