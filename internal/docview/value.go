package docview

import (
	"fmt"
	"strings"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Property type tags understood in the {Type} prefix of a DocView value.
const (
	TypeString        = "String"
	TypeBinary        = "Binary"
	TypeLong          = "Long"
	TypeDouble        = "Double"
	TypeDate          = "Date"
	TypeBoolean       = "Boolean"
	TypeName          = "Name"
	TypePath          = "Path"
	TypeReference     = "Reference"
	TypeWeakReference = "WeakReference"
	TypeURI           = "URI"
	TypeDecimal       = "Decimal"
)

var propertyTypes = map[string]struct{}{
	TypeString: {}, TypeBinary: {}, TypeLong: {}, TypeDouble: {}, TypeDate: {}, TypeBoolean: {},
	TypeName: {}, TypePath: {}, TypeReference: {}, TypeWeakReference: {}, TypeURI: {}, TypeDecimal: {},
}

// ParseValue decodes a DocView attribute value.
//
// Examples:
//   - "Activate" → String ["Activate"]
//   - "{Date}2023-01-01T00:00:00.000Z" → Date ["2023-01-01T00:00:00.000Z"]
//   - "[mix:created,mix:lastModified]" → String multi ["mix:created", "mix:lastModified"]
//   - "\{literal}" → String ["{literal}"]
func ParseValue(raw string) (replmeta.PropertyValue, error) {
	v := replmeta.PropertyValue{Type: TypeString}
	s := raw

	if strings.HasPrefix(s, "{") {
		if end := strings.IndexByte(s, '}'); end > 0 {
			if _, ok := propertyTypes[s[1:end]]; ok {
				v.Type = s[1:end]
				s = s[end+1:]
			}
		}
	}

	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		values, err := splitMultiValue(s[1 : len(s)-1])
		if err != nil {
			return replmeta.PropertyValue{}, fmt.Errorf("invalid multi-value %q: %w", raw, err)
		}
		v.Multi = true
		v.Values = values
		return v, nil
	}

	value, err := unescape(s)
	if err != nil {
		return replmeta.PropertyValue{}, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	v.Values = []string{value}
	return v, nil
}

func splitMultiValue(s string) ([]string, error) {
	values := []string{}
	if s == "" {
		return values, nil
	}
	var current strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return nil, fmt.Errorf("dangling escape at end of value")
			}
			i++
			current.WriteByte(s[i])
		case ',':
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	return append(values, current.String()), nil
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			if i+1 >= len(s) {
				return "", fmt.Errorf("dangling escape at end of value")
			}
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String(), nil
}
