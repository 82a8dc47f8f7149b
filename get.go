package cfg

import (
	"strconv"
	"strings"
)

// Scalar lists the value types the typed accessors can convert to.
type Scalar interface {
	bool | int | int32 | int64 | uint | uint32 | uint64 | float32 | float64
}

// Get resolves a key through GetString and converts it to T.
// Booleans accept "true", "on" and "yes"; everything else is false.
// An absent key or a value that does not convert yields def.
func Get[T Scalar](p *Parser, section, key string, def T) T {
	str := p.GetString(section, key, "")
	if str == "" {
		return def
	}

	value, ok := scalarFromString[T](str)
	if !ok {
		return def
	}

	return value
}

// GetArray resolves a key through GetString and splits the value on
// commas, converting each element to T. Elements that do not convert
// become the zero value. An absent key yields nil.
func GetArray[T Scalar](p *Parser, section, key string) []T {
	str := p.GetString(section, key, "")
	if str == "" {
		return nil
	}

	parts := strings.Split(str, ",")
	result := make([]T, 0, len(parts))

	for _, part := range parts {
		value, _ := scalarFromString[T](part)
		result = append(result, value)
	}

	return result
}

// Set formats value and overwrites an existing key through SetString,
// with the same section/key existence reporting.
func Set[T Scalar](p *Parser, section, key string, value T) {
	p.SetString(section, key, scalarToString(value))
}

func scalarFromString[T Scalar](str string) (T, bool) {
	var value T

	switch target := any(&value).(type) {
	case *bool:
		*target = str == "true" || str == "on" || str == "yes"
	case *int:
		parsed, err := strconv.Atoi(str)
		if err != nil {
			return value, false
		}

		*target = parsed
	case *int32:
		parsed, err := strconv.ParseInt(str, 10, 32)
		if err != nil {
			return value, false
		}

		*target = int32(parsed)
	case *int64:
		parsed, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return value, false
		}

		*target = parsed
	case *uint:
		parsed, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return value, false
		}

		*target = uint(parsed)
	case *uint32:
		parsed, err := strconv.ParseUint(str, 10, 32)
		if err != nil {
			return value, false
		}

		*target = uint32(parsed)
	case *uint64:
		parsed, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return value, false
		}

		*target = parsed
	case *float32:
		parsed, err := strconv.ParseFloat(str, 32)
		if err != nil {
			return value, false
		}

		*target = float32(parsed)
	case *float64:
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return value, false
		}

		*target = parsed
	}

	return value, true
}

func scalarToString[T Scalar](value T) string {
	switch v := any(value).(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return ""
	}
}
