package util

import (
	"errors"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnsupportedConversion is returned when ConvertString has no conversion
// for the target type
var ErrUnsupportedConversion = errors.New("unsupported type conversion")

// Parseable constrains the types a raw option or positional value can be
// converted to
type Parseable interface {
	string | bool | int | int64 | uint | uint64 | float64 | time.Time
}

// ConvertString parses value into the variable data points to. Numeric
// values use base 10; time values accept any layout dateparse recognizes.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*t = val
	case *int:
		val, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		*t = val
	case *uint:
		val, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		*t = val
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseAny(value)
		if err != nil {
			return err
		}
		*t = val
	default:
		return ErrUnsupportedConversion
	}

	return nil
}
