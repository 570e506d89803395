package decoder

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Mapstructure decodes data into target with mapstructure, reading json
// struct tags. It walks the value tree directly instead of re-encoding it.
// Input types must match the target fields. JSON numbers fill integer fields
// only when they are whole and in range, the same values JSON accepts.
func Mapstructure(data any, target any) error {
	config := &mapstructure.DecoderConfig{
		DecodeHook: integralNumbers,
		Result:     target,
		TagName:    "json",
	}
	dec, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to decode to target type: %w", err)
	}
	return nil
}

// integralNumbers rejects float64 values that would be truncated or wrapped
// when stored in an integer field. mapstructure converts them silently.
func integralNumbers(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	f, ok := data.(float64)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 || reflect.Zero(to).OverflowInt(int64(f)) {
			return nil, fmt.Errorf("cannot use number %v as %s", f, to)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if math.Trunc(f) != f || f < 0 || f >= math.MaxUint64 || reflect.Zero(to).OverflowUint(uint64(f)) {
			return nil, fmt.Errorf("cannot use number %v as %s", f, to)
		}
	}
	return data, nil
}

// ByName returns the decoder registered under name: "json" or
// "mapstructure".
func ByName(name string) (Func, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "mapstructure":
		return Mapstructure, nil
	default:
		return nil, fmt.Errorf("unknown decoder %q", name)
	}
}
